// Package queue holds the per-zone FIFO queues of pending service requests.
//
// There is exactly one queue per dispatch zone. A request sits in at most one
// queue and entries keep their insertion order; only pickup (from the head) and
// cancellation (at a 1-based position) remove them.
package queue
