package queue

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
)

var (
	// ErrInvalidZone is returned for a zone outside 0..3.
	ErrInvalidZone = errors.New("invalid zone number")
	// ErrEmptyQueue is returned when dequeueing from an empty zone.
	ErrEmptyQueue = errors.New("zone queue is empty")
	// ErrInvalidPosition is returned when a 1-based position does not address an entry.
	ErrInvalidPosition = errors.New("invalid request number")
)

// ZoneQueues is the set of four zone queues.
// The zero value is ready to use.
type ZoneQueues struct {
	queues [kernel.ZoneCount][]*request.Request
}

// New returns an empty queue set.
func New() *ZoneQueues {
	return &ZoneQueues{}
}

// Restore rebuilds a queue set from per-zone entries in queue order.
func Restore(entries map[kernel.Zone][]*request.Request) (*ZoneQueues, error) {
	q := New()
	for zone, requests := range entries {
		if !zone.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidZone, zone)
		}
		for _, r := range requests {
			if err := r.Validate(); err != nil {
				return nil, err
			}
		}
		q.queues[zone] = append([]*request.Request(nil), requests...)
	}
	return q, nil
}

// Enqueue appends r to the tail of the zone's queue.
func (q *ZoneQueues) Enqueue(zone kernel.Zone, r *request.Request) error {
	if !zone.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidZone, zone)
	}
	if err := r.Validate(); err != nil {
		return err
	}
	q.queues[zone] = append(q.queues[zone], r)
	return nil
}

// DequeueFront pops the head of the zone's queue.
func (q *ZoneQueues) DequeueFront(zone kernel.Zone) (*request.Request, error) {
	if !zone.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidZone, zone)
	}
	if len(q.queues[zone]) == 0 {
		return nil, fmt.Errorf("%w: zone %s", ErrEmptyQueue, zone)
	}

	head := q.queues[zone][0]
	q.queues[zone][0] = nil
	q.queues[zone] = q.queues[zone][1:]
	return head, nil
}

// RemoveAt removes the entry at the 1-based position, keeping the relative order
// of the rest. An invalid or empty zone has no valid position.
func (q *ZoneQueues) RemoveAt(zone kernel.Zone, position int) (*request.Request, error) {
	if !zone.IsValid() || position < 1 || position > len(q.queues[zone]) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}

	entries := q.queues[zone]
	removed := entries[position-1]
	kept := make([]*request.Request, 0, len(entries)-1)
	kept = append(kept, entries[:position-1]...)
	kept = append(kept, entries[position:]...)
	q.queues[zone] = kept
	return removed, nil
}

// Discard removes the entry holding the request id, wherever it is queued.
// It reports whether an entry was removed.
func (q *ZoneQueues) Discard(id kernel.UUID) bool {
	for zone, entries := range q.queues {
		for i, r := range entries {
			if !r.ID().IsEqual(id) {
				continue
			}
			kept := make([]*request.Request, 0, len(entries)-1)
			kept = append(kept, entries[:i]...)
			q.queues[zone] = append(kept, entries[i+1:]...)
			return true
		}
	}
	return false
}

// ExistingDuplicate reports whether the zone's queue holds an entry equal to
// candidate under the request duplicate rule.
func (q *ZoneQueues) ExistingDuplicate(zone kernel.Zone, candidate *request.Request) bool {
	if !zone.IsValid() {
		return false
	}
	for _, r := range q.queues[zone] {
		if r.IsEqual(candidate) {
			return true
		}
	}
	return false
}

// Len returns the number of entries queued in zone, 0 for an invalid zone.
func (q *ZoneQueues) Len(zone kernel.Zone) int {
	if !zone.IsValid() {
		return 0
	}
	return len(q.queues[zone])
}

// Sizes returns the queue length of every zone.
func (q *ZoneQueues) Sizes() [kernel.ZoneCount]int {
	var sizes [kernel.ZoneCount]int
	for zone := range q.queues {
		sizes[zone] = len(q.queues[zone])
	}
	return sizes
}

// Zone returns a copy of the zone's entries in queue order.
func (q *ZoneQueues) Zone(zone kernel.Zone) []*request.Request {
	if !zone.IsValid() {
		return nil
	}
	return append([]*request.Request(nil), q.queues[zone]...)
}

// SnapshotAll concatenates the queues from zone 0 to zone 3, each in queue order.
func (q *ZoneQueues) SnapshotAll() []*request.Request {
	var total int
	for zone := range q.queues {
		total += len(q.queues[zone])
	}

	all := make([]*request.Request, 0, total)
	for zone := range q.queues {
		all = append(all, q.queues[zone]...)
	}
	return all
}
