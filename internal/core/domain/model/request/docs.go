// Package request models service requests: rides and food deliveries.
//
// A Request is an immutable value created once its distance and cost are known.
// It is identified by a UUID and refers to the requesting user by account id.
//
// Duplicate detection differs per kind:
//   - Ride: any pending ride of the same user
//   - Delivery: a pending delivery of the same user, restaurant and food order id
//
// Rides and deliveries are never duplicates of each other.
package request
