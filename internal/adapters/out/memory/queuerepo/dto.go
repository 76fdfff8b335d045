// Package queuerepo stores the zone queue set of the in-memory store and owns the
// service request record shared with driverrepo.
package queuerepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/queue"
	"dispatch/internal/core/domain/model/request"
)

// RequestDTO is the stored form of a ride or delivery.
type RequestDTO struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	UserID      string `json:"user_id"`
	From        string `json:"from"`
	To          string `json:"to"`
	Distance    int    `json:"distance"`
	CostCents   int64  `json:"cost_cents"`
	Restaurant  string `json:"restaurant,omitempty"`
	FoodOrderID string `json:"food_order_id,omitempty"`
}

// QueuesDTO holds the entries of every zone in queue order.
type QueuesDTO struct {
	Zones [kernel.ZoneCount][]RequestDTO
}

// Clone returns a copy that shares no slices with q.
func (q QueuesDTO) Clone() QueuesDTO {
	var c QueuesDTO
	for zone := range q.Zones {
		c.Zones[zone] = append([]RequestDTO(nil), q.Zones[zone]...)
	}
	return c
}

// RequestFromDomain converts a request to its stored form.
func RequestFromDomain(r *request.Request) RequestDTO {
	return RequestDTO{
		ID:          r.ID().String(),
		Kind:        r.Kind().String(),
		UserID:      r.UserID().String(),
		From:        r.From(),
		To:          r.To(),
		Distance:    r.Distance(),
		CostCents:   r.Cost().Cents(),
		Restaurant:  r.Restaurant(),
		FoodOrderID: r.FoodOrderID(),
	}
}

// RequestToDomain rebuilds a request under its stored id.
func RequestToDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	kind, err := request.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}
	return request.RestoreRequest(
		id,
		kind,
		kernel.ID(dto.UserID),
		dto.From,
		dto.To,
		dto.Distance,
		kernel.Money(dto.CostCents),
		dto.Restaurant,
		dto.FoodOrderID,
	)
}

func fromDomain(q *queue.ZoneQueues) QueuesDTO {
	var dto QueuesDTO
	for _, zone := range kernel.AllZones() {
		entries := q.Zone(zone)
		dto.Zones[zone] = make([]RequestDTO, 0, len(entries))
		for _, r := range entries {
			dto.Zones[zone] = append(dto.Zones[zone], RequestFromDomain(r))
		}
	}
	return dto
}

func toDomain(dto QueuesDTO) (*queue.ZoneQueues, error) {
	entries := make(map[kernel.Zone][]*request.Request, kernel.ZoneCount)
	for _, zone := range kernel.AllZones() {
		for _, r := range dto.Zones[zone] {
			restored, err := RequestToDomain(r)
			if err != nil {
				return nil, err
			}
			entries[zone] = append(entries[zone], restored)
		}
	}
	return queue.Restore(entries)
}
