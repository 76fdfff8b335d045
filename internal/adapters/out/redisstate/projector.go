// Package redisstate mirrors driver state into Redis hashes so dashboards and
// other processes can read it without going through the dispatcher.
//
// Every driver is stored under "dispatch:driver:<id>" with the fields name,
// status, address, zone, service and earnings (in cents, incremented by the pay
// of every completed service). The projector is a ports.EventPublisher and only
// sees committed changes.
package redisstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/driver"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "dispatch:driver:"
	earningsField = "earnings"
)

// HashWriter is the part of *redis.Client the projector uses.
type HashWriter interface {
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	HIncrBy(ctx context.Context, key string, field string, incr int64) *redis.IntCmd
}

// NewClient connects to addr and checks the connection.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// DriverStateProjector keeps the driver hashes in step with domain events.
type DriverStateProjector struct {
	client HashWriter
	logger *slog.Logger
}

func NewDriverStateProjector(client HashWriter, logger *slog.Logger) *DriverStateProjector {
	return &DriverStateProjector{
		client: client,
		logger: logger.With("component", "redis_projector"),
	}
}

// Key returns the hash key of a driver.
func Key(driverID string) string {
	return keyPrefix + driverID
}

func (p *DriverStateProjector) Publish(ctx context.Context, evts ...events.Event) error {
	var err error
	for _, e := range evts {
		driverID, fields, ok := project(e)
		if !ok {
			continue
		}
		if writeErr := p.write(ctx, driverID, fields, earned(e)); writeErr != nil {
			p.logger.WarnContext(ctx, "failed to project driver state",
				"driver_id", driverID,
				"event", e.EventName(),
				"error", writeErr,
			)
			err = errors.Join(err, writeErr)
		}
	}
	return err
}

func (p *DriverStateProjector) write(ctx context.Context, driverID string, fields map[string]any, pay int64) error {
	key := Key(driverID)
	if err := p.client.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}
	if pay == 0 {
		return nil
	}
	return p.client.HIncrBy(ctx, key, earningsField, pay).Err()
}

// earned returns the pay in cents a driver receives for e.
func earned(e events.Event) int64 {
	if completed, ok := e.(events.ServiceCompleted); ok {
		return completed.PayCents
	}
	return 0
}

// project maps an event to the driver fields it changes.
func project(e events.Event) (string, map[string]any, bool) {
	switch e := e.(type) {
	case events.DriverRegistered:
		return e.DriverID, map[string]any{
			"name":        e.Name,
			"status":      driver.Available.String(),
			"address":     e.Address,
			"zone":        strconv.Itoa(e.Zone),
			"service":     "",
			earningsField: "0",
		}, true
	case events.ServiceRequested:
		return e.DriverID, map[string]any{
			"status":  driver.Driving.String(),
			"service": e.Service.ID,
		}, true
	case events.ServicePickedUp:
		return e.DriverID, map[string]any{
			"status":  driver.Driving.String(),
			"address": e.Service.From,
			"zone":    strconv.Itoa(e.Zone),
			"service": e.Service.ID,
		}, true
	case events.ServiceCompleted:
		return e.DriverID, map[string]any{
			"status":  driver.Available.String(),
			"address": e.Service.To,
			"zone":    strconv.Itoa(e.Zone),
			"service": "",
		}, true
	case events.DriverRepositioned:
		return e.DriverID, map[string]any{
			"status":  driver.Driving.String(),
			"address": e.Address,
			"zone":    strconv.Itoa(e.Zone),
		}, true
	}
	return "", nil, false
}
