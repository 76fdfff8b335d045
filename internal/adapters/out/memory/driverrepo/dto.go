// Package driverrepo provides the driver table of the in-memory store.
package driverrepo

import (
	"dispatch/internal/adapters/out/memory/queuerepo"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
)

// DriverDTO is the stored form of a driver. Service is set while the driver
// carries a request.
type DriverDTO struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	CarModel      string                `json:"car_model"`
	LicensePlate  string                `json:"license_plate"`
	Address       string                `json:"address"`
	Zone          int                   `json:"zone"`
	Status        string                `json:"status"`
	EarningsCents int64                 `json:"earnings_cents"`
	Service       *queuerepo.RequestDTO `json:"service,omitempty"`
}

// Table keys drivers by id and keeps the registration order.
type Table struct {
	rows  map[string]DriverDTO
	order []string
}

func NewTable() *Table {
	return &Table{rows: make(map[string]DriverDTO)}
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	c := &Table{
		rows:  make(map[string]DriverDTO, len(t.rows)),
		order: append([]string(nil), t.order...),
	}
	for id, row := range t.rows {
		if row.Service != nil {
			service := *row.Service
			row.Service = &service
		}
		c.rows[id] = row
	}
	return c
}

// FromDomain converts a driver to its stored form.
func FromDomain(d *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:            d.ID().String(),
		Name:          d.Name(),
		CarModel:      d.CarModel(),
		LicensePlate:  d.LicensePlate(),
		Address:       d.Address(),
		Zone:          d.Zone().Int(),
		Status:        d.Status().String(),
		EarningsCents: d.Earnings().Cents(),
	}
	if s := d.Service(); s != nil {
		service := queuerepo.RequestFromDomain(s)
		dto.Service = &service
	}
	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var service *request.Request
	if dto.Service != nil {
		if service, err = queuerepo.RequestToDomain(*dto.Service); err != nil {
			return nil, err
		}
	}

	return driver.RestoreDriver(
		kernel.ID(dto.ID),
		dto.Name,
		dto.CarModel,
		dto.LicensePlate,
		dto.Address,
		kernel.Zone(dto.Zone),
		status,
		kernel.Money(dto.EarningsCents),
		service,
	)
}
