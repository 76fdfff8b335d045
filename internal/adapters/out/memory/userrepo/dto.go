// Package userrepo provides the user table of the in-memory store and the
// mapping between user aggregates and their stored records.
package userrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
)

// UserDTO is the stored form of a user.
type UserDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	WalletCents int64  `json:"wallet_cents"`
	Rides       int    `json:"rides"`
	Deliveries  int    `json:"deliveries"`
}

// Table keys users by id and keeps the listing order. Both always hold the
// same ids.
type Table struct {
	rows  map[string]UserDTO
	order []string
}

func NewTable() *Table {
	return &Table{rows: make(map[string]UserDTO)}
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	c := &Table{
		rows:  make(map[string]UserDTO, len(t.rows)),
		order: append([]string(nil), t.order...),
	}
	for id, row := range t.rows {
		c.rows[id] = row
	}
	return c
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:          u.ID().String(),
		Name:        u.Name(),
		Address:     u.Address(),
		WalletCents: u.Wallet().Cents(),
		Rides:       u.Rides(),
		Deliveries:  u.Deliveries(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(
		kernel.ID(dto.ID),
		dto.Name,
		dto.Address,
		kernel.Money(dto.WalletCents),
		dto.Rides,
		dto.Deliveries,
	)
}
