package userrepo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

// ErrIDsAreInvalid is returned by Reorder when ids are not a permutation of the
// stored ids.
var ErrIDsAreInvalid = errs.NewValueIsInvalidError("user ids")

// MemoryUserRepository implements UserRepository over a Table.
type MemoryUserRepository struct {
	table *Table
}

func NewMemoryUserRepository(table *Table) *MemoryUserRepository {
	return &MemoryUserRepository{table: table}
}

// Add appends a new user to the listing.
func (r *MemoryUserRepository) Add(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if _, ok := r.table.rows[dto.ID]; ok {
		return errs.NewObjectAlreadyExistsError("userId", dto.ID)
	}

	r.table.rows[dto.ID] = dto
	r.table.order = append(r.table.order, dto.ID)
	return nil
}

// Update overwrites a stored user.
func (r *MemoryUserRepository) Update(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if _, ok := r.table.rows[dto.ID]; !ok {
		return errs.NewObjectNotFoundError("userId", dto.ID)
	}

	r.table.rows[dto.ID] = dto
	return nil
}

// Get retrieves a user by account id.
func (r *MemoryUserRepository) Get(_ context.Context, id kernel.ID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.table.rows[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("userId", id.String())
	}

	return toDomain(dto)
}

// GetAll returns every user in listing order.
func (r *MemoryUserRepository) GetAll(_ context.Context) ([]*user.User, error) {
	users := make([]*user.User, 0, len(r.table.order))
	for _, id := range r.table.order {
		u, err := toDomain(r.table.rows[id])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *MemoryUserRepository) Count(_ context.Context) (int, error) {
	return len(r.table.order), nil
}

// Reorder replaces the listing order.
func (r *MemoryUserRepository) Reorder(_ context.Context, ids []kernel.ID) error {
	if len(ids) != len(r.table.order) {
		return ErrIDsAreInvalid
	}

	order := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		key := id.String()
		if _, ok := r.table.rows[key]; !ok {
			return ErrIDsAreInvalid
		}
		if _, dup := seen[key]; dup {
			return ErrIDsAreInvalid
		}
		seen[key] = struct{}{}
		order = append(order, key)
	}

	r.table.order = order
	return nil
}
