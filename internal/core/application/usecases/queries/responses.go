package queries

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/user"
)

// UserResponse is the read model of a user account.
type UserResponse struct {
	ID         kernel.ID
	Name       string
	Address    string
	Wallet     kernel.Money
	Rides      int
	Deliveries int
}

func newUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:         u.ID(),
		Name:       u.Name(),
		Address:    u.Address(),
		Wallet:     u.Wallet(),
		Rides:      u.Rides(),
		Deliveries: u.Deliveries(),
	}
}

// DriverResponse is the read model of a driver. ServiceID is set while the
// driver carries a request.
type DriverResponse struct {
	ID           kernel.ID
	Name         string
	CarModel     string
	LicensePlate string
	Address      string
	Zone         kernel.Zone
	Status       driver.Status
	Earnings     kernel.Money
	ServiceID    *kernel.UUID
}

func newDriverResponse(d *driver.Driver) DriverResponse {
	resp := DriverResponse{
		ID:           d.ID(),
		Name:         d.Name(),
		CarModel:     d.CarModel(),
		LicensePlate: d.LicensePlate(),
		Address:      d.Address(),
		Zone:         d.Zone(),
		Status:       d.Status(),
		Earnings:     d.Earnings(),
	}
	if s := d.Service(); s != nil {
		id := s.ID()
		resp.ServiceID = &id
	}
	return resp
}

// ServiceRequestResponse is a queued request. Position is its 1-based place in
// the zone queue, the value CancelServiceRequestCommand expects.
type ServiceRequestResponse struct {
	ID          kernel.UUID
	Zone        kernel.Zone
	Position    int
	Kind        request.Kind
	UserID      kernel.ID
	UserName    string
	From        string
	To          string
	Distance    int
	Cost        kernel.Money
	Restaurant  string
	FoodOrderID string
}
