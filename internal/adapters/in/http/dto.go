package http

import (
	"dispatch/internal/core/application/usecases/queries"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Wallet     float64 `json:"wallet"`
	Rides      int     `json:"rides"`
	Deliveries int     `json:"deliveries"`
}

func newUser(u queries.UserResponse) User {
	return User{
		ID:         u.ID.String(),
		Name:       u.Name,
		Address:    u.Address,
		Wallet:     u.Wallet.Float64(),
		Rides:      u.Rides,
		Deliveries: u.Deliveries,
	}
}

type Driver struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CarModel     string  `json:"car_model"`
	LicensePlate string  `json:"license_plate"`
	Address      string  `json:"address"`
	Zone         int     `json:"zone"`
	Status       string  `json:"status"`
	Earnings     float64 `json:"earnings"`
	ServiceID    *string `json:"service_id,omitempty"`
}

func newDriver(d queries.DriverResponse) Driver {
	resp := Driver{
		ID:           d.ID.String(),
		Name:         d.Name,
		CarModel:     d.CarModel,
		LicensePlate: d.LicensePlate,
		Address:      d.Address,
		Zone:         d.Zone.Int(),
		Status:       d.Status.String(),
		Earnings:     d.Earnings.Float64(),
	}
	if d.ServiceID != nil {
		id := d.ServiceID.String()
		resp.ServiceID = &id
	}
	return resp
}

type ServiceRequest struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Zone        int     `json:"zone"`
	Position    int     `json:"position"`
	UserID      string  `json:"user_id"`
	UserName    string  `json:"user_name"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	Distance    int     `json:"distance"`
	Cost        float64 `json:"cost"`
	Restaurant  string  `json:"restaurant,omitempty"`
	FoodOrderID string  `json:"food_order_id,omitempty"`
}

func newServiceRequest(r queries.ServiceRequestResponse) ServiceRequest {
	return ServiceRequest{
		ID:          r.ID.String(),
		Kind:        r.Kind.String(),
		Zone:        r.Zone.Int(),
		Position:    r.Position,
		UserID:      r.UserID.String(),
		UserName:    r.UserName,
		From:        r.From,
		To:          r.To,
		Distance:    r.Distance,
		Cost:        r.Cost.Float64(),
		Restaurant:  r.Restaurant,
		FoodOrderID: r.FoodOrderID,
	}
}

type Summary struct {
	Revenue          float64 `json:"revenue"`
	DriverPay        float64 `json:"driver_pay"`
	Completed        int     `json:"completed"`
	Users            int     `json:"users"`
	Drivers          int     `json:"drivers"`
	AvailableDrivers int     `json:"available_drivers"`
	Pending          int     `json:"pending"`
	QueueSizes       []int   `json:"queue_sizes"`
}

func newSummary(s queries.DispatchSummaryResponse) Summary {
	return Summary{
		Revenue:          s.Revenue.Float64(),
		DriverPay:        s.Payouts.Float64(),
		Completed:        s.Completed,
		Users:            s.Users,
		Drivers:          s.Drivers,
		AvailableDrivers: s.AvailableDrivers,
		Pending:          s.Pending(),
		QueueSizes:       s.QueueSizes[:],
	}
}
