package cli

import (
	"context"

	"dispatch/internal/adapters/in/loader"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
)

func (s *Shell) listUsers(ctx context.Context) error {
	users, err := s.handlers.GetAllUsers.Handle(ctx, queries.NewGetAllUsersQuery())
	if err != nil {
		return err
	}
	for i, u := range users {
		s.printf("\n%-2d. Id: %-5s Name: %-15s Address: %-15s Wallet: %s Rides: %d Deliveries: %d\n",
			i+1, u.ID, u.Name, u.Address, u.Wallet, u.Rides, u.Deliveries)
	}
	return nil
}

func (s *Shell) listDrivers(ctx context.Context) error {
	drivers, err := s.handlers.GetAllDrivers.Handle(ctx, queries.NewGetAllDriversQuery())
	if err != nil {
		return err
	}
	for i, d := range drivers {
		s.printf("\n%-2d. Id: %-5s Name: %-15s Car Model: %-15s License Plate: %-10s Zone: %s\n",
			i+1, d.ID, d.Name, d.CarModel, d.LicensePlate, d.Zone)
		s.printf("    Status: %-10s Address: %-15s Earnings: %s\n", d.Status, d.Address, d.Earnings)
	}
	return nil
}

// listRequests prints every zone queue, or one listing by ascending distance.
func (s *Shell) listRequests(ctx context.Context, byDistance bool) error {
	requests, err := s.handlers.GetServiceRequests.Handle(ctx, queries.NewGetServiceRequestsQuery(byDistance))
	if err != nil {
		return err
	}

	if byDistance {
		for i, r := range requests {
			s.printf("\n%-2d. ", i+1)
			s.printRequest(r)
		}
		return nil
	}

	for _, zone := range kernel.AllZones() {
		s.printf("\nZONE %s\n======\n", zone)
		for _, r := range requests {
			if r.Zone != zone {
				continue
			}
			s.printf("\n%-2d. ", r.Position)
			s.printRequest(r)
		}
	}
	return nil
}

func (s *Shell) printRequest(r queries.ServiceRequestResponse) {
	s.printf("------------------------------------------------------------------------------\n")
	s.printf("Type: %-9s From: %-15s To: %-15s\n", r.Kind, r.From, r.To)
	s.printf("    User: %-5s %-15s Distance: %d Cost: %s\n", r.UserID, r.UserName, r.Distance, r.Cost)
	if r.Kind == request.Delivery {
		s.printf("    Restaurant: %-15s Food Order #: %s\n", r.Restaurant, r.FoodOrderID)
	}
}

func (s *Shell) sortUsers(ctx context.Context, key commands.UserSortKey) error {
	cmd, err := commands.NewSortUsersCommand(key)
	if err != nil {
		return err
	}
	if err = s.handlers.SortUsers.Handle(ctx, cmd); err != nil {
		return err
	}
	return s.listUsers(ctx)
}

func (s *Shell) registerUser(ctx context.Context) error {
	name := s.prompt("Name: ")
	address := s.prompt("Address: ")
	wallet, err := kernel.ParseMoney(s.prompt("Wallet: "))
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(name, address, wallet)
	if err != nil {
		return err
	}
	if _, err = s.handlers.RegisterUser.Handle(ctx, cmd); err != nil {
		return err
	}
	s.printf("User: %-15s Address: %-15s Wallet: %s", name, address, wallet)
	return nil
}

func (s *Shell) registerDriver(ctx context.Context) error {
	name := s.prompt("Name: ")
	carModel := s.prompt("Car Model: ")
	license := s.prompt("Car License: ")
	address := s.prompt("Car address: ")

	cmd, err := commands.NewRegisterDriverCommand(name, carModel, license, address)
	if err != nil {
		return err
	}
	if _, err = s.handlers.RegisterDriver.Handle(ctx, cmd); err != nil {
		return err
	}
	s.printf("Driver: %-15s Car Model: %-15s License Plate: %-10s", name, carModel, license)
	return nil
}

func (s *Shell) requestRide(ctx context.Context) error {
	account := s.prompt("User Account Id: ")
	from := s.prompt("From Address: ")
	to := s.prompt("To Address: ")

	cmd, err := commands.NewRequestRideCommand(account, from, to)
	if err != nil {
		return err
	}
	if _, err = s.handlers.RequestRide.Handle(ctx, cmd); err != nil {
		return err
	}
	return s.printService(ctx, "RIDE", account, from, to)
}

func (s *Shell) requestDelivery(ctx context.Context) error {
	account := s.prompt("User Account Id: ")
	from := s.prompt("From Address: ")
	to := s.prompt("To Address: ")
	restaurant := s.prompt("Restaurant: ")
	foodOrder := s.prompt("Food Order #: ")

	cmd, err := commands.NewRequestDeliveryCommand(account, from, to, restaurant, foodOrder)
	if err != nil {
		return err
	}
	if _, err = s.handlers.RequestDelivery.Handle(ctx, cmd); err != nil {
		return err
	}
	return s.printService(ctx, "DELIVERY", account, from, to)
}

func (s *Shell) printService(ctx context.Context, label string, account string, from string, to string) error {
	query, err := queries.NewGetUserQuery(account)
	if err != nil {
		return err
	}
	u, err := s.handlers.GetUser.Handle(ctx, query)
	if err != nil {
		return err
	}
	s.printf("\n%s for: %-15s From: %-15s To: %-15s", label, u.Name, from, to)
	return nil
}

func (s *Shell) pickup(ctx context.Context) error {
	driverID := s.prompt("driverId: ")
	cmd, err := commands.NewPickupCommand(driverID)
	if err != nil {
		return err
	}
	if _, err = s.handlers.Pickup.Handle(ctx, cmd); err != nil {
		return err
	}
	s.printf("Successful Pick Up - Service driverId %s complete", driverID)
	return nil
}

func (s *Shell) dropOff(ctx context.Context) error {
	driverID := s.prompt("driverId: ")
	cmd, err := commands.NewDropOffCommand(driverID)
	if err != nil {
		return err
	}
	result, err := s.handlers.DropOff.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	s.printf("Successful Drop Off - Service driverId %s complete (cost %s, driver pay %s)",
		driverID, result.Cost, result.Pay)
	return nil
}

func (s *Shell) driveTo(ctx context.Context) error {
	driverID := s.prompt("driverId : ")
	address := s.prompt("address: ")

	cmd, err := commands.NewDriveToCommand(driverID, address)
	if err != nil {
		return err
	}
	if err = s.handlers.DriveTo.Handle(ctx, cmd); err != nil {
		return err
	}
	s.printf("Driver %s driving to %s", driverID, address)
	return nil
}

func (s *Shell) cancelRequest(ctx context.Context) error {
	zone := s.promptInt("zoneNum: ")
	position := s.promptInt("request #: ")

	cmd, err := commands.NewCancelServiceRequestCommand(zone, position)
	if err != nil {
		return err
	}
	if _, err = s.handlers.CancelServiceRequest.Handle(ctx, cmd); err != nil {
		return err
	}
	s.printf("Service zoneNum %d cancelled\nService request #%d cancelled", zone, position)
	return nil
}

func (s *Shell) revenues(ctx context.Context) error {
	summary, err := s.handlers.GetDispatchSummary.Handle(ctx, queries.NewGetDispatchSummaryQuery())
	if err != nil {
		return err
	}
	s.printf("Total Revenue: %s", summary.Revenue)
	return nil
}

func (s *Shell) summary(ctx context.Context) error {
	summary, err := s.handlers.GetDispatchSummary.Handle(ctx, queries.NewGetDispatchSummaryQuery())
	if err != nil {
		return err
	}
	s.printf("Revenue: %s Driver Pay: %s Completed: %d\n", summary.Revenue, summary.Payouts, summary.Completed)
	s.printf("Users: %d Drivers: %d Available: %d\n", summary.Users, summary.Drivers, summary.AvailableDrivers)
	s.printf("Queued: %v (total %d)", summary.QueueSizes, summary.Pending())
	return nil
}

func (s *Shell) checkAddress(context.Context) error {
	address := s.prompt("Address: ")
	s.print(address)
	if s.cityMap.IsValidAddress(address) {
		s.print("\nValid Address")
	} else {
		s.print("\nBad Address")
	}
	return nil
}

func (s *Shell) distance(context.Context) error {
	from := s.prompt("From: ")
	to := s.prompt("To: ")
	s.printf("\nFrom: %s To: %s", from, to)
	s.printf("\nDistance: %d City Blocks", s.cityMap.Distance(from, to))
	return nil
}

func (s *Shell) loadUsers(ctx context.Context) error {
	filename := s.prompt("filename #: ")
	users, err := loader.LoadUsersFile(filename)
	if err != nil {
		return err
	}
	cmd, err := commands.NewBulkRegisterUsersCommand(users)
	if err != nil {
		return err
	}
	n, err := s.handlers.BulkRegisterUsers.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	s.printf("Loaded %d users from %s", n, filename)
	return nil
}

func (s *Shell) loadDrivers(ctx context.Context) error {
	filename := s.prompt("filename #: ")
	drivers, err := loader.LoadDriversFile(filename)
	if err != nil {
		return err
	}
	cmd, err := commands.NewBulkRegisterDriversCommand(drivers)
	if err != nil {
		return err
	}
	n, err := s.handlers.BulkRegisterDrivers.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	s.printf("Loaded %d drivers from %s", n, filename)
	return nil
}
