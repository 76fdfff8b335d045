// Package cli is the line-oriented command interpreter of the dispatcher.
//
// Each command is a single word on its own line (case-insensitive); the shell
// then prompts for the fields the command needs, one per line:
//
//	>REQRIDE
//	User Account Id: 9000
//	From Address: 34 Bay St
//	To Address: 72 Queen St
//
// Q or QUIT, or the end of input, stops the shell.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
)

// Handlers are the use cases the shell drives.
type Handlers struct {
	RegisterUser         commands.RegisterUserCommandHandler
	RegisterDriver       commands.RegisterDriverCommandHandler
	BulkRegisterUsers    commands.BulkRegisterUsersCommandHandler
	BulkRegisterDrivers  commands.BulkRegisterDriversCommandHandler
	RequestRide          commands.RequestRideCommandHandler
	RequestDelivery      commands.RequestDeliveryCommandHandler
	Pickup               commands.PickupCommandHandler
	DropOff              commands.DropOffCommandHandler
	DriveTo              commands.DriveToCommandHandler
	CancelServiceRequest commands.CancelServiceRequestCommandHandler
	SortUsers            commands.SortUsersCommandHandler

	GetUser            queries.GetUserQueryHandler
	GetAllUsers        queries.GetAllUsersQueryHandler
	GetAllDrivers      queries.GetAllDriversQueryHandler
	GetServiceRequests queries.GetServiceRequestsQueryHandler
	GetDispatchSummary queries.GetDispatchSummaryQueryHandler
}

// Shell reads commands from in and writes results and error messages to out.
type Shell struct {
	handlers Handlers
	cityMap  ports.CityMap
	in       *bufio.Scanner
	out      io.Writer
	actions  map[string]func(ctx context.Context) error
}

func NewShell(handlers Handlers, cityMap ports.CityMap, in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		handlers: handlers,
		cityMap:  cityMap,
		in:       bufio.NewScanner(in),
		out:      out,
	}
	s.actions = map[string]func(ctx context.Context) error{
		"USERS":        s.listUsers,
		"DRIVERS":      s.listDrivers,
		"REQUESTS":     func(ctx context.Context) error { return s.listRequests(ctx, false) },
		"SORTBYDIST":   func(ctx context.Context) error { return s.listRequests(ctx, true) },
		"SORTBYNAME":   func(ctx context.Context) error { return s.sortUsers(ctx, commands.SortUsersByName) },
		"SORTBYWALLET": func(ctx context.Context) error { return s.sortUsers(ctx, commands.SortUsersByWallet) },
		"REGUSER":      s.registerUser,
		"REGDRIVER":    s.registerDriver,
		"REQRIDE":      s.requestRide,
		"REQDLVY":      s.requestDelivery,
		"PICKUP":       s.pickup,
		"DROPOFF":      s.dropOff,
		"DRIVETO":      s.driveTo,
		"CANCELREQ":    s.cancelRequest,
		"REVENUES":     s.revenues,
		"SUMMARY":      s.summary,
		"ADDR":         s.checkAddress,
		"DIST":         s.distance,
		"LOADUSERS":    s.loadUsers,
		"LOADDRIVERS":  s.loadDrivers,
	}
	return s
}

// Run processes commands until QUIT, the end of input or ctx is done.
// Command failures are printed and do not stop the shell.
func (s *Shell) Run(ctx context.Context) error {
	s.print(">")
	for s.in.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		word := strings.ToUpper(strings.TrimSpace(s.in.Text()))
		switch {
		case word == "":
		case word == "Q" || word == "QUIT":
			return nil
		default:
			action, ok := s.actions[word]
			if !ok {
				s.printf("Unknown command %s", word)
			} else if err := action(ctx); err != nil {
				s.printf("%s", err.Error())
			}
		}
		s.print("\n>")
	}
	return s.in.Err()
}

// prompt prints label and reads one line. It returns "" at the end of input.
func (s *Shell) prompt(label string) string {
	s.print(label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// promptInt reads an integer, -1 when the line is not a number.
func (s *Shell) promptInt(label string) int {
	n, err := strconv.Atoi(s.prompt(label))
	if err != nil {
		return -1
	}
	return n
}

func (s *Shell) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
