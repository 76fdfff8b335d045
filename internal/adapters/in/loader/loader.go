// Package loader reads the preregistration files.
//
// A users file holds one record per user: name, address and wallet on three
// lines, followed by a blank separator line. A drivers file holds four lines
// per driver: name, car model, license plate and address. Blank lines between
// records are skipped in both formats.
//
// Ids are assigned in file order with the live registration rule, so the first
// user of a file is "9000" and the first driver "7000".
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
)

const (
	userFields   = 3
	driverFields = 4
)

// ErrTruncatedRecord is wrapped when a file ends in the middle of a record.
var ErrTruncatedRecord = errors.New("truncated record")

// LoadUsersFile opens path and reads it with LoadUsers.
func LoadUsersFile(path string) ([]*user.User, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadUsers(f)
}

// LoadDriversFile opens path and reads it with LoadDrivers.
func LoadDriversFile(path string) ([]*driver.Driver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadDrivers(f)
}

// LoadUsers parses a users file. Addresses are not checked here.
func LoadUsers(r io.Reader) ([]*user.User, error) {
	var users []*user.User
	err := readRecords(r, userFields, func(line int, fields []string) error {
		wallet, err := kernel.ParseMoney(fields[2])
		if err != nil {
			return fmt.Errorf("line %d: wallet %q: %w", line+2, fields[2], err)
		}

		id := kernel.NewSequentialID(kernel.UserIDBase, len(users))
		u, err := user.NewUser(id, fields[0], fields[1], wallet)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// LoadDrivers parses a drivers file. Zones are left unmapped; registration
// computes them from the address.
func LoadDrivers(r io.Reader) ([]*driver.Driver, error) {
	var drivers []*driver.Driver
	err := readRecords(r, driverFields, func(line int, fields []string) error {
		id := kernel.NewSequentialID(kernel.DriverIDBase, len(drivers))
		d, err := driver.NewDriver(id, fields[0], fields[1], fields[2], fields[3], kernel.ZoneNone)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		drivers = append(drivers, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return drivers, nil
}

// readRecords groups non-blank lines into records of size lines and calls fn
// with the line number of the first field.
func readRecords(r io.Reader, size int, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)

	var (
		fields []string
		start  int
		line   int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" && len(fields) == 0 {
			continue
		}
		if len(fields) == 0 {
			start = line
		}
		fields = append(fields, text)
		if len(fields) < size {
			continue
		}
		if err := fn(start, fields); err != nil {
			return err
		}
		fields = fields[:0]
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(fields) > 0 {
		return fmt.Errorf("line %d: %w: want %d lines, got %d", start, ErrTruncatedRecord, size, len(fields))
	}
	return nil
}
