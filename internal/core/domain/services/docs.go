// Package services provides domain services that coordinate several aggregates
// of the dispatch domain.
//
// The package includes:
//   - Tariff: prices rides and deliveries and holds the driver pay rate
//   - DriverDispatcher: first-fit matching of requests to available drivers
//   - Settlement: the drop-off workflow across driver, user and ledger
package services
