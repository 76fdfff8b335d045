// Package user contains the User aggregate: a registered account that requests
// rides and deliveries and pays for them from its wallet.
//
// Business rules:
//   - A user has a non-empty name and address and a non-negative wallet
//   - The wallet is debited only when a service is dropped off
//   - Rides and deliveries requested are counted per user
package user
