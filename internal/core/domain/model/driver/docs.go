// Package driver contains the Driver aggregate and its availability state machine.
//
// A driver is either AVAILABLE or DRIVING and carries at most one service request.
// A request is attached while driving a passenger or a delivery; repositioning
// with DriveTo leaves the driver DRIVING without one.
package driver
