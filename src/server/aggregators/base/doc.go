// Package base provides the fan-out/fan-in primitives behind the server's
// batch work: a bounded launcher, an unordered completion stream, a serial
// fold over that stream, failure policies, error collection and metrics.
package base
