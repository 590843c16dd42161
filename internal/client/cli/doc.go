// Package cli provides the interactive TripBuddy command-line client.
//
// It wires configuration, the on-device database, the account directory and
// the offline gazetteer, then runs a REPL that stands in for the app screens:
//
//   - signup / signin / signout / whoami
//   - trip: enter dates and budget, validated before it is kept
//   - search, pin, add, remove, locations: build the destination list
//   - summary: the trip as the next screen receives it
//   - tickets: booked events in chronological order
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
