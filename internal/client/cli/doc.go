// Package cli provides the interactive fitcoach command-line client.
//
// It wires configuration, the local credential store, the API gateway, and
// an interactive REPL mirroring the product surface: dashboard, activities,
// coach chat, routines, Strava linking, notifications, and profile
// management.
//
// Typical flow: print the build banner, bootstrap the session from the
// persisted credential, then execute user commands. Protected commands are
// gated by the session route guard; while logged out only register/login
// are available.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
