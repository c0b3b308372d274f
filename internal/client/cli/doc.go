// Package cli provides the interactive challenge-hub command-line client.
//
// App drives the session manager and the REST API client from an
// interactive REPL. On start a persisted session is confirmed with the
// server once; afterwards every command runs against the live session.
//
// Key features:
//   - Register / Login / Logout, profile and password changes
//   - Browse, join, create and cancel challenges, submit proofs
//   - Badges, categories and challenge history
//   - Admin: user list, ban / unban, proof review
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
