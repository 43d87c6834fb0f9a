// Package cli implements the interactive Pietos client.
//
// It wires the application services together into an App and drives them
// from a small REPL. The App owns two mutually exclusive views — the main
// page and the dashboard — plus the login/register dialog, mirroring the
// structure of the web client it replaces:
//
//   - commands: auth.go (login, register, logout), verify.go (gated
//     verifications), views.go (home, dashboard)
//   - loop and dispatch: repl.go
//   - interactive input helpers with test seams: input.go
package cli
