// Package cli is the interactive Krishi Sahayata terminal client.
//
// It wires configuration, the local key-value store, the credential and
// session manager, and the language resolver, then serves a line oriented
// REPL. Each line is a command name followed by arguments; the dispatch
// table in commands.go maps names to App handlers.
//
// Commands:
//   - signup, login, logout, whoami, session
//   - lang <code|1|2|3>, t <key>
//   - color, log, help, exit
//
// App.Run blocks until the user exits, stdin reaches EOF or ctx is
// cancelled.
package cli
