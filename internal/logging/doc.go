// Package logging provides leveled, colored output for the sealbox command.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown. Everything goes to stderr because
// stdout may carry container or plaintext bytes.
//
// Never pass a passphrase, key or plaintext to a log method.
package logging
