// Package cli provides the interactive GophChat terminal client.
//
// It wires configuration, a chat client for the configured transport and a
// REPL. After create or login a background listener prints incoming
// messages until the session ends or the account is deleted.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
