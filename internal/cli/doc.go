// Package cli implements the interactive MemoryBook shell.
//
// The shell reads one command per line, drives the auth and entry services
// and prints results with level-colored messages. All state of a logged-in
// user lives in a session.Session owned by the App.
package cli
