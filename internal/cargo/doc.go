// Package cargo invokes the cargo build tool and the NDK's stripping
// utility as child processes.
//
// Builds run synchronously with inherited stdio and report the child's
// exit code as data rather than as a Go error, leaving the abort decision
// to the orchestrator. Stripping is best-effort.
package cargo
