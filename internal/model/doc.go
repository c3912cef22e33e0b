// Package model defines the domain types and value objects for the
// confvet CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Rule, Finding, FileResult, Summary) are built fresh on
// every scan — there are no persistent state files, and nothing outlives
// a single process invocation.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
