// Package cli parses command-line arguments, wires the application together
// and maps failures to process exit codes.
package cli
