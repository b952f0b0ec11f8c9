// Package cli implements the mintrianglepath command line.
//
//	mintrianglepath [file]          solve (the default command)
//	mintrianglepath solve [file]
//	mintrianglepath show [file]     draw the triangle with the path marked
//	mintrianglepath generate        print a random triangle
//
// Input is read from file, or from standard input when file is absent or
// "-". Failures are reported on standard error and mapped to sysexits-style
// exit codes (see exitcode.go).
package cli
