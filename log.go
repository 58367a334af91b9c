package goosig

import "github.com/rs/zerolog"

// logger is silent by default, matching how a library should behave
// until its embedding application opts in — the same zerolog.Nop()
// default convention used by the rest of the rs/zerolog-based tooling
// in the example pack. SetLogger lets a host application route this
// package's diagnostics (group construction, signing, verification
// accepts and failed verification reasons) into its own structured log
// sink.
var logger = zerolog.Nop()

// SetLogger replaces the package logger. Call once at startup; the
// package does not synchronize concurrent SetLogger calls against
// concurrent Sign/Verify calls, the same single-assignment-at-init
// expectation libraries built around a package-level zerolog.Logger
// typically carry.
func SetLogger(l zerolog.Logger) {
	logger = l
}
