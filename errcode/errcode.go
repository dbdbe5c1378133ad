// Package errcode defines the closed set of failure codes the synthesis
// compiler reports when a program cannot be built.
//
// Codes are process-wide constants with stable short names (usable as
// identifiers in diagnostics) and human-readable descriptions. The tables
// backing the lookups are initialized statically and never mutated, so all
// lookups are allocation-free and safe for concurrent use.
package errcode

// Code is a compiler-level failure code.
//
// The zero value is OK and always denotes success. The set of codes is
// closed; callers must not fabricate values outside it. Passing an
// out-of-range code to Name or Text is a precondition violation and panics.
type Code int

const (
	// OK indicates no error.
	OK Code = iota

	// NoMem indicates an allocation failed while building a program.
	NoMem

	// LargeText indicates the source text exceeds the compiler's size limit.
	LargeText
)

// NumCodes is the number of defined codes.
const NumCodes = int(LargeText) + 1

var names = [NumCodes]string{
	OK:        "OK",
	NoMem:     "NOMEM",
	LargeText: "LARGETEXT",
}

var texts = [NumCodes]string{
	OK:        "no error",
	NoMem:     "out of memory",
	LargeText: "source text too large",
}

// Name returns the canonical short identifier for the code, e.g.
// Name(LargeText) = "LARGETEXT".
func Name(c Code) string {
	return names[c]
}

// Text returns the human-readable description of the code, suitable for
// display to the user.
func Text(c Code) string {
	return texts[c]
}

// String returns the code's short name.
func (c Code) String() string {
	return Name(c)
}

// Severity is the level of a compiler diagnostic.
type Severity int

const (
	// Warning marks a diagnostic that does not prevent compilation.
	Warning Severity = iota

	// Error marks a diagnostic that makes the compilation fail.
	Error
)

// String returns the lower-case severity label used in diagnostics.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
