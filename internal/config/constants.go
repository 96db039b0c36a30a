// Package config holds the small set of tunables the core pipeline and its
// CLI front end share: recursion limits, recognized source extensions, and
// the emitter's chosen placeholder-type naming scheme.
package config

// SourceFileExt is the canonical extension for Shen-family source files.
const SourceFileExt = ".shen"

// SourceFileExtensions are all extensions recognized as Shen-family source
// files; the functional test uses them to find its fixtures.
var SourceFileExtensions = []string{".shen", ".shn"}

// MaxNestingDepth bounds the parser's recursive descent over nested
// S-expressions (spec.md §5: "suggested: 1,000 nested forms"). Exceeding it
// raises diagnostics.KindNestingTooDeep rather than overflowing the Go call
// stack.
const MaxNestingDepth = 1000

// UntypedParamPrefix is the placeholder generic-type name stem the emitter
// uses for function/lambda parameters with no narrowed type (spec.md §9,
// Open Question 5): the first untyped parameter in a signature is T0, the
// second T1, and so on.
const UntypedParamPrefix = "T"
