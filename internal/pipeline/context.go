// Package pipeline composes the scanner, parser, inference, and emitter
// stages into the single translate(text) -> text function spec.md §2
// describes, following the same processor-chain shape the teacher's own
// pipeline package uses, narrowed to this system's four stages.
package pipeline

import (
	"github.com/shencraft/shenc/internal/ast"
	"github.com/shencraft/shenc/internal/token"
)

// Context carries a single translation unit's state as it crosses stage
// boundaries. Each Processor reads the fields produced by the stage before
// it and fills in its own.
type Context struct {
	SourceCode string
	FilePath   string

	Tokens []token.Token
	Form   ast.Node

	Output string
	Err    error
}

// NewContext seeds a Context with source text ready for the first stage.
func NewContext(source string) *Context {
	return &Context{SourceCode: source}
}

// Failed reports whether an earlier stage has already recorded a
// terminal error; later stages skip their work once this is true.
func (c *Context) Failed() bool {
	return c.Err != nil
}
