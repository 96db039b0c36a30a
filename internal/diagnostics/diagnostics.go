// Package diagnostics defines the uniform error taxonomy shared by every
// stage of the pipeline (scanner, parser, inference, emitter). Each stage
// lifts its local failure into a *Error at the point where it crosses the
// stage boundary; no stage inspects another stage's internal error shape.
package diagnostics

import (
	"fmt"

	"github.com/shencraft/shenc/internal/token"
)

// Stage identifies which pipeline phase raised an error.
type Stage string

const (
	StageLexer     Stage = "lexer"
	StageParser    Stage = "parser"
	StageInference Stage = "inference"
	StageEmitter   Stage = "emitter"
	StageInternal  Stage = "internal"
)

// Kind is a fine-grained error code, analogous to spec.md's ParseError
// variants (UnexpectedToken, UnbalancedParens, EmptyInput, MalformedForm,
// NestingTooDeep) plus one code per stage for Lex/Type/Emit/Internal errors.
type Kind string

const (
	// Lexer
	KindInvalidNumber       Kind = "L001"
	KindUnexpectedCharacter Kind = "L002"

	// Parser
	KindUnexpectedToken  Kind = "P001"
	KindUnbalancedParens Kind = "P002"
	KindEmptyInput       Kind = "P003"
	KindMalformedForm    Kind = "P004"
	KindNestingTooDeep   Kind = "P005"

	// Inference (TypeError) — from -> to conversion that has no rule
	KindNoConversion Kind = "T001"

	// Emitter
	KindUnsupported Kind = "E001"

	// Internal — should be unreachable from well-formed input
	KindInternal Kind = "I001"
)

var templates = map[Kind]string{
	KindInvalidNumber:       "invalid number: %s",
	KindUnexpectedCharacter: "unexpected character: %s",
	KindUnexpectedToken:     "unexpected token: %s",
	KindUnbalancedParens:    "unbalanced parentheses",
	KindEmptyInput:          "empty input",
	KindMalformedForm:       "malformed %s form",
	KindNestingTooDeep:      "nesting too deep (limit %d)",
	KindNoConversion:        "no conversion from %s to %s",
	KindUnsupported:         "unsupported construct: %s",
	KindInternal:            "internal error: %s",
}

// Error is the single error type produced by every pipeline stage.
type Error struct {
	Stage Stage
	Kind  Kind
	Args  []interface{}
	Token token.Token
	// HasToken distinguishes a zero-value Token (valid at EOF/position 0)
	// from "no token is associated with this error".
	HasToken bool
}

func (e *Error) Error() string {
	template, ok := templates[e.Kind]
	message := string(e.Kind)
	if ok {
		message = fmt.Sprintf(template, e.Args...)
	}
	if e.HasToken {
		return fmt.Sprintf("[%s] %s at %d:%d: %s", e.Stage, e.Kind, e.Token.Line, e.Token.Column, message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Stage, e.Kind, message)
}

func newError(stage Stage, kind Kind, args ...interface{}) *Error {
	return &Error{Stage: stage, Kind: kind, Args: args}
}

func newTokenError(stage Stage, kind Kind, tok token.Token, args ...interface{}) *Error {
	return &Error{Stage: stage, Kind: kind, Token: tok, HasToken: true, Args: args}
}

// LexError constructs a scanner-stage failure.
func LexError(kind Kind, line, column int, args ...interface{}) *Error {
	return newTokenError(StageLexer, kind, token.Token{Line: line, Column: column}, args...)
}

// ParseError constructs a parser-stage failure anchored on the offending token.
func ParseError(kind Kind, tok token.Token, args ...interface{}) *Error {
	return newTokenError(StageParser, kind, tok, args...)
}

// TypeError constructs an inference-stage failure describing a failed conversion.
func TypeError(from, to fmt.Stringer) *Error {
	return newError(StageInference, KindNoConversion, from.String(), to.String())
}

// EmitError constructs an emitter-stage failure.
func EmitError(message string) *Error {
	return newError(StageEmitter, KindUnsupported, message)
}

// Internal constructs an error for a condition that should be unreachable
// from well-formed input — a programmer bug, not a user-facing failure.
func Internal(message string) *Error {
	return newError(StageInternal, KindInternal, message)
}
