// Package ast defines the Shen abstract syntax tree: a small closed set of
// tagged-variant nodes (spec.md §3), each owned exclusively by its parent —
// no sharing, no cycles. Nodes are produced by the parser, mutated once in
// place by the inference pass (to tighten type annotations), and read-only
// thereafter during emission.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shencraft/shenc/internal/token"
)

// ShenType is the closed enumeration of semantic type tags (spec.md §3).
type ShenType int

const (
	Integer ShenType = iota
	Float
	String
	Boolean
	Symbol // default when a binding's type is unknown
	List
	Function
	Nil
)

func (t ShenType) String() string {
	switch t {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	case Symbol:
		return "Symbol"
	case List:
		return "List"
	case Function:
		return "Function"
	case Nil:
		return "Nil"
	default:
		return "Unknown"
	}
}

// ValueKind distinguishes the payload carried by a Value.
type ValueKind int

const (
	ValueInteger ValueKind = iota
	ValueFloat
	ValueString
	ValueBoolean
	ValueNil
)

// Value is a tagged union of literal payloads (spec.md §3 ShenValue). Only
// the field matching Kind is meaningful.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
	Bool  bool
}

func IntegerValue(v int64) Value   { return Value{Kind: ValueInteger, Int: v} }
func FloatValue(v float64) Value   { return Value{Kind: ValueFloat, Float: v} }
func StringValue(v string) Value   { return Value{Kind: ValueString, Str: v} }
func BooleanValue(v bool) Value    { return Value{Kind: ValueBoolean, Bool: v} }
func NilValue() Value              { return Value{Kind: ValueNil} }

func (v Value) Type() ShenType {
	switch v.Kind {
	case ValueInteger:
		return Integer
	case ValueFloat:
		return Float
	case ValueString:
		return String
	case ValueBoolean:
		return Boolean
	default:
		return Nil
	}
}

// Param is one (name, type) entry in a Function's or Lambda's argument list.
type Param struct {
	Name string
	Type ShenType
}

// Node is the interface every ShenNode variant implements.
type Node interface {
	Accept(v Visitor)
	// Type returns this node's current best-known type. Before inference
	// runs it reflects only what the parser could tell (Symbol for most
	// non-literal forms); after inference it is tightened in place.
	Type() ShenType
	// Token returns the node's anchor token, used for diagnostics.
	Token() token.Token
}

// Visitor dispatches over every Node variant. Both the emitter and any
// debug tree-printer share this traversal instead of re-implementing a
// type switch each.
type Visitor interface {
	VisitFunction(n *FunctionNode)
	VisitLambda(n *LambdaNode)
	VisitApplication(n *ApplicationNode)
	VisitBinaryOperation(n *BinaryOperationNode)
	VisitConditional(n *ConditionalNode)
	VisitList(n *ListNode)
	VisitLiteral(n *LiteralNode)
	VisitSymbol(n *SymbolNode)
	VisitLet(n *LetNode)
	VisitNil(n *NilNode)
}

// FunctionNode is a named top-level binding: (defun NAME (args...) BODY).
type FunctionNode struct {
	Tok        token.Token
	Name       string
	Args       []Param
	ReturnType ShenType
	Body       Node
}

func (n *FunctionNode) Accept(v Visitor)    { v.VisitFunction(n) }
func (n *FunctionNode) Type() ShenType      { return n.ReturnType }
func (n *FunctionNode) Token() token.Token  { return n.Tok }

// LambdaNode is an anonymous function: (lambda (args...) BODY).
type LambdaNode struct {
	Tok        token.Token
	Args       []Param
	ReturnType ShenType
	Body       Node
}

func (n *LambdaNode) Accept(v Visitor)   { v.VisitLambda(n) }
func (n *LambdaNode) Type() ShenType     { return n.ReturnType }
func (n *LambdaNode) Token() token.Token { return n.Tok }

// ApplicationNode is a prefix call: (FUNC ARG1 ARG2 ...).
type ApplicationNode struct {
	Tok  token.Token
	Func Node
	Args []Node
}

func (n *ApplicationNode) Accept(v Visitor)   { v.VisitApplication(n) }
func (n *ApplicationNode) Type() ShenType     { return Symbol }
func (n *ApplicationNode) Token() token.Token { return n.Tok }

// BinaryOperationNode is an arithmetic or comparison form: (OP LEFT RIGHT).
type BinaryOperationNode struct {
	Tok        token.Token
	Operator   string
	Left       Node
	Right      Node
	ResultType ShenType
}

func (n *BinaryOperationNode) Accept(v Visitor)   { v.VisitBinaryOperation(n) }
func (n *BinaryOperationNode) Type() ShenType     { return n.ResultType }
func (n *BinaryOperationNode) Token() token.Token { return n.Tok }

// ConditionalNode is (if CONDITION TRUE FALSE?); FalseBranch is nil when omitted.
type ConditionalNode struct {
	Tok         token.Token
	Condition   Node
	TrueBranch  Node
	FalseBranch Node
}

func (n *ConditionalNode) Accept(v Visitor) { v.VisitConditional(n) }
func (n *ConditionalNode) Type() ShenType {
	// spec.md §4.3 and §9 Open Question 3: only the true branch is unified.
	if n.TrueBranch == nil {
		return Symbol
	}
	return n.TrueBranch.Type()
}
func (n *ConditionalNode) Token() token.Token { return n.Tok }

// ListNode is a homogeneous list literal: (list ELEM1 ELEM2 ...).
type ListNode struct {
	Tok         token.Token
	Elements    []Node
	ElementType ShenType
}

func (n *ListNode) Accept(v Visitor)   { v.VisitList(n) }
func (n *ListNode) Type() ShenType     { return List }
func (n *ListNode) Token() token.Token { return n.Tok }

// LiteralNode carries a constant value.
type LiteralNode struct {
	Tok   token.Token
	Value Value
}

func (n *LiteralNode) Accept(v Visitor)   { v.VisitLiteral(n) }
func (n *LiteralNode) Type() ShenType     { return n.Value.Type() }
func (n *LiteralNode) Token() token.Token { return n.Tok }

// SymbolNode is a variable reference or an unresolved identifier.
type SymbolNode struct {
	Tok      token.Token
	Name     string
	TypeHint ShenType
}

func (n *SymbolNode) Accept(v Visitor)   { v.VisitSymbol(n) }
func (n *SymbolNode) Type() ShenType     { return n.TypeHint }
func (n *SymbolNode) Token() token.Token { return n.Tok }

// LetNode is the supplemented (let NAME VALUE BODY) binding form (SPEC_FULL
// §4.2): spec.md's token set reserves the Let keyword but its reference
// grammar never consumes it. Adding this form gives that token a use.
type LetNode struct {
	Tok   token.Token
	Name  *SymbolNode
	Value Node
	Body  Node
}

func (n *LetNode) Accept(v Visitor) { v.VisitLet(n) }
func (n *LetNode) Type() ShenType {
	if n.Body == nil {
		return Symbol
	}
	return n.Body.Type()
}
func (n *LetNode) Token() token.Token { return n.Tok }

// NilNode is the explicit nil literal.
type NilNode struct {
	Tok token.Token
}

func (n *NilNode) Accept(v Visitor)   { v.VisitNil(n) }
func (n *NilNode) Type() ShenType     { return Nil }
func (n *NilNode) Token() token.Token { return n.Tok }

// TryConvert performs the narrow set of literal-level coercions spec.md
// §4.3 defines: integer<->float, numeric->string (decimal rendering),
// numeric->boolean (nonzero->true), and parsing a symbol's name into a
// target literal. Identity conversion always succeeds. Every other
// combination returns ok=false ("no conversion").
func TryConvert(n Node, target ShenType) (Node, bool) {
	if n.Type() == target {
		return n, true
	}

	switch lit := n.(type) {
	case *LiteralNode:
		switch lit.Value.Kind {
		case ValueInteger:
			switch target {
			case Float:
				return &LiteralNode{Tok: lit.Tok, Value: FloatValue(float64(lit.Value.Int))}, true
			case String:
				return &LiteralNode{Tok: lit.Tok, Value: StringValue(strconv.FormatInt(lit.Value.Int, 10))}, true
			case Boolean:
				return &LiteralNode{Tok: lit.Tok, Value: BooleanValue(lit.Value.Int != 0)}, true
			}
		case ValueFloat:
			switch target {
			case Integer:
				return &LiteralNode{Tok: lit.Tok, Value: IntegerValue(int64(lit.Value.Float))}, true
			case String:
				return &LiteralNode{Tok: lit.Tok, Value: StringValue(formatFloat(lit.Value.Float))}, true
			case Boolean:
				return &LiteralNode{Tok: lit.Tok, Value: BooleanValue(lit.Value.Float != 0)}, true
			}
		}
		return nil, false
	case *SymbolNode:
		switch target {
		case Integer:
			if v, err := strconv.ParseInt(lit.Name, 10, 64); err == nil {
				return &LiteralNode{Tok: lit.Tok, Value: IntegerValue(v)}, true
			}
		case Float:
			if v, err := strconv.ParseFloat(lit.Name, 64); err == nil {
				return &LiteralNode{Tok: lit.Tok, Value: FloatValue(v)}, true
			}
		case Boolean:
			switch strings.ToLower(lit.Name) {
			case "true":
				return &LiteralNode{Tok: lit.Tok, Value: BooleanValue(true)}, true
			case "false":
				return &LiteralNode{Tok: lit.Tok, Value: BooleanValue(false)}, true
			}
		case String:
			return &LiteralNode{Tok: lit.Tok, Value: StringValue(lit.Name)}, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String renders a Value for debugging; emission has its own formatting
// rules (internal/emitter) and does not use this.
func (v Value) String() string {
	switch v.Kind {
	case ValueInteger:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		return formatFloat(v.Float)
	case ValueString:
		return fmt.Sprintf("%q", v.Str)
	case ValueBoolean:
		return strconv.FormatBool(v.Bool)
	default:
		return "nil"
	}
}
