// Package parser builds an AST out of a token stream using recursive
// descent over parenthesized S-expressions (spec.md §4.2). Every open
// paren dispatches on the token that follows it; there is no operator
// precedence to resolve because the surface syntax is fully prefix.
package parser

import (
	"strings"

	"github.com/shencraft/shenc/internal/ast"
	"github.com/shencraft/shenc/internal/config"
	"github.com/shencraft/shenc/internal/diagnostics"
	"github.com/shencraft/shenc/internal/token"
)

// Parser consumes a fixed token slice produced by the lexer.
type Parser struct {
	tokens []token.Token
	pos    int
	depth  int
}

// New returns a Parser over tokens (including the trailing EOF token).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes exactly one root form from the stream (spec.md §6's
// `parse -> ShenNode`, resolved in SPEC_FULL §9.1) and errors
// UnexpectedToken if anything but EOF follows it.
func Parse(tokens []token.Token) (ast.Node, error) {
	p := New(tokens)
	if p.current().Type == token.EOF {
		return nil, diagnostics.ParseError(diagnostics.KindEmptyInput, p.current())
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Type != token.EOF {
		return nil, diagnostics.ParseError(diagnostics.KindUnexpectedToken, tok, string(tok.Type))
	}
	return node, nil
}

func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(t token.Type) (token.Token, error) {
	tok := p.current()
	if tok.Type != t {
		return tok, diagnostics.ParseError(diagnostics.KindUnexpectedToken, tok, string(tok.Type))
	}
	return p.advance(), nil
}

// parseExpr parses a single expression: an atom, or a fully parenthesized
// form dispatched on its head token.
func (p *Parser) parseExpr() (ast.Node, error) {
	tok := p.current()
	switch tok.Type {
	case token.OpenParen:
		return p.parseForm()
	case token.CloseParen:
		return nil, diagnostics.ParseError(diagnostics.KindUnbalancedParens, tok)
	case token.Number:
		p.advance()
		return &ast.LiteralNode{Tok: tok, Value: ast.FloatValue(tok.Number())}, nil
	case token.StringLiteral:
		p.advance()
		return &ast.LiteralNode{Tok: tok, Value: ast.StringValue(tok.Literal.(string))}, nil
	case token.Identifier:
		p.advance()
		return p.symbolOrNil(tok), nil
	case token.Operator:
		// A bare operator with no surrounding parens is treated as a symbol
		// reference (e.g. passed as a higher-order function argument).
		p.advance()
		return &ast.SymbolNode{Tok: tok, Name: tok.Lexeme, TypeHint: ast.Symbol}, nil
	case token.EOF:
		// Parse rejects empty input before descending, so EOF here means a
		// form was left open.
		return nil, diagnostics.ParseError(diagnostics.KindUnbalancedParens, tok)
	default:
		return nil, diagnostics.ParseError(diagnostics.KindUnexpectedToken, tok, string(tok.Type))
	}
}

func (p *Parser) symbolOrNil(tok token.Token) ast.Node {
	if strings.EqualFold(tok.Lexeme, "nil") {
		return &ast.NilNode{Tok: tok}
	}
	return &ast.SymbolNode{Tok: tok, Name: tok.Lexeme, TypeHint: ast.Symbol}
}

// parseForm consumes an OpenParen and dispatches on the following token,
// enforcing config.MaxNestingDepth along the way.
func (p *Parser) parseForm() (ast.Node, error) {
	openTok, err := p.expect(token.OpenParen)
	if err != nil {
		return nil, err
	}
	p.depth++
	if p.depth > config.MaxNestingDepth {
		return nil, diagnostics.ParseError(diagnostics.KindNestingTooDeep, openTok, config.MaxNestingDepth)
	}
	defer func() { p.depth-- }()

	var node ast.Node
	switch p.current().Type {
	case token.Defun:
		node, err = p.parseDefun(openTok)
	case token.Lambda:
		node, err = p.parseLambda(openTok)
	case token.If:
		node, err = p.parseConditional(openTok)
	case token.Let:
		node, err = p.parseLet(openTok)
	case token.ListKeyword:
		node, err = p.parseList(openTok)
	case token.CloseParen:
		return nil, diagnostics.ParseError(diagnostics.KindMalformedForm, openTok, "empty")
	default:
		node, err = p.parseApplicationOrBinary(openTok)
	}
	if err != nil {
		return nil, err
	}
	if p.current().Type == token.EOF {
		return nil, diagnostics.ParseError(diagnostics.KindUnbalancedParens, p.current())
	}
	if _, err := p.expect(token.CloseParen); err != nil {
		return nil, err
	}
	return node, nil
}

// parseDefun: (defun NAME (ARG...) BODY)
func (p *Parser) parseDefun(openTok token.Token) (ast.Node, error) {
	p.advance() // defun
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, diagnostics.ParseError(diagnostics.KindMalformedForm, openTok, "defun")
	}
	args, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionNode{
		Tok:        openTok,
		Name:       nameTok.Lexeme,
		Args:       args,
		ReturnType: body.Type(),
		Body:       body,
	}, nil
}

// parseLambda: (lambda (ARG...) BODY)
func (p *Parser) parseLambda(openTok token.Token) (ast.Node, error) {
	p.advance() // lambda
	args, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.LambdaNode{Tok: openTok, Args: args, ReturnType: body.Type(), Body: body}, nil
}

// parseParamList: (IDENT...) — the argument-name list shared by defun/lambda.
func (p *Parser) parseParamList() ([]ast.Param, error) {
	open, err := p.expect(token.OpenParen)
	if err != nil {
		return nil, diagnostics.ParseError(diagnostics.KindMalformedForm, open, "argument list")
	}
	var params []ast.Param
	for p.current().Type != token.CloseParen {
		if p.current().Type == token.EOF {
			return nil, diagnostics.ParseError(diagnostics.KindUnbalancedParens, p.current())
		}
		tok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: tok.Lexeme, Type: ast.Symbol})
	}
	if _, err := p.expect(token.CloseParen); err != nil {
		return nil, err
	}
	return params, nil
}

// parseConditional: (if COND TRUE [FALSE])
func (p *Parser) parseConditional(openTok token.Token) (ast.Node, error) {
	p.advance() // if
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	trueBranch, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var falseBranch ast.Node
	if p.current().Type != token.CloseParen {
		falseBranch, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	return &ast.ConditionalNode{Tok: openTok, Condition: cond, TrueBranch: trueBranch, FalseBranch: falseBranch}, nil
}

// parseLet: (let NAME VALUE BODY) — a supplemental form (SPEC_FULL §4.2)
// giving the reserved Let token an actual grammar production.
func (p *Parser) parseLet(openTok token.Token) (ast.Node, error) {
	p.advance() // let
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, diagnostics.ParseError(diagnostics.KindMalformedForm, openTok, "let")
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	name := &ast.SymbolNode{Tok: nameTok, Name: nameTok.Lexeme, TypeHint: value.Type()}
	return &ast.LetNode{Tok: openTok, Name: name, Value: value, Body: body}, nil
}

// parseList: (list ELEM...)
func (p *Parser) parseList(openTok token.Token) (ast.Node, error) {
	p.advance() // list
	var elems []ast.Node
	for p.current().Type != token.CloseParen {
		if p.current().Type == token.EOF {
			return nil, diagnostics.ParseError(diagnostics.KindUnbalancedParens, p.current())
		}
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	elemType := ast.Symbol
	if len(elems) > 0 {
		elemType = elems[0].Type()
	}
	return &ast.ListNode{Tok: openTok, Elements: elems, ElementType: elemType}, nil
}

// parseApplicationOrBinary distinguishes (OP LEFT RIGHT) — exactly two
// operands headed by an Operator token — from a general application
// (FUNC ARG...), where FUNC is any identifier, operator-as-value, or
// nested form.
func (p *Parser) parseApplicationOrBinary(openTok token.Token) (ast.Node, error) {
	headTok := p.current()
	if headTok.Type == token.Operator {
		p.advance()
		left, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOperationNode{
			Tok:        openTok,
			Operator:   headTok.Lexeme,
			Left:       left,
			Right:      right,
			ResultType: resultTypeFor(headTok.Lexeme, left, right),
		}, nil
	}

	funcNode, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var args []ast.Node
	for p.current().Type != token.CloseParen {
		if p.current().Type == token.EOF {
			return nil, diagnostics.ParseError(diagnostics.KindUnbalancedParens, p.current())
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &ast.ApplicationNode{Tok: openTok, Func: funcNode, Args: args}, nil
}

// resultTypeFor applies spec.md §4.3's operator typing rule: comparison
// operators (=, <, >, <=, >=) always produce Boolean; arithmetic operators
// produce Float if either operand is Float or is a free (untyped) symbol,
// else Integer.
func resultTypeFor(op string, left, right ast.Node) ast.ShenType {
	switch op {
	case "=", "<", ">", "<=", ">=":
		return ast.Boolean
	default:
		lt, rt := left.Type(), right.Type()
		if lt == ast.Float || rt == ast.Float || lt == ast.Symbol || rt == ast.Symbol {
			return ast.Float
		}
		return ast.Integer
	}
}
