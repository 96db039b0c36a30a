package pipeline

import (
	"github.com/shencraft/shenc/internal/emitter"
	"github.com/shencraft/shenc/internal/inference"
	"github.com/shencraft/shenc/internal/lexer"
	"github.com/shencraft/shenc/internal/parser"
)

// Pipeline runs an ordered sequence of Processors over a Context.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from the given stages, in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, short-circuiting once a stage sets
// ctx.Err.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, proc := range p.processors {
		if ctx.Failed() {
			return ctx
		}
		ctx = proc.Process(ctx)
	}
	return ctx
}

// LexStage tokenizes ctx.SourceCode into ctx.Tokens.
var LexStage = ProcessorFunc(func(ctx *Context) *Context {
	tokens, err := lexer.Tokenize(ctx.SourceCode)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Tokens = tokens
	return ctx
})

// ParseStage builds ctx.Form from ctx.Tokens.
var ParseStage = ProcessorFunc(func(ctx *Context) *Context {
	form, err := parser.Parse(ctx.Tokens)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Form = form
	return ctx
})

// InferStage tightens ctx.Form's type annotations in place.
var InferStage = ProcessorFunc(func(ctx *Context) *Context {
	inferred, err := inference.Infer(ctx.Form)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Form = inferred
	return ctx
})

// EmitStage renders ctx.Form into ctx.Output.
var EmitStage = ProcessorFunc(func(ctx *Context) *Context {
	output, err := emitter.Emit(ctx.Form)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Output = output
	return ctx
})

// Default is the standard four-stage pipeline spec.md §2 describes:
// scanner -> parser -> type inference -> emitter.
func Default() *Pipeline {
	return New(LexStage, ParseStage, InferStage, EmitStage)
}

// Translate is the library's single pure entry point (spec.md §6): given
// Shen-family source text, it returns the translated target text, or the
// first diagnostics.Error encountered. Identical input always produces a
// byte-identical result — no stage here consults wall-clock time, random
// state, or any location outside ctx.
func Translate(source string) (string, error) {
	ctx := Default().Run(NewContext(source))
	if ctx.Err != nil {
		return "", ctx.Err
	}
	return ctx.Output, nil
}
