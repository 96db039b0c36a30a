package lexer

import (
	"testing"

	"github.com/shencraft/shenc/internal/token"
)

func TestTokenizeBasicForm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Type
	}{
		{
			name:  "empty parens",
			input: "()",
			want:  []token.Type{token.OpenParen, token.CloseParen, token.EOF},
		},
		{
			name:  "defun skeleton",
			input: "(defun add (x y) (+ x y))",
			want: []token.Type{
				token.OpenParen, token.Defun, token.Identifier,
				token.OpenParen, token.Identifier, token.Identifier, token.CloseParen,
				token.OpenParen, token.Operator, token.Identifier, token.Identifier, token.CloseParen,
				token.CloseParen, token.EOF,
			},
		},
		{
			name:  "lambda keyword and string literal",
			input: `(lambda (x) "hi")`,
			want: []token.Type{
				token.OpenParen, token.Lambda,
				token.OpenParen, token.Identifier, token.CloseParen,
				token.StringLiteral, token.CloseParen, token.EOF,
			},
		},
		{
			name:  "backslash lambda alias",
			input: `(\ (x) x)`,
			want: []token.Type{
				token.OpenParen, token.Lambda,
				token.OpenParen, token.Identifier, token.CloseParen,
				token.Identifier, token.CloseParen, token.EOF,
			},
		},
		{
			name:  "number literal",
			input: "3.14",
			want:  []token.Type{token.Number, token.EOF},
		},
		{
			name:  "let form",
			input: "(let x 1 x)",
			want: []token.Type{
				token.OpenParen, token.Let, token.Identifier, token.Number, token.Identifier, token.CloseParen, token.EOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) returned error: %v", tt.input, err)
			}
			if len(tokens) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d: %v", tt.input, len(tokens), len(tt.want), tokens)
			}
			for i, tok := range tokens {
				if tok.Type != tt.want[i] {
					t.Errorf("token %d: got %s, want %s", i, tok.Type, tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	if _, err := Tokenize("(defun f (x) #x)"); err == nil {
		t.Fatal("expected an error for an unrecognized character, got nil")
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	if _, err := Tokenize(`"unterminated`); err == nil {
		t.Fatal("expected an error for an unterminated string, got nil")
	}
}
