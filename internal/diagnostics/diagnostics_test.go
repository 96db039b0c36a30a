package diagnostics

import (
	"strings"
	"testing"

	"github.com/shencraft/shenc/internal/token"
)

func TestParseErrorFormatsWithPosition(t *testing.T) {
	tok := token.Token{Type: token.CloseParen, Line: 3, Column: 7}
	err := ParseError(KindUnbalancedParens, tok)
	msg := err.Error()
	if !strings.Contains(msg, "3:7") {
		t.Errorf("Error() = %q, want it to contain the position 3:7", msg)
	}
	if !strings.Contains(msg, string(StageParser)) {
		t.Errorf("Error() = %q, want it to mention stage %q", msg, StageParser)
	}
}

func TestLexErrorCarriesArgs(t *testing.T) {
	err := LexError(KindUnexpectedCharacter, 1, 1, "#")
	if !strings.Contains(err.Error(), "#") {
		t.Errorf("Error() = %q, want it to contain the offending character", err.Error())
	}
}

func TestInternalHasNoToken(t *testing.T) {
	err := Internal("unreachable branch")
	if err.HasToken {
		t.Error("Internal() errors should not carry a token")
	}
	if !strings.Contains(err.Error(), "unreachable branch") {
		t.Errorf("Error() = %q, want it to contain the message", err.Error())
	}
}
