package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/unitex/token"
)

// TestTagString covers mnemonics and the out-of-range fallback.
func TestTagString(t *testing.T) {
	assert.Equal(t, "ROOT", token.ROOT.String())
	assert.Equal(t, "GRAPHIC", token.GRAPHIC.String())
	assert.Equal(t, "Tag(99)", token.Tag(99).String())
}

// TestCoordinateString renders "line:column".
func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "3:14", token.Coordinate{Line: 3, Column: 14}.String())
}

// TestTokenLabel picks raw text only for value-bearing kinds.
func TestTokenLabel(t *testing.T) {
	tok := token.Token{Tag: token.NUMBER, Raw: "2.5", Ident: "num"}
	assert.Equal(t, "2.5", tok.Label())

	tok = token.Token{Tag: token.KEYWORD, Raw: `\pi`, Ident: "pi"}
	assert.Equal(t, `\pi`, tok.Label())

	tok = token.Token{Tag: token.SET, Raw: "=", Ident: "="}
	assert.Equal(t, "=", tok.Label())
}
