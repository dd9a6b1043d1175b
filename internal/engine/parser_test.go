package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParse_Empty(t *testing.T) {
	result := Parse("")
	assert.Equal(t, "", result.Action)
	assert.Nil(t, result.Args)
	assert.Equal(t, "", result.Argument)
}

func TestParse_WhitespaceOnly(t *testing.T) {
	assert.Equal(t, "", Parse(" \t  ").Action)
}

func TestParse_SingleWord(t *testing.T) {
	result := Parse("look")
	assert.Equal(t, "look", result.Action)
	assert.Nil(t, result.Args)
	assert.Equal(t, "", result.Argument)
}

func TestParse_Lowercase(t *testing.T) {
	result := Parse("TAKE Repair KIT")
	assert.Equal(t, "take", result.Action)
	assert.Equal(t, []string{"repair", "kit"}, result.Args)
	assert.Equal(t, "repair kit", result.Argument)
}

func TestParse_CollapsesWhitespace(t *testing.T) {
	result := Parse("  take   repair \t kit  ")
	assert.Equal(t, "take", result.Action)
	assert.Equal(t, "repair kit", result.Argument)
}

func TestPropertyParseLowercasesAction(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[A-Za-z]{1,20}`).Draw(t, "word")
		result := Parse(word)
		if result.Action != strings.ToLower(word) {
			t.Fatalf("Parse(%q).Action = %q", word, result.Action)
		}
	})
}

func TestPropertyParseArgumentHasSingleSpaces(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z]{1,8}`), 1, 5).Draw(t, "words")
		seps := rapid.SliceOfN(rapid.StringMatching(`[ \t]{1,4}`), len(words), len(words)).Draw(t, "seps")

		var b strings.Builder
		for i, w := range words {
			b.WriteString(seps[i])
			b.WriteString(w)
		}
		result := Parse(b.String())

		want := strings.ToLower(strings.Join(words[1:], " "))
		if result.Argument != want {
			t.Fatalf("argument %q, want %q", result.Argument, want)
		}
		if strings.Contains(result.Argument, "  ") {
			t.Fatalf("argument %q contains a double space", result.Argument)
		}
	})
}
