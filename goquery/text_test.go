package goquery_test

import (
	"testing"

	"github.com/skowalczyk/forage/goquery"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	t.Run("collapses newline runs to one", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\nb\nc", goquery.NormalizeText("a\n\n\nb\nc"))
	})

	t.Run("collapses space runs to one", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a b c", goquery.NormalizeText("a  b     c"))
	})

	t.Run("decodes HTML entities", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "fish & chips <now>", goquery.NormalizeText("fish &amp; chips &lt;now&gt;"))
	})

	t.Run("trims leading and trailing whitespace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "middle", goquery.NormalizeText("  \n middle \n\n "))
	})

	t.Run("returns empty string unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", goquery.NormalizeText(""))
	})
}
