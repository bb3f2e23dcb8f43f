package bloom_test

import (
	"fmt"
	"testing"

	"github.com/skowalczyk/forage/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added keys always test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("https://wiki.example.com/Main_Page")
		f.Add("gearbox_diagram")

		assert.True(t, f.Test("https://wiki.example.com/Main_Page"))
		assert.True(t, f.Test("gearbox_diagram"))
	})

	t.Run("unseen key tests negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("https://wiki.example.com/Main_Page")

		assert.False(t, f.Test("https://wiki.example.com/Other_Page"))
	})

	t.Run("estimated count tracks additions", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(10000, 0.01)
		for i := 0; i < 100; i++ {
			f.Add(fmt.Sprintf("https://example.com/page/%d", i))
		}

		count := f.EstimatedCount()
		assert.InDelta(t, 100, count, 10)
	})
}
