package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	t.Run("nil values", func(t *testing.T) {
		var p *int
		assert.Equal(t, "Ø", Name(nil))
		assert.Equal(t, "Ø", Name(p))
	})

	t.Run("stable per key", func(t *testing.T) {
		type key struct{ owner, id int }
		first := Name(key{1, 7})
		assert.NotEmpty(t, first)
		assert.Equal(t, first, Name(key{1, 7}))
	})

	t.Run("integers are keys too", func(t *testing.T) {
		assert.Equal(t, Name(42), Name(42))
	})
}
