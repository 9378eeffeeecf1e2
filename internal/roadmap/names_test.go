package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	cases := map[string]bool{
		"Warsaw":     true,
		"":           false,
		"A;B":        false,
		"A\x00B":     false,
		"A\x1fB":     false,
		string(rune(32)) + "ok": true,
	}
	for name, want := range cases {
		assert.Equal(t, want, ValidName(name), "name %q", name)
	}
}

func TestNameIndex_GetPut(t *testing.T) {
	idx := newNameIndex()
	_, ok := idx.get("X")
	assert.False(t, ok)

	c := &City{name: "X"}
	idx.put(c)

	got, ok := idx.get("X")
	assert.True(t, ok)
	assert.Same(t, c, got)
}
