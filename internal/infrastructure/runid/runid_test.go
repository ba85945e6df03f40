package runid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	g := NewGenerator()

	a := g.Generate()
	b := g.Generate()

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}

func TestTime(t *testing.T) {
	at := time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC)
	g := NewGenerator()
	g.now = func() time.Time { return at }

	got, err := Time(g.Generate())
	require.NoError(t, err)
	assert.True(t, got.Equal(at))

	_, err = Time("not-a-ulid")
	assert.Error(t, err)
}
