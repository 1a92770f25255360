package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCELRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	t.Run("Total Threshold", func(t *testing.T) {
		prog, err := registry.Compile("total >= 10000.0")
		require.NoError(t, err)

		met, err := prog.Eval(9999, 9999, 0)
		assert.NoError(t, err)
		assert.False(t, met)

		met, err = prog.Eval(10000, 0, 0)
		assert.NoError(t, err)
		assert.True(t, met)
	})

	t.Run("Click Count", func(t *testing.T) {
		prog, err := registry.Compile("clicks >= 100")
		require.NoError(t, err)

		met, err := prog.Eval(0, 0, 99)
		assert.NoError(t, err)
		assert.False(t, met)

		met, err = prog.Eval(0, 0, 100)
		assert.NoError(t, err)
		assert.True(t, met)
	})

	t.Run("Combined Expression", func(t *testing.T) {
		prog, err := registry.Compile("cookies >= 500.0 && clicks > 10")
		require.NoError(t, err)

		met, err := prog.Eval(1000, 600, 11)
		assert.NoError(t, err)
		assert.True(t, met)

		met, err = prog.Eval(1000, 600, 3)
		assert.NoError(t, err)
		assert.False(t, met)
	})

	t.Run("Rejects Bad Syntax", func(t *testing.T) {
		_, err := registry.Compile("total >=")
		assert.Error(t, err)
	})

	t.Run("Rejects Non Boolean Result", func(t *testing.T) {
		_, err := registry.Compile("total + 5.0")
		assert.Error(t, err)
	})

	t.Run("Rejects Unknown Variable", func(t *testing.T) {
		_, err := registry.Compile("mana >= 10")
		assert.Error(t, err)
	})
}

func TestDefaultCondition(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, "total >= 100.0", DefaultCondition(100))
	assert.Equal(t, "total >= 0.5", DefaultCondition(0.5))

	// generated conditions always type-check
	for _, target := range []float64{0, 1, 100, 1e6, 2.5} {
		prog, err := registry.Compile(DefaultCondition(target))
		require.NoError(t, err)

		met, err := prog.Eval(target, 0, 0)
		assert.NoError(t, err)
		assert.True(t, met)
	}
}
