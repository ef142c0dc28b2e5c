package graph

import (
	"errors"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Edges, comments and blank lines", func(t *testing.T) {
		//** Arrange
		input := "# a path\n1 2\n\n   \n2\t3\n# trailing comment\n"

		//** Act
		g, err := Load(strings.NewReader(input))

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, []Edge{{1, 2}, {2, 3}}, g.Edges())
		assert.Equal(t, []int{1, 2, 3}, g.Vertices())
		assert.Equal(t, 3, g.Order())
		assert.Equal(t, 3, g.MaxVertex())
	})

	t.Run("Duplicated edges are kept", func(t *testing.T) {
		g, err := Load(strings.NewReader("1 2\n2 1\n1 2\n"))

		require.NoError(t, err)
		assert.Len(t, g.Edges(), 3)
		assert.Equal(t, []int{1, 2}, g.Vertices())
	})

	t.Run("Leading zeros are decimal", func(t *testing.T) {
		g, err := Load(strings.NewReader("010 011\n08 1\n"))

		require.NoError(t, err)
		assert.Equal(t, []Edge{{10, 11}, {8, 1}}, g.Edges())
		assert.Equal(t, []int{1, 8, 10, 11}, g.Vertices())
	})

	t.Run("Empty input", func(t *testing.T) {
		g, err := Load(strings.NewReader("# nothing here\n"))

		require.NoError(t, err)
		assert.Empty(t, g.Edges())
		assert.Empty(t, g.Vertices())
		assert.Equal(t, 0, g.MaxVertex())
	})

	t.Run("Malformed lines", func(t *testing.T) {
		malformed := []string{"1", "1 2 3", "a b", "1.5 2", "-1 2", "0 1", "1,2", "0x3 1", "0b11 1", "1_0 2", "1 2 // x", "1 2 /* x */", "1 +2", "99999999999999999999999 1"}

		for _, line := range malformed {
			_, err := Load(strings.NewReader("1 2\n" + line + "\n"))

			var parseErr ParseError
			require.Error(t, err, line)
			require.True(t, errors.As(err, &parseErr), line)
			assert.Equal(t, 2, parseErr.Line)
			assert.Equal(t, line, parseErr.Text)
		}
	})
}

func TestAdjacency(t *testing.T) {
	g := New()
	g.AddEdge(3, 1)
	g.AddEdge(1, 2)
	g.AddVertex(7)

	assert.True(t, g.Adjacent(1, 3))
	assert.True(t, g.Adjacent(3, 1))
	assert.True(t, g.Adjacent(2, 1))
	assert.False(t, g.Adjacent(2, 3))
	assert.False(t, g.Adjacent(1, 7))

	gm := NewWithT(t)
	gm.Expect(g.Vertices()).To(Equal([]int{1, 2, 3, 7}))
	gm.Expect(g.MaxVertex()).To(Equal(7))
}

func TestLoadFile(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/missing.in")
	assert.Error(t, err)
}
