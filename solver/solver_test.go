package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/mazepilot/maze"
	"github.com/beka-birhanu/mazepilot/robot"
)

func TestNew(t *testing.T) {
	m, err := maze.Generate(7, 7, 1)
	require.NoError(t, err)

	base := func() *Config {
		return &Config{Maze: m, Robot: robot.New(m)}
	}

	t.Run("builds each deterministic variant", func(t *testing.T) {
		for _, variant := range []string{VariantBFS, VariantDFS, VariantAStar} {
			s, err := New(variant, base())
			require.NoError(t, err)
			assert.Equal(t, variant, s.Name())
			assert.IsType(t, &Replay{}, s)
		}
	})

	t.Run("builds the interactive variant", func(t *testing.T) {
		c := base()
		c.Reasoner = &scriptedReasoner{}
		s, err := New(VariantInteractive, c)
		require.NoError(t, err)
		assert.Equal(t, VariantInteractive, s.Name())
		assert.IsType(t, &Interactive{}, s)
	})

	t.Run("rejects unknown variants", func(t *testing.T) {
		_, err := New("dijkstra", base())
		assert.ErrorIs(t, err, ErrUnknownSolver)
		assert.Contains(t, err.Error(), "dijkstra")
	})

	t.Run("interactive requires a reasoner", func(t *testing.T) {
		_, err := New(VariantInteractive, base())
		assert.ErrorIs(t, err, ErrMissingReasoner)
	})

	t.Run("rejects missing dependencies", func(t *testing.T) {
		_, err := New(VariantBFS, nil)
		assert.ErrorIs(t, err, ErrMissingMaze)

		_, err = New(VariantBFS, &Config{Maze: m})
		assert.ErrorIs(t, err, ErrMissingRobot)
	})
}
