package matchbox

import (
	"math/rand"
	"testing"

	"github.com/gorgonia/menace/game"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNew(t *testing.T) {
	m := New([]game.Single{0, 4, 8}, 3)
	assert.Equal(t, [mnk.Cells]int{3, 0, 0, 0, 3, 0, 0, 0, 3}, m.Weights())
	assert.Equal(t, 9, m.Total())
	assert.False(t, m.Dead())

	empty := New(nil, 3)
	assert.True(t, empty.Dead(), "a matchbox without moves is dead")

	negative := New([]game.Single{1, 2}, -4)
	assert.True(t, negative.Dead(), "negative initial beads are clamped to zero")
}

var addTests = []struct {
	name   string
	start  int
	deltas []int
	want   int
}{
	{"reward", 3, []int{3}, 6},
	{"punish", 3, []int{-1}, 2},
	{"punish to zero", 1, []int{-1}, 0},
	{"punish past zero", 1, []int{-1, -1, -1}, 0},
	{"large punishment", 5, []int{-100}, 0},
	{"recover after zero", 1, []int{-5, 2}, 2},
	{"tie reward", 2, []int{1, 1, 1}, 5},
}

func TestAdd(t *testing.T) {
	for _, at := range addTests {
		t.Run(at.name, func(t *testing.T) {
			m := New([]game.Single{4}, at.start)
			for _, d := range at.deltas {
				m.Add(4, d)
				require.GreaterOrEqual(t, m.Weight(4), 0, "weights should never be negative")
			}
			assert.Equal(t, at.want, m.Weight(4))
		})
	}
}

func TestAddNeverNegative(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	m := New(mnk.New().Moves(), 2)
	for i := 0; i < 10000; i++ {
		move := game.Single(r.Intn(mnk.Cells))
		m.Add(move, r.Intn(11)-7)
		for _, w := range m.Weights() {
			if w < 0 {
				t.Fatalf("negative weight after %d updates: %v", i, m)
			}
		}
	}
}

func TestMoveExhausted(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	m := New([]game.Single{2}, 1)
	move, err := m.Move(r)
	require.NoError(t, err)
	assert.Equal(t, game.Single(2), move)

	m.Add(2, -1)
	assert.True(t, m.Dead())
	move, err = m.Move(r)
	assert.Equal(t, game.NoMove, move)
	assert.True(t, errors.Is(err, game.ErrMoveExhausted), "expected ErrMoveExhausted. Got %v", err)
}

func TestMoveIsDeterministicWithSeed(t *testing.T) {
	m := New(mnk.New().Moves(), 3)
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		ma, err := m.Move(a)
		require.NoError(t, err)
		mb, err := m.Move(b)
		require.NoError(t, err)
		require.Equal(t, ma, mb)
	}
}

func TestMoveDistribution(t *testing.T) {
	const draws = 40000
	r := rand.New(rand.NewSource(1337))
	m := New(nil, 0)
	m.Add(0, 1)
	m.Add(3, 2)
	m.Add(5, 3)
	m.Add(8, 4)

	var counts [mnk.Cells]int
	for i := 0; i < draws; i++ {
		move, err := m.Move(r)
		require.NoError(t, err)
		counts[move]++
	}

	var obs, exp []float64
	total := float64(m.Total())
	for i, w := range m.Weights() {
		if w == 0 {
			assert.Zerof(t, counts[i], "cell %d has no beads but was drawn", i)
			continue
		}
		obs = append(obs, float64(counts[i]))
		exp = append(exp, draws*float64(w)/total)
	}

	chi := stat.ChiSquare(obs, exp)
	critical := distuv.ChiSquared{K: float64(len(obs) - 1)}.Quantile(0.999)
	assert.Lessf(t, chi, critical, "draws %v do not follow the weights %v", counts, m.Weights())
}
