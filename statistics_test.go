package menace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	s := makeStatistics()
	assert.Zero(t, s.WinRate(nameA))
	assert.Nil(t, s.Rolling(nameA, 2))

	for _, o := range []float32{win, loss, draw, win} {
		s.record(nameA, o)
		s.record(nameB, -o)
	}
	assert.Equal(t, 4, s.Games(nameA))
	assert.Equal(t, 2, s.Wins[nameA])
	assert.Equal(t, 1, s.Losses[nameA])
	assert.Equal(t, 1, s.Draws[nameA])
	assert.Equal(t, 1, s.Wins[nameB])
	assert.Equal(t, float32(0.5), s.WinRate(nameA))
	assert.Equal(t, float32(0.25), s.WinRate(nameB))

	assert.Equal(t, []float32{0, -0.5, 0.5}, s.Rolling(nameA, 2))
	assert.Equal(t, []float32{0.25}, s.Rolling(nameA, 4))
	assert.Nil(t, s.Rolling(nameA, 5))
	assert.Nil(t, s.Rolling(nameA, 0))
}

func TestStatisticsDump(t *testing.T) {
	s := makeStatistics()
	for _, o := range [][2]float32{{win, loss}, {draw, draw}, {loss, win}} {
		s.record(nameA, o[0])
		s.record(nameB, o[1])
	}
	var buf bytes.Buffer
	require.NoError(t, s.Dump(&buf))
	assert.Equal(t, "game,A,B\n1,1,-1\n2,0,0\n3,-1,1\n", buf.String())
}
