package menace

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gorgonia.org/vecf32"
)

const (
	nameA = "A"
	nameB = "B"
)

// outcomes of a game, for one side
const (
	loss float32 = -1
	draw float32 = 0
	win  float32 = 1
)

// Statistics keeps track of the results of both sides of an Arena.
type Statistics struct {
	Wins     map[string]int
	Losses   map[string]int
	Draws    map[string]int
	Outcomes map[string][]float32 // 1 for a win, 0 for a draw, -1 for a loss; one per game
}

func makeStatistics() Statistics {
	return Statistics{
		Wins:     make(map[string]int),
		Losses:   make(map[string]int),
		Draws:    make(map[string]int),
		Outcomes: make(map[string][]float32),
	}
}

func (s *Statistics) record(name string, outcome float32) {
	switch outcome {
	case win:
		s.Wins[name]++
	case loss:
		s.Losses[name]++
	default:
		s.Draws[name]++
	}
	s.Outcomes[name] = append(s.Outcomes[name], outcome)
}

// Games is the number of games played by a side.
func (s *Statistics) Games(name string) int { return len(s.Outcomes[name]) }

// WinRate is the fraction of games won by a side. It is 0 before any game is played.
func (s *Statistics) WinRate(name string) float32 {
	rate := float32(s.Wins[name]) / float32(s.Games(name))
	if math32.IsNaN(rate) {
		return 0
	}
	return rate
}

// Rolling returns the mean outcome over each run of window consecutive games, starting from the first full window.
func (s *Statistics) Rolling(name string, window int) []float32 {
	outcomes := s.Outcomes[name]
	if window <= 0 || len(outcomes) < window {
		return nil
	}
	retVal := make([]float32, 0, len(outcomes)-window+1)
	for i := window; i <= len(outcomes); i++ {
		retVal = append(retVal, vecf32.Sum(outcomes[i-window:i])/float32(window))
	}
	return retVal
}

// Dump writes the outcome of every game as CSV: one row per game, one column per side.
func (s *Statistics) Dump(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"game", nameA, nameB}); err != nil {
		return errors.WithStack(err)
	}
	a, b := s.Outcomes[nameA], s.Outcomes[nameB]
	for i := range a {
		record := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(float64(a[i]), 'f', 0, 32),
			"",
		}
		if i < len(b) {
			record[2] = strconv.FormatFloat(float64(b[i]), 'f', 0, 32)
		}
		if err := cw.Write(record); err != nil {
			return errors.WithStack(err)
		}
	}
	cw.Flush()
	return errors.WithStack(cw.Error())
}
