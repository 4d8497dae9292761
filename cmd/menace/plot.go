package main

import (
	"github.com/gorgonia/menace"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// plotRolling plots the mean outcome of both sides over a sliding window of games.
func plotRolling(arena *menace.Arena, window int, filename string) error {
	p := plot.New()
	p.Title.Text = arena.Name()
	p.X.Label.Text = "Game"
	p.Y.Label.Text = "Mean outcome"
	p.Y.Min, p.Y.Max = -1, 1

	for i, side := range []string{"A", "B"} {
		rolling := arena.Rolling(side, window)
		if len(rolling) == 0 {
			continue
		}
		points := make(plotter.XYs, len(rolling))
		for j, v := range rolling {
			points[j] = plotter.XY{
				X: float64(j + window),
				Y: float64(v),
			}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return errors.WithStack(err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(side, line)
	}
	return errors.WithStack(p.Save(8*vg.Inch, 4*vg.Inch, filename))
}
