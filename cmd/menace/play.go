package main

import (
	"fmt"
	"os"

	"github.com/gorgonia/menace"
	"github.com/gorgonia/menace/encoding/gif"
	"github.com/gorgonia/menace/negamax"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// outputs are the files written after the games are played. Empty names are skipped.
type outputs struct {
	window    int
	statsFile string
	plotFile  string
	gif       *gif.Encoder
}

func playCommand() *cobra.Command {
	var (
		a, b    string
		games   int
		gifFile string
		o       outputs
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play games between two players",
		Long:  "Play games between two players. Players are menace, negamax or random. A and B take turns opening.",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config(cmd)
			if err != nil {
				return err
			}
			pa, err := newPlayer(a, conf, seed)
			if err != nil {
				return err
			}
			pb, err := newPlayer(b, conf, seed+1)
			if err != nil {
				return err
			}

			if gifFile != "" {
				f, err := os.Create(gifFile)
				if err != nil {
					return errors.WithStack(err)
				}
				defer f.Close()
				o.gif = gif.NewEncoder(f)
			}

			arena := menace.NewArena(pa, pb, fmt.Sprintf("%v vs %v", pa, pb), menace.WithAlternate(), menace.WithArenaSeed(seed))
			return runArena(arena, games, o)
		},
	}
	cmd.Flags().StringVar(&a, "a", "menace", "Player A: menace, negamax or random")
	cmd.Flags().StringVar(&b, "b", "random", "Player B: menace, negamax or random")
	cmd.Flags().IntVarP(&games, "games", "n", 100, "Number of games to play")
	cmd.Flags().IntVar(&o.window, "window", 20, "Number of games averaged in the plot")
	cmd.Flags().StringVar(&o.statsFile, "stats", "", "Write the outcome of every game to this CSV file")
	cmd.Flags().StringVar(&o.plotFile, "plot", "", "Plot the rolling outcome of both players to this PNG file")
	cmd.Flags().StringVar(&gifFile, "gif", "", "Render every move to this GIF file")
	return cmd
}

// runArena plays the games and writes the outputs, also when the games stop early. A MENACE that died ends the run
// normally; any other error is returned once the outputs are written.
func runArena(arena *menace.Arena, games int, o outputs) error {
	var enc menace.OutputEncoder
	if o.gif != nil {
		enc = o.gif
	}
	runErr := arena.Run(games, enc)
	switch {
	case errors.Is(runErr, menace.ErrDied):
		fmt.Println(aurora.Red(fmt.Sprintf("MENACE died in game %d", arena.GameNumber())))
		runErr = nil
	case runErr != nil:
		fmt.Println(aurora.Red(fmt.Sprintf("Stopped in game %d: %v", arena.GameNumber(), runErr)))
	}
	summary(arena)

	if o.gif != nil && o.gif.Frames() > 0 {
		if err := o.gif.Flush(); err != nil {
			return err
		}
	}
	if o.statsFile != "" {
		if err := dumpStats(arena, o.statsFile); err != nil {
			return err
		}
	}
	if o.plotFile != "" {
		if err := plotRolling(arena, o.window, o.plotFile); err != nil {
			return err
		}
	}
	return runErr
}

func newPlayer(kind string, conf menace.Config, seed int64) (menace.Player, error) {
	switch kind {
	case "menace":
		return menace.New(conf, menace.WithSeed(seed))
	case "negamax":
		return negamax.New(negamax.WithSeed(seed)), nil
	case "random":
		return menace.NewRandom(seed), nil
	}
	return nil, errors.Errorf("Unknown player %q", kind)
}

func summary(arena *menace.Arena) {
	for _, side := range []struct {
		name string
		p    menace.Player
	}{{"A", arena.A}, {"B", arena.B}} {
		fmt.Printf("%s (%v): %v %v %v  win rate %.3f\n",
			side.name, side.p,
			aurora.Green(fmt.Sprintf("%d won", arena.Wins[side.name])),
			aurora.Red(fmt.Sprintf("%d lost", arena.Losses[side.name])),
			aurora.Yellow(fmt.Sprintf("%d tied", arena.Draws[side.name])),
			arena.WinRate(side.name),
		)
	}
	log.Debug().Msgf("last board\n%v", arena.Board())
}

func dumpStats(arena *menace.Arena, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return arena.Dump(f)
}
