// Command menace trains MENACE, the matchbox tic-tac-toe machine, against other players.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gorgonia/menace"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configFile string
	beads      int
	tieReward  int
	winReward  int
	seed       int64
	verbose    bool
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "menace",
		Short:         "Machine Educable Noughts And Crosses Engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		},
	}
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML file with initial_beads, tie_reward and win_reward")
	cmd.PersistentFlags().IntVar(&beads, "beads", 0, "Beads per legal move in a new matchbox (overrides the config)")
	cmd.PersistentFlags().IntVar(&tieReward, "tie-reward", -1, "Beads added after a tie (overrides the config)")
	cmd.PersistentFlags().IntVar(&winReward, "win-reward", -1, "Beads added after a win (overrides the config)")
	cmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every game")

	cmd.AddCommand(playCommand())
	cmd.AddCommand(statesCommand())
	return cmd
}

// config reads the config file, if any, and applies the flags that were set on top of it.
func config(cmd *cobra.Command) (menace.Config, error) {
	conf := menace.DefaultConfig()
	if configFile != "" {
		var err error
		if conf, err = menace.LoadConfig(configFile); err != nil {
			return conf, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("beads") {
		conf.InitialBeads = beads
	}
	if flags.Changed("tie-reward") {
		conf.TieReward = tieReward
	}
	if flags.Changed("win-reward") {
		conf.WinReward = winReward
	}
	if !conf.IsValid() {
		return conf, errors.Errorf("Config is not valid: %+v", conf)
	}
	return conf, nil
}
