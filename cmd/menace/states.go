package main

import (
	"fmt"
	"os"

	"github.com/gorgonia/menace"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func statesCommand() *cobra.Command {
	var dotFile string
	cmd := &cobra.Command{
		Use:   "states",
		Short: "Fill the matchboxes and report how many there are",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config(cmd)
			if err != nil {
				return err
			}
			s := menace.NewStore(conf.InitialBeads)
			var terminal int
			for id := 0; id < s.Len(); id++ {
				if s.Terminal(id) {
					terminal++
				}
			}
			fmt.Printf("%v matchboxes, %v of them for finished games, %v openings\n",
				aurora.Bold(s.Len()), aurora.Bold(terminal), aurora.Bold(len(s.Openings())))
			for _, id := range s.Openings() {
				fmt.Printf("%v\n", s.Board(id))
			}

			if dotFile == "" {
				return nil
			}
			dot, err := s.ToDot()
			if err != nil {
				return err
			}
			return errors.WithStack(os.WriteFile(dotFile, []byte(dot), 0o644))
		},
	}
	cmd.Flags().StringVar(&dotFile, "dot", "", "Write the matchboxes as a Graphviz graph to this file")
	return cmd
}
