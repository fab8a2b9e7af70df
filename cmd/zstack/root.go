package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"stackcore/internal/logging"
)

var logComponents []string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zstack",
		Short: "Deterministic falling-block engine host",
		Long: "zstack drives the engine core over recorded replay files: " +
			"play replays a file against a text renderer, record produces a " +
			"new replay from synthesized input, and verify-replay checks " +
			"that a replay reproduces its own recorded input stream bit for bit.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringSliceVar(&logComponents, "log", nil,
		"engine components to log (engine,randomizer,rotation,input,replay,host), or \"all\"")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newRecordCmd())
	root.AddCommand(newVerifyReplayCmd())
	return root
}

// buildLogger wires --log into a logging.Logger with the named
// components enabled, matching the teacher's opt-in-per-component idiom
// surfaced through internal/logging.
func buildLogger() *logging.Logger {
	log := logging.New(nil, zerolog.InfoLevel)
	all := map[string]logging.Component{
		"engine":     logging.ComponentEngine,
		"randomizer": logging.ComponentRandomizer,
		"rotation":   logging.ComponentRotation,
		"input":      logging.ComponentInput,
		"replay":     logging.ComponentReplay,
		"host":       logging.ComponentHost,
	}
	for _, name := range logComponents {
		if name == "all" {
			for _, c := range all {
				log.Enable(c, true)
			}
			continue
		}
		if c, ok := all[name]; ok {
			log.Enable(c, true)
		}
	}
	return log
}
