package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stackcore/internal/engine"
	"stackcore/internal/host"
	"stackcore/internal/options"
	"stackcore/internal/randomizer"
	"stackcore/internal/replay"
	"stackcore/internal/rotation"
)

func newRecordCmd() *cobra.Command {
	var (
		seed         uint32
		hasSeed      bool
		goal         int
		rotationName string
		randomizerNm string
		msPerTick    uint32
		ticks        uint32
		fromReplay   string
	)

	cmd := &cobra.Command{
		Use:   "record <output-file>",
		Short: "Run the engine and write a replay of its input stream",
		Long: "record drives the engine for a fixed number of ticks and writes " +
			"a replay file of whatever input edges occurred. With --from, it " +
			"replays an existing file's recorded inputs instead of running idle, " +
			"producing a byte-identical twin: the engine is a pure function of " +
			"(options, seed, input stream), so this is also how verify-replay's " +
			"comparison is built.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options.Default()
			if hasSeed {
				opts.Seed = &seed
			}
			opts.Goal = goal
			opts.RotationSystem = rotation.Name(rotationName)
			opts.Randomizer = randomizer.Name(randomizerNm)

			var reader host.KeyReader = idleKeyReader{}
			if fromReplay != "" {
				f, err := os.Open(fromReplay)
				if err != nil {
					return err
				}
				rep, err := replay.Read(f)
				f.Close()
				if err != nil {
					return err
				}
				opts = rep.Options
				reader = newReplayKeyReader(rep.Inputs)
				for _, in := range rep.Inputs {
					if in.Tick+1 > ticks {
						ticks = in.Tick + 1
					}
				}
			}

			log := buildLogger()
			e, err := engine.New(opts, msPerTick, log)
			if err != nil {
				return fmt.Errorf("constructing engine: %w", err)
			}

			rec := replay.NewRecorder()
			for i := uint32(0); i < ticks; i++ {
				keys := reader.ReadKeys()
				rec.Observe(i, keys)
				e.Tick(keys)
				if e.Quit() {
					break
				}
			}

			out, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer out.Close()
			if err := replay.Write(out, opts, rec.Edges()); err != nil {
				return fmt.Errorf("writing replay: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d ticks, %d input edges to %s\n", ticks, len(rec.Edges()), args[0])
			return nil
		},
	}

	cmd.Flags().Uint32Var(&seed, "seed", 0, "PRNG seed (unset uses a time-derived seed)")
	cmd.Flags().BoolVar(&hasSeed, "has-seed", false, "set to apply --seed; otherwise Options.Seed stays nil")
	cmd.Flags().IntVar(&goal, "goal", options.Default().Goal, "lines needed to end the session")
	cmd.Flags().StringVar(&rotationName, "rotation-system", string(options.Default().RotationSystem), "rotation system name")
	cmd.Flags().StringVar(&randomizerNm, "randomizer", string(options.Default().Randomizer), "randomizer name")
	cmd.Flags().Uint32Var(&msPerTick, "ms-per-tick", 16, "fixed tick period in milliseconds")
	cmd.Flags().Uint32Var(&ticks, "ticks", 600, "number of ticks to run (ignored if --from sets a longer bound)")
	cmd.Flags().StringVar(&fromReplay, "from", "", "replay an existing file's recorded inputs instead of running idle")

	return cmd
}
