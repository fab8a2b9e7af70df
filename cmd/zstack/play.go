package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"stackcore/internal/engine"
	"stackcore/internal/host"
	"stackcore/internal/replay"
)

func newPlayCmd() *cobra.Command {
	var msPerTick uint32
	var fast bool
	var every uint64

	cmd := &cobra.Command{
		Use:   "play <replay-file>",
		Short: "Drive the engine from a recorded replay and render its snapshots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rep, err := replay.Read(f)
			if err != nil {
				return err
			}

			log := buildLogger()
			e, err := engine.New(rep.Options, msPerTick, log)
			if err != nil {
				return fmt.Errorf("constructing engine: %w", err)
			}

			maxTick := uint32(0)
			for _, in := range rep.Inputs {
				if in.Tick > maxTick {
					maxTick = in.Tick
				}
			}

			loop := host.New(e, newReplayKeyReader(rep.Inputs), newTextRenderer(cmd.OutOrStdout()),
				time.Duration(msPerTick)*time.Millisecond, every)
			runBounded(loop, fast, maxTick+1)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&msPerTick, "ms-per-tick", 16, "fixed tick period in milliseconds")
	cmd.Flags().BoolVar(&fast, "fast", false, "skip real-time pacing and run as fast as possible")
	cmd.Flags().Uint64Var(&every, "render-every", 1, "render a snapshot every N ticks")
	return cmd
}

// runBounded drives loop for at most maxTicks ticks, stopping early if
// the engine reaches a terminal state. Replay playback is bounded by
// the recorded input stream's last edge rather than run forever, since
// an arbitrary key log need not end in Quit/GameOver.
func runBounded(l *host.Loop, fast bool, maxTicks uint32) {
	for i := uint32(0); i < maxTicks; i++ {
		if l.Step() {
			return
		}
		if !fast {
			time.Sleep(l.MsPerTick)
		}
	}
}
