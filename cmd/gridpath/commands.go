package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/bytefall"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/racetrack"
)

func newMazeCmd(a *app) *cobra.Command {
	var turnCost, stepCost uint64
	cmd := &cobra.Command{
		Use:   "maze [file]",
		Short: "Lowest score through a facing maze and the tiles on every best route",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("turn-cost") {
				a.cfg.Maze.TurnCost = turnCost
			}
			if cmd.Flags().Changed("step-cost") {
				a.cfg.Maze.StepCost = stepCost
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			m, err := maze.Parse(in)
			if err != nil {
				return err
			}
			a.logger.Info("Solving maze",
				zap.Int("width", m.Grid.Width),
				zap.Int("height", m.Grid.Height),
				zap.Uint64("turn_cost", a.cfg.Maze.TurnCost),
				zap.Uint64("step_cost", a.cfg.Maze.StepCost))

			res, err := m.Solve(maze.Options{TurnCost: a.cfg.Maze.TurnCost, StepCost: a.cfg.Maze.StepCost})
			a.logStats("Maze search finished", res.Stats)
			if err != nil {
				return err
			}
			printParts(cmd.OutOrStdout(), res.BestScore, res.BestTiles)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&turnCost, "turn-cost", 1000, "Cost of a 90 degree turn")
	cmd.Flags().Uint64Var(&stepCost, "step-cost", 1, "Cost of one step forward")
	return cmd
}

func newBytesCmd(a *app) *cobra.Command {
	var width, height, fallen int
	cmd := &cobra.Command{
		Use:   "bytes [file]",
		Short: "Route length after bytes fall, and the first byte that cuts the exit off",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("width") {
				a.cfg.Bytes.Width = width
			}
			if cmd.Flags().Changed("height") {
				a.cfg.Bytes.Height = height
			}
			if cmd.Flags().Changed("fallen") {
				a.cfg.Bytes.Fallen = fallen
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			bytes, err := bytefall.ParseBytes(in)
			if err != nil {
				return err
			}
			space := bytefall.Space{Width: a.cfg.Bytes.Width, Height: a.cfg.Bytes.Height}
			a.logger.Info("Simulating falling bytes",
				zap.Int("width", space.Width),
				zap.Int("height", space.Height),
				zap.Int("bytes", len(bytes)),
				zap.Int("fallen", a.cfg.Bytes.Fallen))

			steps, err := space.ShortestPath(bytes, a.cfg.Bytes.Fallen)
			if err != nil {
				return err
			}
			idx, p, err := space.FirstBlocking(bytes, a.cfg.Bytes.Fallen)
			if err != nil {
				return err
			}
			a.logger.Debug("First blocking byte", zap.Int("index", idx))
			printParts(cmd.OutOrStdout(), steps, fmt.Sprintf("%d,%d", p.X, p.Y))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 71, "Memory space width")
	cmd.Flags().IntVar(&height, "height", 71, "Memory space height")
	cmd.Flags().IntVar(&fallen, "fallen", 1024, "Bytes fallen for part 1")
	return cmd
}

func newRaceCmd(a *app) *cobra.Command {
	var maxCheat, longCheat, minSaving int
	cmd := &cobra.Command{
		Use:   "race [file]",
		Short: "Count racetrack cheats that save at least a threshold",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-cheat") {
				a.cfg.Race.MaxCheat = maxCheat
			}
			if cmd.Flags().Changed("long-cheat") {
				a.cfg.Race.LongCheat = longCheat
			}
			if cmd.Flags().Changed("min-saving") {
				a.cfg.Race.MinSaving = minSaving
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			tr, err := racetrack.Parse(in)
			if err != nil {
				return err
			}
			length, ok := tr.Length()
			a.logStats("Track distances computed", tr.Stats())
			if !ok {
				return racetrack.ErrUnreachable
			}
			a.logger.Info("Counting cheats",
				zap.Uint32("track_length", length),
				zap.Int("max_cheat", a.cfg.Race.MaxCheat),
				zap.Int("long_cheat", a.cfg.Race.LongCheat),
				zap.Int("min_saving", a.cfg.Race.MinSaving))

			short, err := tr.CountCheats(a.cfg.Race.MaxCheat, a.cfg.Race.MinSaving)
			if err != nil {
				return err
			}
			long, err := tr.CountCheats(a.cfg.Race.LongCheat, a.cfg.Race.MinSaving)
			if err != nil {
				return err
			}
			printParts(cmd.OutOrStdout(), short, long)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxCheat, "max-cheat", 2, "Cheat length for part 1")
	cmd.Flags().IntVar(&longCheat, "long-cheat", 20, "Cheat length for part 2")
	cmd.Flags().IntVar(&minSaving, "min-saving", 100, "Minimum picoseconds saved")
	return cmd
}
