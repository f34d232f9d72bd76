// Command gridpath solves grid shortest-path puzzles read from a file or stdin.
//
//	gridpath maze  input.txt           # facing maze: best score, tiles on best routes
//	gridpath bytes input.txt           # falling bytes: steps after N bytes, first blocker
//	gridpath race  input.txt           # racetrack: cheats saving at least the threshold
//
// Parameters come from a YAML file (--config) and may be overridden by flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/internal/config"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Shortest-path solvers for character grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				zc := zap.NewProductionConfig()
				if a.verbose {
					zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := zc.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("Configuration loaded",
				zap.String("path", a.configPath),
				zap.Any("config", cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newMazeCmd(a), newBytesCmd(a), newRaceCmd(a))
	return root
}

// openInput returns the named file, or stdin when no argument is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// logStats records one search at debug level.
func (a *app) logStats(msg string, st dijkstra.Stats) {
	a.logger.Debug(msg,
		zap.Int("pushed", st.Pushed),
		zap.Int("popped", st.Popped),
		zap.Int("stale", st.Stale),
		zap.Int("relaxed", st.Relaxed),
		zap.Int("max_queue", st.MaxQueue),
		zap.String("summary", fmt.Sprintf("%s states settled, %s stale",
			humanize.Comma(int64(st.Popped-st.Stale)), humanize.Comma(int64(st.Stale)))))
}

func printParts(w io.Writer, part1, part2 any) {
	fmt.Fprintf(w, "part 1: %v\n", part1)
	fmt.Fprintf(w, "part 2: %v\n", part2)
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}
