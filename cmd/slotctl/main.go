// slotctl runs slot machines locally: spin, score a fixed grid, estimate RTP,
// and check machine files.
//
// Usage:
//
//	slotctl spin [--bet N] [--count N]     - Spin and render the grid
//	slotctl evaluate ROW...                - Score a grid given as rows of symbol names
//	slotctl simulate --spins N             - Estimate return-to-player
//	slotctl validate FILE...               - Validate machine YAML files
//
// Global flags:
//
//	--seed <value>    - RNG seed for reproducible spins (0 = crypto source)
//	--config <path>   - Machine YAML file (default: configs/machines/<machine>.yaml, then built-in)
//	--machine <id>    - Machine id to load when --config is not set
//	--json            - Print results as JSON
//	--verbose         - Log engine and loader details to stderr
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/osse101/slotengine/internal/config"
	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/logger"
	"github.com/osse101/slotengine/internal/slots"
	"github.com/osse101/slotengine/internal/utils"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagMachine string
	flagJSON    bool
	flagVerbose bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slotctl",
	Short: "Spin, score and simulate slot machines from the terminal",
	Long: `slotctl loads a machine definition and runs the payout engine locally.
Nothing is persisted and no server is needed.

Examples:
  slotctl spin --bet 20
  slotctl evaluate CHERRY,BAR,STAR,DIAMOND,COIN SEVEN,SEVEN,SEVEN,BAR,BAR BAR,STAR,DIAMOND,COIN,CHERRY
  slotctl simulate --spins 1000000 --seed 7
  slotctl validate configs/machines/*.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitLoggerWithWriter(logger.CLIConfig(flagVerbose), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = crypto source, not reproducible)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a machine YAML file")
	rootCmd.PersistentFlags().StringVar(&flagMachine, "machine", config.DefaultMachineID, "Machine id to load when --config is not set")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine and loader details to stderr")

	rootCmd.AddCommand(spinCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(validateCmd)
}

// loadEngine resolves the machine from the global flags and builds its engine.
func loadEngine() (domain.Machine, *slots.Engine, error) {
	m, source, err := config.LoadMachine(flagConfig, flagMachine)
	if err != nil {
		return domain.Machine{}, nil, err
	}
	logger.Debug("Loaded machine", "machine_id", m.ID, "source", source, "seeded", flagSeed != 0)

	var opts []slots.Option
	if flagSeed != 0 {
		opts = append(opts, slots.WithRNG(utils.NewSeededIntn(flagSeed)))
	}
	e, err := slots.NewEngine(m.Config, opts...)
	if err != nil {
		return domain.Machine{}, nil, err
	}
	return m, e, nil
}
