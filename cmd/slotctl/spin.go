package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/slotengine/internal/domain"
)

var (
	flagSpinBet   int64
	flagSpinCount int
)

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Spin the machine and render the result",
	Long: `Draw a fresh grid and score it. Without --bet the machine's default bet is used.

Examples:
  slotctl spin
  slotctl spin --bet 50 --count 10 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSpin,
}

func init() {
	spinCmd.Flags().Int64Var(&flagSpinBet, "bet", 0, "Bet amount (0 = machine default)")
	spinCmd.Flags().IntVarP(&flagSpinCount, "count", "n", 1, "Number of spins")
}

func runSpin(cmd *cobra.Command, args []string) error {
	m, e, err := loadEngine()
	if err != nil {
		return err
	}
	bet := flagSpinBet
	if bet == 0 {
		bet = m.Config.DefaultBet
	}
	if flagSpinCount < 1 {
		return fmt.Errorf("%w: --count must be at least 1", domain.ErrInvalidInput)
	}

	out := cmd.OutOrStdout()
	var net int64
	for i := 0; i < flagSpinCount; i++ {
		res, err := e.Spin(bet)
		if err != nil {
			return err
		}
		res.MachineID = m.ID
		net += res.NetChange()

		if flagJSON {
			if err := printJSON(out, res); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, renderResult(m, res))
	}

	if !flagJSON && flagSpinCount > 1 {
		fmt.Fprintln(out, renderSummaryLine(flagSpinCount, net))
	}
	return nil
}
