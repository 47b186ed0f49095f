package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/slotengine/internal/domain"
)

var flagEvaluateBet int64

var evaluateCmd = &cobra.Command{
	Use:   "evaluate ROW...",
	Short: "Score a grid given as comma-separated rows, top to bottom",
	Long: `Score a fixed grid without drawing. Each argument is one row of symbol
names separated by commas. Names are case-insensitive.

Examples:
  slotctl evaluate --bet 20 \
    CHERRY,BAR,STAR,DIAMOND,COIN \
    SEVEN,SEVEN,SEVEN,BAR,BAR \
    BAR,STAR,DIAMOND,COIN,CHERRY`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().Int64Var(&flagEvaluateBet, "bet", 0, "Bet amount (0 = machine default)")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	grid, err := parseGrid(args)
	if err != nil {
		return err
	}

	m, e, err := loadEngine()
	if err != nil {
		return err
	}
	bet := flagEvaluateBet
	if bet == 0 {
		bet = m.Config.DefaultBet
	}

	res, err := e.Evaluate(grid, bet)
	if err != nil {
		return err
	}
	res.MachineID = m.ID

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), res)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderResult(m, res))
	return nil
}

// parseGrid turns "A,B,C" row arguments into a grid.
func parseGrid(rows []string) (domain.Grid, error) {
	names := make([][]string, len(rows))
	for r, row := range rows {
		names[r] = strings.Split(row, ",")
	}
	return domain.ParseGrid(names)
}
