package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/slotengine/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate machine YAML files",
	Long: `Parse and validate each machine file. Exits non-zero if any file fails.

Examples:
  slotctl validate configs/machines/classic.yaml
  slotctl validate configs/machines/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		m, err := config.LoadMachineFile(path)
		if err != nil {
			failed++
			fmt.Fprintln(out, styleFail.Render("FAIL"), path, err)
			continue
		}
		fmt.Fprintln(out, styleOK.Render("OK  "), path,
			fmt.Sprintf("(%s: %dx%d, %d lines)", m.ID, m.Config.Rows, m.Config.Reels, len(m.Config.Paylines)))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d machine files invalid", failed, len(args))
	}
	return nil
}
