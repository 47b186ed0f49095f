package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/slots"
)

const cellWidth = 9

var (
	titleCaser = cases.Title(language.English)
	printer    = message.NewPrinter(language.English)

	styleTitle = lipgloss.NewStyle().Bold(true)
	styleCell  = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	styleWin   = styleCell.Foreground(lipgloss.Color("#FFD700")).Bold(true)
	styleGrid  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	styleFail  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)

	triggerStyles = map[string]lipgloss.Style{
		slots.TriggerBigWin:      lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true),
		slots.TriggerJackpot:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
		slots.TriggerMegaJackpot: lipgloss.NewStyle().Foreground(lipgloss.Color("#EC4899")).Bold(true).Blink(true),
	}
)

// displayName renders a symbol for humans, e.g. SEVEN -> "Seven".
func displayName(s domain.Symbol) string {
	return titleCaser.String(strings.ToLower(s.String()))
}

// formatAmount adds thousands separators.
func formatAmount(n int64) string {
	return printer.Sprintf("%d", n)
}

// winningCells collects every cell that contributed to a payout.
func winningCells(res *domain.SpinResult) map[domain.Position]bool {
	cells := make(map[domain.Position]bool)
	for _, l := range res.WinningLines() {
		for _, c := range l.Cells {
			cells[c] = true
		}
	}
	if res.Scatter != nil {
		for _, c := range res.Scatter.Cells {
			cells[c] = true
		}
	}
	return cells
}

func renderGrid(res *domain.SpinResult) string {
	wins := winningCells(res)
	rows := make([]string, len(res.Grid))
	for r, row := range res.Grid {
		cells := make([]string, len(row))
		for c, s := range row {
			style := styleCell
			if wins[domain.Position{Row: r, Reel: c}] {
				style = styleWin
			}
			cells[c] = style.Render(displayName(s))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return styleGrid.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderResult(m domain.Machine, res *domain.SpinResult) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(m.Name))
	b.WriteString(styleDim.Render(fmt.Sprintf("  bet %s", formatAmount(res.BetAmount))))
	b.WriteString("\n")
	b.WriteString(renderGrid(res))
	b.WriteString("\n")

	for _, l := range res.WinningLines() {
		fmt.Fprintf(&b, "  %-14s %d x %-8s %s\n", l.Payline, l.Matches, displayName(l.Symbol), formatAmount(l.Payout))
		if len(l.Substitutions) > 0 {
			b.WriteString(styleDim.Render(fmt.Sprintf("  %-14s %d wild substitution(s)", "", len(l.Substitutions))))
			b.WriteString("\n")
		}
	}
	if res.Scatter != nil {
		fmt.Fprintf(&b, "  %-14s %d x %-8s %s\n", "SCATTER", res.Scatter.Count, displayName(domain.SymbolScatter), formatAmount(res.Scatter.Payout))
	}

	total := "Total " + formatAmount(res.TotalPayout)
	if res.Capped {
		total += styleDim.Render(" (capped)")
	}
	if style, ok := triggerStyles[res.TriggerType]; ok {
		total += "  " + style.Render(strings.ToUpper(strings.ReplaceAll(res.TriggerType, "_", " ")))
	}
	b.WriteString(total)
	return b.String()
}

func renderSummaryLine(spins int, net int64) string {
	sign := ""
	if net > 0 {
		sign = "+"
	}
	return styleTitle.Render(fmt.Sprintf("%d spins, net %s%s", spins, sign, formatAmount(net)))
}

func renderReport(m domain.Machine, r *slots.SimulationReport, elapsed time.Duration) string {
	label := styleDim.Width(16)
	line := func(k, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(k), v)
	}

	lines := []string{
		styleTitle.Render(fmt.Sprintf("%s: %s spins at %s", m.Name, formatAmount(int64(r.Spins)), formatAmount(r.Bet))),
		line("Wagered", formatAmount(r.TotalWagered)),
		line("Paid", formatAmount(r.TotalPaid)),
		line("RTP", fmt.Sprintf("%.4f%%", r.RTP*100)),
		line("Hit rate", fmt.Sprintf("%.4f%%", r.HitRate*100)),
		line("Scatter rate", fmt.Sprintf("%.4f%%", r.ScatterHitRate*100)),
		line("Max win", formatAmount(r.MaxWin)),
	}

	triggers := make([]string, 0, len(r.Triggers))
	for t := range r.Triggers {
		triggers = append(triggers, t)
	}
	sort.Strings(triggers)
	for _, t := range triggers {
		lines = append(lines, line(titleCaser.String(strings.ReplaceAll(t, "_", " ")), formatAmount(int64(r.Triggers[t]))))
	}
	lines = append(lines, styleDim.Render(fmt.Sprintf("took %s", elapsed.Round(time.Millisecond))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
