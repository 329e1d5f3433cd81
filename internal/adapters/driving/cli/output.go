package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// Styles for terminal output.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func termCheck(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// header prints a section title, styled when stdout is a terminal.
func header(cmd *cobra.Command, title string) {
	if isTerminal() {
		cmd.Println(headerStyle.Render(title))
		return
	}
	cmd.Println(title)
}

// field prints an indented "label: value" line.
func field(cmd *cobra.Command, label, value string) {
	if isTerminal() {
		label = labelStyle.Render(label + ":")
	} else {
		label += ":"
	}
	cmd.Printf("  %s %s\n", label, value)
}

// outputJSON writes v as indented JSON.
func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// trialViews converts trials to their JSON form with the legacy status key.
func trialViews(trials []domain.Trial) []any {
	views := make([]any, 0, len(trials))
	for _, t := range trials {
		views = append(views, t.JSONView())
	}
	return views
}

// maxTitleWidth truncates titles in the summary table.
const maxTitleWidth = 60

// outputTrialTable writes one row per trial.
func outputTrialTable(cmd *cobra.Command, trials []domain.Trial) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Trial ID", "Title", "Status", "Phase", "Countries")
	for _, t := range trials {
		row := []string{
			t.ID,
			truncate(t.Title, maxTitleWidth),
			t.Status(),
			strings.Join(t.Phases, ", "),
			strings.Join(t.Countries, ", "),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to build table: %w", err)
		}
	}
	return table.Render()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
