package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mcoot/vierbure/internal/model"
)

var (
	colorText    = lipgloss.Color("#cdd6f4")
	colorSubtle  = lipgloss.Color("#7f849c")
	colorGreen   = lipgloss.Color("#a6e3a1")
	colorRed     = lipgloss.Color("#f38ba8")
	colorPeach   = lipgloss.Color("#fab387")
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	subtleStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	warningStyle = lipgloss.NewStyle().Foreground(colorPeach)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(ErrorResponse{Error: toCLIError(err)})
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintln(o.errOut, errorStyle.Render("Error: "+err.Error()))
	}
}

// PrintWarning reports a rejected input that left the scoreboard unchanged
func (o *Output) PrintWarning(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"warning": msg})
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintln(o.errOut, warningStyle.Render("Warning: "+msg))
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ScoreboardView:
		o.printScoreboard(v)
	case NamesView:
		o.printNames(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printNames(v NamesView) {
	for i, name := range v.Names {
		fmt.Fprintf(o.out, "%d. %s\n", i+1, name)
	}
}

func (o *Output) printScoreboard(v ScoreboardView) {
	headers := []string{"Runde"}
	for _, p := range v.Players {
		headers = append(headers, p.Name)
	}
	headers = append(headers, "")

	rows := make([][]string, 0, len(v.Rounds)+1)
	for _, r := range v.Rounds {
		row := []string{strconv.Itoa(r.Number)}
		for _, c := range r.Cells {
			row = append(row, cellText(c))
		}
		row = append(row, statusMarker(r))
		rows = append(rows, row)
	}

	totals := []string{"Total"}
	for _, p := range v.Players {
		totals = append(totals, strconv.Itoa(p.Total))
	}
	totals = append(totals, "")
	rows = append(rows, totals)
	totalsRow := len(rows) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(subtleStyle).
		BorderHeader(true).
		BorderRow(false).
		BorderColumn(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row == totalsRow:
				style = totalStyle(v.Players, col-1)
			case row >= 0 && row < len(v.Rounds):
				style = roundStyle(v.Rounds[row])
			default:
				style = headerStyle
			}
			style = style.Padding(0, 1)
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	fmt.Fprintln(o.out, t.Render())

	for _, r := range v.Rounds {
		if r.Message != "" {
			fmt.Fprintln(o.out, errorStyle.Render(r.Message))
		}
	}
}

// cellText renders a score cell as "top" or "top (+bottom)", with "." for an empty top
func cellText(c CellView) string {
	top := "."
	switch {
	case c.Match:
		top = "Match"
	case c.Set:
		top = strconv.Itoa(c.Top)
	}
	if c.Bottom == nil {
		return top
	}
	return fmt.Sprintf("%s (%+d)", top, *c.Bottom)
}

func statusMarker(r RoundView) string {
	switch {
	case r.Editable:
		return "*"
	case r.Status == model.RoundStatusConfirmed:
		return "ok"
	case r.Status == model.RoundStatusInvalid:
		return "!"
	default:
		return ""
	}
}

// totalStyle colours a player's total: green for the lowest, red for the highest
func totalStyle(players []PlayerView, index int) lipgloss.Style {
	if index < 0 || index >= len(players) {
		return headerStyle
	}
	switch {
	case players[index].Leading:
		return headerStyle.Foreground(colorGreen)
	case players[index].Trailing:
		return headerStyle.Foreground(colorRed)
	default:
		return headerStyle
	}
}

func roundStyle(r RoundView) lipgloss.Style {
	switch r.Status {
	case model.RoundStatusConfirmed:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case model.RoundStatusInvalid:
		return lipgloss.NewStyle().Foreground(colorRed)
	default:
		return lipgloss.NewStyle().Foreground(colorText)
	}
}
