package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dyike/FinAdvisorGo/internal/dataflows"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1).
			MarginBottom(1)

	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	assistantStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Italic(true)

	chartStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#10B981")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// DefaultWordDelay matches the reference pace of the word-by-word stream.
const DefaultWordDelay = 30 * time.Millisecond

// Banner renders the assistant greeting shown at session start.
func Banner() string {
	title := titleStyle.Render("💬 Financial Advisor 💵📈")
	intro := "Hi there! 👋 I am a chatbot created specifically to provide financial advice! " +
		"Please ask me any inquiries regarding managing personal financies, stocks, or the economy, and I'd be happy to help!"
	menu := hintStyle.Render(strings.Join([]string{
		"Feel free to ask me about:",
		"  1.) General questions about stocks and finances.",
		"  2.) Stock and financial analysis of a desired company.",
		"  3.) Price-to-Earnings ratios of various companies.",
		"  4.) Financial and stock-related news about a given company.",
	}, "\n"))
	return title + "\n" + intro + "\n\n" + menu + "\n"
}

func UserLabel() string      { return userStyle.Render("You") }
func AssistantLabel() string { return assistantStyle.Render("Advisor") }

// Status renders the in-progress indicator line.
func Status(msg string) string {
	return statusStyle.Render(msg)
}

// EscapeDollars guards literal dollar signs against markup interpretation
// downstream.
func EscapeDollars(text string) string {
	return strings.ReplaceAll(text, "$", "\\$")
}

// StreamMessage writes a message word by word with a fixed delay, escaping
// dollar signs the way the reference chat surface does.
func StreamMessage(w io.Writer, message string, delay time.Duration) {
	words := strings.Split(message, " ")
	for _, word := range words {
		fmt.Fprint(w, EscapeDollars(word)+" ")
		time.Sleep(delay)
	}
	fmt.Fprintln(w)
}

// RenderTrendChart draws a fixed-size ASCII line chart of the closing-price
// series, stand-in for the reference plot. The footer carries the date
// range and, when a quote is available, the day's open/high/low/volume.
// Empty trends render as an empty string so callers can print
// unconditionally.
func RenderTrendChart(trend dataflows.Trend, quote *dataflows.MarketData, width, height int) string {
	if len(trend) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	closes := make([]float64, len(trend))
	min, max := trend[0].Close.InexactFloat64(), trend[0].Close.InexactFloat64()
	for i, point := range trend {
		v := point.Close.InexactFloat64()
		closes[i] = v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	// Bucket the series into width columns, averaging each bucket.
	columns := make([]float64, width)
	for col := 0; col < width; col++ {
		lo := col * len(closes) / width
		hi := (col + 1) * len(closes) / width
		if hi <= lo {
			hi = lo + 1
		}
		sum := 0.0
		for _, v := range closes[lo:hi] {
			sum += v
		}
		columns[col] = sum / float64(hi-lo)
	}

	span := max - min
	grid := make([][]rune, height)
	for row := range grid {
		grid[row] = []rune(strings.Repeat(" ", width))
	}
	for col, v := range columns {
		row := 0
		if span > 0 {
			row = int((max - v) / span * float64(height-1))
		}
		grid[row][col] = '•'
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%.2f\n", max)
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%.2f\n", min)
	if quote != nil {
		fmt.Fprintf(&b, "O $%s  H $%s  L $%s  Vol %d\n",
			quote.Open.StringFixed(2),
			quote.High.StringFixed(2),
			quote.Low.StringFixed(2),
			quote.Volume)
	}
	fmt.Fprintf(&b, "%s%s%s",
		trend[0].Date.Format("2006-01-02"),
		strings.Repeat(" ", maxInt(1, width-20)),
		trend[len(trend)-1].Date.Format("2006-01-02"))

	return chartStyle.Render(b.String())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
