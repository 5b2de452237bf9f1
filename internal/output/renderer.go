package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Kalmar41k/goit-algo-hw-05/internal/analyzer"
	"github.com/Kalmar41k/goit-algo-hw-05/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Renderer writes the level-count table and filtered record details.
type Renderer interface {
	RenderCounts(tally *analyzer.Tally) error
	RenderDetails(level string, records []model.Record) error
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

var (
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleDebug   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleHeading = lipgloss.NewStyle().Bold(true)
)

const levelColWidth = 16

// TextRenderer prints the count table and details with severity-based colors.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a Renderer that writes colorized text to stdout.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{w: os.Stdout}
}

// NewTextRendererWithWriter returns a Renderer that writes to w.
func NewTextRendererWithWriter(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) RenderCounts(tally *analyzer.Tally) error {
	if _, err := fmt.Fprintf(r.w, "%-*s | %s\n", levelColWidth, "Log level", "Count"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, strings.Repeat("-", levelColWidth+1)+"|"+strings.Repeat("-", 10)); err != nil {
		return err
	}

	for _, level := range tally.Levels() {
		tag := styleLevelTag(level)
		if _, err := fmt.Fprintf(r.w, "%s | %d\n", tag, tally.Get(level)); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) RenderDetails(level string, records []model.Record) error {
	header := styleHeading.Render(fmt.Sprintf("Log details for level '%s'", level))
	if _, err := fmt.Fprintf(r.w, "\n%s\n", header); err != nil {
		return err
	}

	for _, rec := range records {
		if _, err := fmt.Fprintf(r.w, "%s - %s\n", rec.DateTime, rec.Text); err != nil {
			return err
		}
	}
	return nil
}

// styleLevelTag pads the level to the table column width, then colors it.
// Padding before styling keeps ANSI sequences out of the width calculation.
func styleLevelTag(level string) string {
	padded := fmt.Sprintf("%-*s", levelColWidth, level)
	switch level {
	case "DEBUG":
		return styleDebug.Render(padded)
	case "WARN", "WARNING":
		return styleWarn.Render(padded)
	case "ERROR", "FATAL", "CRITICAL":
		return styleError.Render(padded)
	default:
		return styleInfo.Render(padded)
	}
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// levelCount is one row of the tally, in first-seen order.
type levelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// JSONRenderer prints each render call as a single JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON lines to stdout.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(os.Stdout)}
}

// NewJSONRendererWithWriter returns a Renderer that writes JSON lines to w.
func NewJSONRendererWithWriter(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) RenderCounts(tally *analyzer.Tally) error {
	counts := make([]levelCount, 0, tally.Len())
	for _, level := range tally.Levels() {
		counts = append(counts, levelCount{Level: level, Count: tally.Get(level)})
	}
	return r.enc.Encode(struct {
		Counts []levelCount `json:"counts"`
	}{counts})
}

func (r *JSONRenderer) RenderDetails(level string, records []model.Record) error {
	if records == nil {
		records = []model.Record{}
	}
	return r.enc.Encode(struct {
		Level   string         `json:"level"`
		Records []model.Record `json:"records"`
	}{level, records})
}
