// Package ui renders the console's tabular views, status chips, and
// user-facing messages. Color is optional so output stays testable and
// pipe-friendly.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Table renders rows under a fixed header, padding columns to fit.
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{writer: w, headers: headers, noColor: color.NoColor}
}

// Plain disables color for this table regardless of terminal detection.
func (t *Table) Plain() *Table {
	t.noColor = true
	return t
}

func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && cellWidth(cell) > widths[i] {
				widths[i] = cellWidth(cell)
			}
		}
	}

	bold := color.New(color.Bold, color.FgCyan)
	gray := color.New(color.FgHiBlack)
	if t.noColor {
		bold.DisableColor()
		gray.DisableColor()
	}

	for i, h := range t.headers {
		bold.Fprint(t.writer, padRight(h, widths[i]))
		if i < len(t.headers)-1 {
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for i, width := range widths {
		gray.Fprint(t.writer, strings.Repeat("─", width))
		if i < len(widths)-1 {
			gray.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			fmt.Fprint(t.writer, padRight(cell, widths[i]))
			if i < len(row)-1 {
				fmt.Fprint(t.writer, "  ")
			}
		}
		fmt.Fprintln(t.writer)
	}
}

// cellWidth measures the printable width of a cell, ignoring ANSI escapes so
// colored chips do not skew padding.
func cellWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			width++
		}
	}
	return width
}

func padRight(s string, width int) string {
	if w := cellWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// KeyValue renders aligned key-value rows, used by the dashboard and detail
// views.
type KeyValue struct {
	writer  io.Writer
	rows    [][2]string
	noColor bool
}

func NewKeyValue(w io.Writer) *KeyValue {
	return &KeyValue{writer: w, noColor: color.NoColor}
}

func (kv *KeyValue) Plain() *KeyValue {
	kv.noColor = true
	return kv
}

func (kv *KeyValue) AddRow(key, value string) {
	kv.rows = append(kv.rows, [2]string{key, value})
}

func (kv *KeyValue) Render() {
	maxKey := 0
	for _, row := range kv.rows {
		if len(row[0]) > maxKey {
			maxKey = len(row[0])
		}
	}

	cyan := color.New(color.FgCyan)
	if kv.noColor {
		cyan.DisableColor()
	}
	for _, row := range kv.rows {
		cyan.Fprint(kv.writer, padRight(row[0]+":", maxKey+1))
		fmt.Fprintf(kv.writer, " %s\n", row[1])
	}
}

// Header prints a section title with an underline.
func Header(w io.Writer, title string) {
	bold := color.New(color.Bold, color.FgCyan)
	if color.NoColor {
		bold.DisableColor()
	}
	bold.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", cellWidth(title)))
}
