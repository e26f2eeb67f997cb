// Package format renders tabular CLI output with go-pretty.
package format

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode selects the rendering.
type Mode int

const (
	// ASCII draws box-drawing terminal tables.
	ASCII Mode = iota
	// Markdown emits GitHub-flavoured Markdown.
	Markdown
)

// Table accumulates a header and rows, then renders them in one Mode.
type Table struct {
	w    table.Writer
	mode Mode
}

// NewTable returns an empty table rendering in m.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}

	return &Table{w: w, mode: m}
}

// Header sets the column titles.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.w.AppendHeader(row)
}

// Row appends one data row.
func (t *Table) Row(vals ...any) {
	t.w.AppendRow(append(table.Row(nil), vals...))
}

// AlignRight right-aligns the 1-based columns cols.
func (t *Table) AlignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
	}
	t.w.SetColumnConfigs(cfgs)
}

// Len reports the number of data rows.
func (t *Table) Len() int { return t.w.Length() }

// String renders the table.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.w.RenderMarkdown()
	}

	return t.w.Render()
}

// WriteTo writes the rendered table and a trailing newline to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String()+"\n")

	return int64(n), err
}
