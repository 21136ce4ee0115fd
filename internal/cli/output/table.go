package output

import (
	"encoding/json"
	"io"
	"text/tabwriter"
)

// Unset is printed in table cells for absent values.
const Unset = "-"

// Tabular is implemented by values that know how to lay themselves out
// as one or more tables.
type Tabular interface {
	Tables() []*Table
}

// TableFormatter formats data as aligned tables.
type TableFormatter struct {
	NoHeaders bool
}

// Format renders a *Table, a Table or a Tabular value. Anything else is
// written as JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case *Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case Tabular:
		for i, t := range v.Tables() {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := t.RenderWithOptions(w, f.NoHeaders); err != nil {
				return err
			}
		}
		return nil
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Table represents tabular data.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table. The title, if any, is printed
// above the header row.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	if t.Title != "" && !noHeaders {
		if _, err := io.WriteString(w, t.Title+"\n"); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		writeRow(tw, t.Headers)
	}
	for _, row := range t.Rows {
		writeRow(tw, row)
	}

	return tw.Flush()
}

// tabwriter buffers until Flush, which reports the first write error.
func writeRow(tw *tabwriter.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			tw.Write([]byte("\t"))
		}
		if cell == "" {
			cell = Unset
		}
		tw.Write([]byte(cell))
	}
	tw.Write([]byte("\n"))
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}

// Cell renders an optional value for a table cell.
func Cell[T any](v *T, format func(T) string) string {
	if v == nil {
		return Unset
	}
	return format(*v)
}
