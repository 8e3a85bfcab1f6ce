package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/truthtab/go-prop/encode"
	"github.com/truthtab/go-prop/parse"
	"github.com/truthtab/go-prop/table"

	"github.com/scott-cotton/cli"
)

func propTable(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no formula given", cli.ErrUsage)
	}
	for i, arg := range args {
		n, err := parse.Parse(arg)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := writeTable(cfg, cc.Out, table.New(n)); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(cfg *TableConfig, w io.Writer, t *table.Table) error {
	headers := t.Headers(cfg.notation())
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	colors := cfg.colors(w)

	cells := make([]string, len(headers))
	for i, h := range headers {
		if colors != nil {
			h = colors.Color(encode.HeaderColor, h)
		}
		cells[i] = h + pad(widths[i], utf8.RuneCountInString(headers[i]))
	}
	if err := writeRow(w, cells); err != nil {
		return err
	}
	for r := range t.Rows {
		for c, v := range t.Row(r) {
			tf := "F"
			if v {
				tf = "T"
			}
			if colors != nil {
				tf = colors.Bool(v)
			}
			// center the value under the column header
			left := (widths[c] - 1) / 2
			cells[c] = pad(left, 0) + tf + pad(widths[c], left+1)
		}
		if err := writeRow(w, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string) error {
	_, err := io.WriteString(w, strings.Join(cells, "  ")+"\n")
	return err
}

// pad returns the spaces filling a cell of the given width whose content
// occupies used columns.
func pad(width, used int) string {
	if used >= width {
		return ""
	}
	return strings.Repeat(" ", width-used)
}
