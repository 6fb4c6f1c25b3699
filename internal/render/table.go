package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rotisserie/eris"

	"github.com/sells-group/decision-cli/internal/decision"
)

// Table prints the original matrix followed by one table per criterion,
// each with an EV column and a line naming the best alternative. Savage
// also prints its regret matrix.
func Table(w io.Writer, env *Envelope, style Style) error {
	tw := &tableWriter{w: w}

	tw.printf("%s\n", style.heading("Original Matrix"))
	tw.grid(labelledGrid(env.Matrix, nil))

	for _, r := range env.Results {
		title := Title(decision.Criterion(r.Criterion))
		tw.printf("\n %s\n", style.heading(title+" Method"))
		tw.grid(labelledGrid(env.Matrix, r.Scores))
		tw.printf("> The best expected value for the %s %s %s with %s\n",
			style.method(title+" method"),
			style.plain("is"),
			style.value(FormatNumber(r.Best)),
			style.method(r.WinnerLabel),
		)
		if r.Regret != nil {
			tw.printf("\n %s\n", style.heading(title+" Regret Matrix"))
			tw.grid(labelledGrid(r.Regret, nil))
		}
	}

	if tw.err != nil {
		return eris.Wrap(tw.err, "render: write table")
	}
	return nil
}

// labelledGrid adds the S1..Sn header row and A1..Am label column; when ev
// is non-nil an EV column is appended.
func labelledGrid(cells [][]float64, ev []float64) [][]string {
	cols := 0
	if len(cells) > 0 {
		cols = len(cells[0])
	}

	header := make([]string, 0, cols+2)
	header = append(header, "")
	for j := 0; j < cols; j++ {
		header = append(header, StateLabel(j))
	}
	if ev != nil {
		header = append(header, "EV")
	}

	out := [][]string{header}
	for i, row := range cells {
		line := make([]string, 0, cols+2)
		line = append(line, AltLabel(i))
		for _, v := range row {
			line = append(line, FormatNumber(v))
		}
		if ev != nil {
			line = append(line, FormatNumber(ev[i]))
		}
		out = append(out, line)
	}
	return out
}

// tableWriter remembers the first write error so callers check once.
type tableWriter struct {
	w   io.Writer
	err error
}

func (t *tableWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// grid draws rows in the box style:
//
//	╒════╤════╕
//	│    │ S1 │
//	├────┼────┤
//	│ A1 │  2 │
//	╘════╧════╛
func (t *tableWriter) grid(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for j, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	rule := func(left, fill, mid, right string) string {
		parts := make([]string, len(widths))
		for j, w := range widths {
			parts[j] = strings.Repeat(fill, w+2)
		}
		return left + strings.Join(parts, mid) + right + "\n"
	}

	t.printf("%s", rule("╒", "═", "╤", "╕"))
	for i, row := range rows {
		if i > 0 {
			t.printf("%s", rule("├", "─", "┼", "┤"))
		}
		cells := make([]string, len(row))
		for j, cell := range row {
			if j == 0 || i == 0 {
				cells[j] = padRight(cell, widths[j])
			} else {
				cells[j] = padLeft(cell, widths[j])
			}
		}
		t.printf("│ %s │\n", strings.Join(cells, " │ "))
	}
	t.printf("%s", rule("╘", "═", "╧", "╛"))
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// padLeft right-aligns s within width display columns.
func padLeft(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return strings.Repeat(" ", width-sw) + s
}
