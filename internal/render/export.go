package render

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/decision-cli/internal/decision"
)

// JSON writes env as a single JSON document followed by a newline.
func JSON(w io.Writer, env *Envelope) error {
	if err := json.NewEncoder(w).Encode(env); err != nil {
		return eris.Wrap(err, "render: encode json")
	}
	return nil
}

// CSV writes one record per criterion: criterion, mode, winner label, best
// score, then every alternative's score.
func CSV(w io.Writer, env *Envelope) error {
	cw := csv.NewWriter(w)

	header := []string{"criterion", "mode", "winner", "best"}
	for i := 0; i < env.Rows; i++ {
		header = append(header, AltLabel(i))
	}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "render: write CSV header")
	}

	for _, r := range env.Results {
		row := []string{r.Criterion, r.Mode, r.WinnerLabel, FormatNumber(r.Best)}
		for _, s := range r.Scores {
			row = append(row, FormatNumber(s))
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "render: write CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "render: flush CSV")
	}
	return nil
}

// WriteXLSX saves env as a workbook with a "Matrix" sheet, a "Results"
// sheet and, for Savage, a "Regret" sheet.
func WriteXLSX(path string, env *Envelope) error {
	f := xlsx.NewFile()

	if err := addGridSheet(f, "Matrix", env.Matrix); err != nil {
		return err
	}

	results, err := f.AddSheet("Results")
	if err != nil {
		return eris.Wrap(err, "render: add Results sheet")
	}
	header := results.AddRow()
	for _, h := range []string{"Criterion", "Mode", "Winner", "Best"} {
		header.AddCell().SetString(h)
	}
	for i := 0; i < env.Rows; i++ {
		header.AddCell().SetString(AltLabel(i))
	}
	for _, r := range env.Results {
		row := results.AddRow()
		row.AddCell().SetString(Title(decision.Criterion(r.Criterion)))
		row.AddCell().SetString(r.Mode)
		row.AddCell().SetString(r.WinnerLabel)
		row.AddCell().SetFloat(r.Best)
		for _, s := range r.Scores {
			row.AddCell().SetFloat(s)
		}
	}

	for _, r := range env.Results {
		if r.Regret == nil {
			continue
		}
		if err := addGridSheet(f, "Regret", r.Regret); err != nil {
			return err
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "render: save xlsx %s", path)
	}
	return nil
}

func addGridSheet(f *xlsx.File, name string, cells [][]float64) error {
	sheet, err := f.AddSheet(name)
	if err != nil {
		return eris.Wrapf(err, "render: add %s sheet", name)
	}

	header := sheet.AddRow()
	header.AddCell().SetString("")
	if len(cells) > 0 {
		for j := range cells[0] {
			header.AddCell().SetString(StateLabel(j))
		}
	}
	for i, r := range cells {
		row := sheet.AddRow()
		row.AddCell().SetString(AltLabel(i))
		for _, v := range r {
			row.AddCell().SetFloat(v)
		}
	}
	return nil
}
