package matrixio

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// ReadCSVFile reads a headerless CSV matrix from path.
func ReadCSVFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "matrixio: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	return ReadCSV(f)
}

// ReadCSV reads one alternative per record. Lines starting with '#' are
// comments and blank lines are skipped. Ragged records are kept so that
// validation can report them.
func ReadCSV(r io.Reader) (*Input, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // allow variable fields

	var cells [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "matrixio: read csv row")
		}
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
		cells = append(cells, record)
	}

	m, err := build(cells)
	if err != nil {
		return nil, eris.Wrap(err, "matrixio: csv matrix")
	}
	return &Input{Matrix: m}, nil
}
