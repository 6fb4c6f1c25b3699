// Package matrixio loads payoff matrices from YAML, JSON, CSV and XLSX
// files, generates random matrices and writes matrix documents.
package matrixio

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/decision-cli/internal/decision"
)

// Input is a matrix read from a file, plus the optimism coefficient when
// the file carries one.
type Input struct {
	Source   string
	Matrix   *decision.Matrix
	Optimism *float64
}

// ReadFile loads a matrix, choosing the parser by file extension.
func ReadFile(path string) (*Input, error) {
	var (
		in  *Input
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		in, err = ReadYAMLFile(path)
	case ".csv", ".txt":
		in, err = ReadCSVFile(path)
	case ".xlsx":
		in, err = ReadXLSX(path, XLSXOptions{})
	default:
		return nil, eris.Errorf("matrixio: unsupported file type %q for %s", ext, path)
	}
	if err != nil {
		return nil, err
	}

	in.Source = path
	return in, nil
}

// build parses textual cells and validates the result.
func build(cells [][]string) (*decision.Matrix, error) {
	rows, err := decision.ParseCells(cells)
	if err != nil {
		return nil, err
	}
	return decision.Validate(rows)
}
