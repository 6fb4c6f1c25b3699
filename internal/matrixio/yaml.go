package matrixio

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Document is the YAML/JSON matrix file layout:
//
//	optimism: 0.4
//	matrix:
//	  - [2, 4]
//	  - [5, 1]
//
// Cells are decoded as text so that a non-numeric cell surfaces as
// decision.ErrValue rather than a decoder error.
type Document struct {
	Optimism *float64   `yaml:"optimism,omitempty"`
	Matrix   [][]string `yaml:"matrix"`
}

// ReadYAMLFile reads a matrix document from path. JSON is valid YAML, so
// .json files take the same route.
func ReadYAMLFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "matrixio: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	return ReadYAML(f)
}

// ReadYAML decodes a matrix document from r.
func ReadYAML(r io.Reader) (*Input, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, eris.New("matrixio: empty matrix document")
		}
		return nil, eris.Wrap(err, "matrixio: parse matrix document")
	}

	m, err := build(doc.Matrix)
	if err != nil {
		return nil, eris.Wrap(err, "matrixio: matrix document")
	}
	return &Input{Matrix: m, Optimism: doc.Optimism}, nil
}

// outDocument mirrors Document with numeric cells for writing.
type outDocument struct {
	Optimism *float64    `yaml:"optimism,omitempty"`
	Matrix   [][]float64 `yaml:"matrix,flow"`
}

// WriteYAML writes rows (and optimism, when non-nil) as a matrix document
// that ReadYAML accepts.
func WriteYAML(w io.Writer, rows [][]float64, optimism *float64) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(outDocument{Optimism: optimism, Matrix: rows}); err != nil {
		return eris.Wrap(err, "matrixio: encode matrix document")
	}
	if err := enc.Close(); err != nil {
		return eris.Wrap(err, "matrixio: flush matrix document")
	}
	return nil
}
