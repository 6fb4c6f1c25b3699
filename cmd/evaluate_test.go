package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/decision-cli/internal/config"
	"github.com/sells-group/decision-cli/internal/decision"
	"github.com/sells-group/decision-cli/internal/render"
)

func writeMatrixFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func ptr(v float64) *float64 { return &v }

func decodeEnvelope(t *testing.T, data []byte) render.Envelope {
	t.Helper()
	var env render.Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestResolveOptimism(t *testing.T) {
	dc := config.DecisionConfig{Optimism: 0.5}

	tests := []struct {
		name     string
		fromFile *float64
		fromFlag *float64
		want     float64
	}{
		{"config default", nil, nil, 0.5},
		{"file wins over config", ptr(0.2), nil, 0.2},
		{"flag wins over file", ptr(0.2), ptr(0.9), 0.9},
		{"flag zero is honored", nil, ptr(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveOptimism(dc, tt.fromFile, tt.fromFlag))
		})
	}
}

func TestEvaluate_TableFromYAML(t *testing.T) {
	path := writeMatrixFile(t, "m.yaml", "matrix:\n  - [2, 4]\n  - [5, 1]\n")

	var buf bytes.Buffer
	err := evaluate(&buf, config.DecisionConfig{Optimism: 0.5}, evaluateOptions{
		File:   path,
		Output: outputOptions{Format: "table", Color: "never"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Original Matrix")
	assert.Contains(t, out, "> The best expected value for the Hurwicz method is 3 with A1")
	assert.Contains(t, out, "> The best expected value for the Optimistic method is 5 with A2")
	assert.NotContains(t, out, "\x1b[")
}

func TestEvaluate_JSONUsesFileOptimism(t *testing.T) {
	path := writeMatrixFile(t, "m.json", `{"optimism": 1, "matrix": [[2, 4], [5, 1]]}`)

	var buf bytes.Buffer
	err := evaluate(&buf, config.DecisionConfig{Optimism: 0.5}, evaluateOptions{
		File:   path,
		Output: outputOptions{Format: "json"},
	})
	require.NoError(t, err)

	env := decodeEnvelope(t, buf.Bytes())
	assert.Equal(t, 1.0, env.Optimism)
	require.Len(t, env.Results, 5)
	hurwicz := env.Results[3]
	assert.Equal(t, string(decision.CriterionHurwicz), hurwicz.Criterion)
	assert.Equal(t, []float64{4, 5}, hurwicz.Scores)
	assert.Equal(t, "A2", hurwicz.WinnerLabel)
}

func TestEvaluate_FlagOverridesFileOptimism(t *testing.T) {
	path := writeMatrixFile(t, "m.json", `{"optimism": 1, "matrix": [[2, 4], [5, 1]]}`)

	var buf bytes.Buffer
	err := evaluate(&buf, config.DecisionConfig{Optimism: 0.5}, evaluateOptions{
		File:     path,
		Optimism: ptr(0),
		Output:   outputOptions{Format: "json"},
	})
	require.NoError(t, err)

	env := decodeEnvelope(t, buf.Bytes())
	assert.Equal(t, []float64{2, 1}, env.Results[3].Scores)
}

func TestEvaluate_CSVOutput(t *testing.T) {
	path := writeMatrixFile(t, "m.csv", "2,4\n5,1\n")

	var buf bytes.Buffer
	err := evaluate(&buf, config.DecisionConfig{Optimism: 0.5}, evaluateOptions{
		File:   path,
		Output: outputOptions{Format: "csv"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "savage,minimize,A1,3,3,3\n")
}

func TestEvaluate_RandomIsSeeded(t *testing.T) {
	opts := evaluateOptions{
		Random: randomOptions{Rows: 3, Cols: 4, Low: 0, High: 10, Seed: 11},
		Output: outputOptions{Format: "json"},
	}

	var first, second bytes.Buffer
	require.NoError(t, evaluate(&first, config.DecisionConfig{Optimism: 0.5}, opts))
	require.NoError(t, evaluate(&second, config.DecisionConfig{Optimism: 0.5}, opts))

	a := decodeEnvelope(t, first.Bytes())
	b := decodeEnvelope(t, second.Bytes())
	assert.Equal(t, "random", a.Source)
	assert.Equal(t, 3, a.Rows)
	assert.Equal(t, 4, a.Cols)
	assert.Equal(t, a.Matrix, b.Matrix)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestEvaluate_XLSXExport(t *testing.T) {
	path := writeMatrixFile(t, "m.yaml", "matrix: [[1, 2], [3, 0]]")
	out := filepath.Join(t.TempDir(), "report.xlsx")

	var buf bytes.Buffer
	err := evaluate(&buf, config.DecisionConfig{Optimism: 0.5}, evaluateOptions{
		File:   path,
		Output: outputOptions{Format: "json", XLSX: out},
	})
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestEvaluate_Errors(t *testing.T) {
	dc := config.DecisionConfig{Optimism: 0.5}

	ragged := writeMatrixFile(t, "bad.yaml", "matrix: [[1, 2], [3]]")
	err := evaluate(&bytes.Buffer{}, dc, evaluateOptions{File: ragged, Output: outputOptions{Format: "json"}})
	assert.ErrorIs(t, err, decision.ErrShape)

	word := writeMatrixFile(t, "bad.csv", "1,two\n")
	err = evaluate(&bytes.Buffer{}, dc, evaluateOptions{File: word, Output: outputOptions{Format: "json"}})
	assert.ErrorIs(t, err, decision.ErrValue)

	good := writeMatrixFile(t, "good.yaml", "matrix: [[1, 2]]")
	err = evaluate(&bytes.Buffer{}, dc, evaluateOptions{File: good, Optimism: ptr(1.5), Output: outputOptions{Format: "json"}})
	assert.ErrorIs(t, err, decision.ErrRange)

	err = evaluate(&bytes.Buffer{}, dc, evaluateOptions{File: good, Output: outputOptions{Format: "xml"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)

	err = evaluate(&bytes.Buffer{}, dc, evaluateOptions{
		Random: randomOptions{Rows: 2, Cols: 2, Low: 5, High: 5},
		Output: outputOptions{Format: "json"},
	})
	assert.Error(t, err)
}

func TestEvaluate_NoOutputFileOnError(t *testing.T) {
	dc := config.DecisionConfig{Optimism: 0.5}
	ragged := writeMatrixFile(t, "bad.yaml", "matrix: [[1, 2], [3]]")
	good := writeMatrixFile(t, "good.yaml", "matrix: [[1, 2]]")

	tests := []struct {
		name string
		opts evaluateOptions
	}{
		{name: "invalid matrix", opts: evaluateOptions{File: ragged, Output: outputOptions{Format: "json"}}},
		{name: "missing file", opts: evaluateOptions{File: filepath.Join(t.TempDir(), "nope.yaml"), Output: outputOptions{Format: "json"}}},
		{name: "coefficient out of range", opts: evaluateOptions{File: good, Optimism: ptr(2), Output: outputOptions{Format: "table"}}},
		{name: "unknown format", opts: evaluateOptions{File: good, Output: outputOptions{Format: "xml"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report.out")
			tt.opts.Output.Path = path

			var stdout bytes.Buffer
			require.Error(t, evaluate(&stdout, dc, tt.opts))
			assert.NoFileExists(t, path)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestEvaluate_WritesOutputFile(t *testing.T) {
	good := writeMatrixFile(t, "good.yaml", "matrix: [[2, 4], [5, 1]]")
	path := filepath.Join(t.TempDir(), "report.json")

	var stdout bytes.Buffer
	err := evaluate(&stdout, config.DecisionConfig{Optimism: 0.5}, evaluateOptions{
		File:   good,
		Output: outputOptions{Format: "json", Path: path},
	})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	env := decodeEnvelope(t, data)
	assert.Equal(t, 2, env.Rows)
}

func TestOpenOutput(t *testing.T) {
	var stdout bytes.Buffer
	w, closeOut, err := openOutput("", &stdout)
	require.NoError(t, err)
	closeOut()
	assert.Same(t, &stdout, w)

	path := filepath.Join(t.TempDir(), "out.txt")
	w, closeOut, err = openOutput(path, &stdout)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	closeOut()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
