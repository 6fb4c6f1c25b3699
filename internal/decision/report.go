package decision

import "github.com/rotisserie/eris"

// Criterion names a decision rule.
type Criterion string

const (
	CriterionLaplace     Criterion = "laplace"
	CriterionPessimistic Criterion = "pessimistic"
	CriterionOptimistic  Criterion = "optimistic"
	CriterionHurwicz     Criterion = "hurwicz"
	CriterionSavage      Criterion = "savage"
)

// Criteria lists every criterion in report order.
var Criteria = []Criterion{
	CriterionLaplace,
	CriterionPessimistic,
	CriterionOptimistic,
	CriterionHurwicz,
	CriterionSavage,
}

// Result is one criterion's outcome.
type Result struct {
	Criterion Criterion `json:"criterion"`
	Scores    []float64 `json:"scores"`
	Winner    int       `json:"winner"`
	Mode      Mode      `json:"mode"`
	// Regret is set for Savage only.
	Regret *Matrix `json:"-"`
}

// Report holds the results of one evaluation pass, in Criteria order.
type Report struct {
	Optimism float64  `json:"optimism"`
	Results  []Result `json:"results"`
}

// Result returns the result for c, or false when the report lacks it.
func (r *Report) Result(c Criterion) (Result, bool) {
	for _, res := range r.Results {
		if res.Criterion == c {
			return res, true
		}
	}
	return Result{}, false
}

// Evaluate validates rows and coef, then runs all five criteria. Nothing is
// computed unless both inputs are valid.
func Evaluate(rows [][]float64, coef float64) (*Report, error) {
	m, err := Validate(rows)
	if err != nil {
		return nil, err
	}
	return EvaluateMatrix(m, coef)
}

// EvaluateMatrix runs all five criteria over an already validated matrix.
func EvaluateMatrix(m *Matrix, coef float64) (*Report, error) {
	if m == nil {
		return nil, eris.Wrap(ErrShape, "matrix is nil")
	}
	if err := CheckOptimism(coef); err != nil {
		return nil, err
	}

	hurwicz, err := Hurwicz(m, coef)
	if err != nil {
		return nil, err
	}
	regret, savage := Savage(m)

	steps := []Result{
		{Criterion: CriterionLaplace, Scores: Laplace(m), Mode: Maximize},
		{Criterion: CriterionPessimistic, Scores: Pessimistic(m), Mode: Maximize},
		{Criterion: CriterionOptimistic, Scores: Optimistic(m), Mode: Maximize},
		{Criterion: CriterionHurwicz, Scores: hurwicz, Mode: Maximize},
		{Criterion: CriterionSavage, Scores: savage, Mode: Minimize, Regret: regret},
	}

	report := &Report{Optimism: coef, Results: make([]Result, 0, len(steps))}
	for _, res := range steps {
		winner, err := Select(res.Scores, res.Mode)
		if err != nil {
			return nil, eris.Wrapf(err, "select %s winner", res.Criterion)
		}
		res.Winner = winner
		report.Results = append(report.Results, res)
	}

	return report, nil
}
