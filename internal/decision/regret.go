package decision

// Regret builds the Savage regret matrix: each cell becomes the best payoff
// in its column minus the cell. All column maxima are taken from m before
// any regret is computed, and m itself is left untouched.
func Regret(m *Matrix) *Matrix {
	colMax := append([]float64(nil), m.cells[0]...)
	for _, row := range m.cells[1:] {
		for j, v := range row {
			if v > colMax[j] {
				colMax[j] = v
			}
		}
	}

	cells := make([][]float64, m.rows)
	for i, row := range m.cells {
		cells[i] = make([]float64, m.cols)
		for j, v := range row {
			cells[i][j] = colMax[j] - v
		}
	}
	return &Matrix{cells: cells, rows: m.rows, cols: m.cols}
}

// Savage returns the regret matrix and, per alternative, its maximum regret.
// The winner under Savage is the alternative with the lowest score.
func Savage(m *Matrix) (*Matrix, []float64) {
	regret := Regret(m)
	return regret, Optimistic(regret)
}
