package qcircuit

/*
collapse picks an outcome index from a probability distribution using one
uniform sample r. Outcomes are walked in index order against the running sum.
When floating accumulation leaves the total slightly under one and r lands in
that gap, the last outcome with non-zero weight is chosen.
*/
func collapse(probs []float64, r float64) int {
	var cumulative float64
	last := len(probs) - 1

	for i, p := range probs {
		if p > 0 {
			last = i
		}

		cumulative += p
		if r < cumulative {
			return i
		}
	}

	return last
}
