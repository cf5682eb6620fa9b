package recommending

import (
	"fmt"
	"math"
	"sort"
)

const histogramBins = 10

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// mean devolve false para lista vazia
func mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return sum(values) / float64(len(values)), true
}

func minMax(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// quantile usa interpolação linear entre as posições vizinhas (q*(n-1)).
// sorted precisa estar ordenada e não vazia.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	frac := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

// fiveNumbers calcula min, q1, mediana, q3 e max
func fiveNumbers(values []float64) [5]float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return [5]float64{
		sorted[0],
		quantile(sorted, 0.25),
		quantile(sorted, 0.5),
		quantile(sorted, 0.75),
		sorted[len(sorted)-1],
	}
}

type histogramBin struct {
	Range string
	Count int
}

// histogram divide [min, max] em bins de mesma largura; o último é fechado
// dos dois lados. Precisa de pelo menos dois valores distintos.
func histogram(values []float64, bins int) []histogramBin {
	lo, hi := minMax(values)
	if len(values) == 0 || lo == hi {
		return nil
	}

	edges := make([]float64, bins+1)
	step := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + step*float64(i)
	}
	edges[bins] = hi

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / (hi - lo) * float64(bins))
		if idx >= bins {
			idx = bins - 1
		}
		// correção de borda por erro de ponto flutuante
		if idx > 0 && v < edges[idx] {
			idx--
		} else if idx < bins-1 && v >= edges[idx+1] {
			idx++
		}
		counts[idx]++
	}

	out := make([]histogramBin, bins)
	for i := range out {
		out[i] = histogramBin{
			Range: fmt.Sprintf("%.0f-%.0f", edges[i], edges[i+1]),
			Count: counts[i],
		}
	}
	return out
}
