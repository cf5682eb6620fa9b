package recommending

import (
	"fmt"
	"strings"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
)

// RecordCountColumn é a coluna virtual com valor 1 em todas as linhas
const RecordCountColumn = "Record Count"

// frame é a visão colunar do dataset usada pelo motor
type frame struct {
	columns []string
	cells   map[string][]domain.Value
	rows    int
}

// newFrame monta as colunas a partir de todas as linhas. Nomes são aparados
// e repetidos recebem sufixo (_2, _3...).
func newFrame(rows domain.Dataset) *frame {
	f := &frame{
		cells: make(map[string][]domain.Value),
		rows:  len(rows),
	}

	renamed := make(map[string]string)
	seen := make(map[string]int)

	for _, row := range rows {
		for _, key := range row.Keys() {
			if _, ok := renamed[key]; ok {
				continue
			}

			base := strings.TrimSpace(key)
			seen[base]++
			name := base
			if seen[base] > 1 {
				name = fmt.Sprintf("%s_%d", base, seen[base])
			}

			renamed[key] = name
			f.columns = append(f.columns, name)
			f.cells[name] = make([]domain.Value, len(rows))
		}
	}

	for i, row := range rows {
		for _, key := range row.Keys() {
			f.cells[renamed[key]][i] = row.Get(key)
		}
	}

	if _, ok := f.cells[RecordCountColumn]; !ok {
		counts := make([]domain.Value, len(rows))
		for i := range counts {
			counts[i] = domain.Number(1)
		}
		f.columns = append(f.columns, RecordCountColumn)
		f.cells[RecordCountColumn] = counts
	}

	return f
}

func (f *frame) has(column string) bool {
	_, ok := f.cells[column]
	return ok
}

func (f *frame) column(column string) []domain.Value {
	return f.cells[column]
}

// numbers devolve os valores numéricos da coluna, ignorando nulos e textos
func (f *frame) numbers(column string) []float64 {
	values := f.cells[column]
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := v.Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// uniqueCount conta valores distintos não nulos
func (f *frame) uniqueCount(column string) int {
	seen := make(map[domain.Value]struct{})
	for _, v := range f.cells[column] {
		if v.IsNull() {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}
