package rendering

import "github.com/vfg2006/analytics-forge-api/internal/domain"

const (
	wideGridColumns    = 6
	defaultGridColumns = 2
)

// wideLayoutTypes usam a grade de 6 colunas; a comparação é exata
var wideLayoutTypes = map[string]struct{}{
	"enterprise": {},
	"retail":     {},
	"emission":   {},
}

// Slot é a posição de um gráfico na grade
type Slot struct {
	Span    int  `json:"span"`
	Compact bool `json:"compact"`
}

type Layout struct {
	Columns int    `json:"columns"`
	Slots   []Slot `json:"slots"`
}

// LayoutFor distribui os gráficos na grade do tipo de projeto. A ordem dos
// gráficos importa: o primeiro ocupa a maior área.
func LayoutFor(projectType string, charts []domain.ChartSpec) Layout {
	if _, wide := wideLayoutTypes[projectType]; !wide {
		return DefaultLayout(len(charts))
	}

	layout := Layout{Columns: wideGridColumns, Slots: make([]Slot, len(charts))}
	for i, chart := range charts {
		switch i {
		case 0:
			layout.Slots[i] = Slot{Span: 4}
		case 1:
			layout.Slots[i] = Slot{Span: 2, Compact: chart.Type == domain.ChartPie}
		default:
			layout.Slots[i] = Slot{Span: 3}
		}
	}
	return layout
}

// DefaultLayout é a grade de 2 colunas com um gráfico por coluna
func DefaultLayout(n int) Layout {
	layout := Layout{Columns: defaultGridColumns, Slots: make([]Slot, n)}
	for i := range layout.Slots {
		layout.Slots[i] = Slot{Span: 1}
	}
	return layout
}
