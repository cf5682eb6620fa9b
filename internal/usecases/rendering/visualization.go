package rendering

import "github.com/vfg2006/analytics-forge-api/internal/domain"

const (
	VariantChart       = "chart"
	VariantMessage     = "message"
	VariantUnsupported = "unsupported"
)

// Visualization é o gráfico pronto para desenhar. Body é um dos tipos
// concretos deste arquivo.
type Visualization struct {
	Type        domain.ChartType `json:"type"`
	Variant     string           `json:"variant"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Body        Body             `json:"body"`
}

// Body é o conteúdo específico de cada tipo de gráfico
type Body interface {
	body()
}

type LineBody struct {
	XKey            string          `json:"xKey"`
	YKey            string          `json:"yKey"`
	Stroke          string          `json:"stroke"`
	Points          []domain.Record `json:"points"`
	TickInterval    int             `json:"tickInterval"`
	LabelAngle      int             `json:"labelAngle"`
	BottomMargin    int             `json:"bottomMargin"`
	TooltipDecimals int             `json:"tooltipDecimals"`
}

type AreaSeries struct {
	Key    string `json:"key"`
	Stroke string `json:"stroke"`
}

type AreaBody struct {
	XKey   string          `json:"xKey"`
	Areas  []AreaSeries    `json:"areas"`
	Points []domain.Record `json:"points"`
}

type BarSeries struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type BarBody struct {
	XKey   string          `json:"xKey"`
	Bars   []BarSeries     `json:"bars"`
	Points []domain.Record `json:"points"`
}

type ScatterSeries struct {
	Name   string          `json:"name"`
	Color  string          `json:"color"`
	Points []domain.Record `json:"points"`
}

type ScatterBody struct {
	XKey   string          `json:"xKey"`
	YKey   string          `json:"yKey"`
	Series []ScatterSeries `json:"series"`
}

type HistogramBody struct {
	Bins        []domain.Record `json:"bins"`
	CategoryGap int             `json:"categoryGap"`
}

// Box é uma caixa do boxPlot já decomposta em segmentos empilháveis:
// base invisível (Min), bigode inferior, IQR e bigode superior.
type Box struct {
	Category     any     `json:"category"`
	Min          float64 `json:"min"`
	Q1           float64 `json:"q1"`
	Median       float64 `json:"median"`
	Q3           float64 `json:"q3"`
	Max          float64 `json:"max"`
	LowerWhisker float64 `json:"lowerWhisker"`
	IQR          float64 `json:"iqr"`
	UpperWhisker float64 `json:"upperWhisker"`
}

type BoxPlotBody struct {
	Boxes       []Box  `json:"boxes"`
	BoxColor    string `json:"boxColor"`
	MedianColor string `json:"medianColor"`
}

// RankedItem é uma barra horizontal da lista ranqueada do treemap
type RankedItem struct {
	Name  any     `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type TreemapBody struct {
	NameKey  string       `json:"nameKey"`
	ValueKey string       `json:"valueKey"`
	Items    []RankedItem `json:"items"`
}

type Slice struct {
	Name  any     `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type PieBody struct {
	NameKey     string  `json:"nameKey"`
	ValueKey    string  `json:"valueKey"`
	Slices      []Slice `json:"slices"`
	OuterRadius int     `json:"outerRadius"`
	Compact     bool    `json:"compact"`
}

type RadarSeries struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Stroke string `json:"stroke"`
	Fill   string `json:"fill"`
}

type RadarBody struct {
	AngleKey string          `json:"angleKey"`
	Series   []RadarSeries   `json:"series"`
	Points   []domain.Record `json:"points"`
}

type FunnelBody struct {
	ValueKey string          `json:"valueKey"`
	LabelKey string          `json:"labelKey"`
	Stages   []domain.Record `json:"stages"`
}

type RadialBarBody struct {
	ValueKey    string          `json:"valueKey"`
	InnerRadius string          `json:"innerRadius"`
	OuterRadius string          `json:"outerRadius"`
	Points      []domain.Record `json:"points"`
}

// Message substitui o gráfico por um aviso (ex: boxPlot sem dados)
type Message struct {
	Text string `json:"text"`
}

// Unsupported é renderizado para tipos fora do conjunto conhecido
type Unsupported struct {
	Text string `json:"text"`
}

func (LineBody) body()      {}
func (AreaBody) body()      {}
func (BarBody) body()       {}
func (ScatterBody) body()   {}
func (HistogramBody) body() {}
func (BoxPlotBody) body()   {}
func (TreemapBody) body()   {}
func (PieBody) body()       {}
func (RadarBody) body()     {}
func (FunnelBody) body()    {}
func (RadialBarBody) body() {}
func (Message) body()       {}
func (Unsupported) body()   {}
