// Package rendering transforma ChartSpecs em visualizações prontas para
// desenhar e monta o dashboard com o layout do tipo de projeto.
package rendering

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/utils"
)

const (
	NoDistributionData = "No distribution data available."

	lineThinningThreshold = 15
	lineRotateThreshold   = 12
	lineTicksTarget       = 12
	rotatedLabelAngle     = -45
	rotatedBottomMargin   = 70
	defaultBottomMargin   = 50
	tooltipDecimals       = 2

	pieOuterRadius        = 150
	compactPieOuterRadius = 130

	radialInnerRadius = "10%"
	radialOuterRadius = "80%"
)

// Options ajusta a renderização conforme a posição no layout
type Options struct {
	Compact bool
}

// Render é puro: não falha e não altera o spec. Tipos desconhecidos viram Unsupported.
func Render(spec domain.ChartSpec, opts Options) Visualization {
	v := Visualization{
		Type:        spec.Type,
		Variant:     VariantChart,
		Title:       utils.FormatTitle(spec.Title),
		Description: utils.FormatTitle(spec.Description),
	}

	switch spec.Type {
	case domain.ChartLine:
		v.Body = renderLine(spec)
	case domain.ChartArea:
		v.Body = renderArea(spec)
	case domain.ChartBar:
		v.Body = renderBar(spec)
	case domain.ChartScatter:
		v.Body = renderScatter(spec)
	case domain.ChartHistogram:
		v.Body = HistogramBody{Bins: records(spec.Data), CategoryGap: 0}
	case domain.ChartBoxPlot:
		if !spec.HasData() {
			v.Variant = VariantMessage
			v.Body = Message{Text: NoDistributionData}
			return v
		}
		v.Body = renderBoxPlot(spec)
	case domain.ChartTreemap:
		v.Body = renderTreemap(spec)
	case domain.ChartPie:
		v.Body = renderPie(spec, opts)
	case domain.ChartRadar:
		v.Body = renderRadar(spec)
	case domain.ChartFunnel:
		v.Body = FunnelBody{ValueKey: spec.Y, LabelKey: spec.X, Stages: records(spec.Data)}
	case domain.ChartRadialBar:
		v.Body = RadialBarBody{
			ValueKey:    spec.Y,
			InnerRadius: radialInnerRadius,
			OuterRadius: radialOuterRadius,
			Points:      records(spec.Data),
		}
	default:
		v.Variant = VariantUnsupported
		v.Body = Unsupported{Text: fmt.Sprintf("Unsupported chart type: %s", spec.Type)}
	}

	return v
}

func records(data []domain.Record) []domain.Record {
	if data == nil {
		return []domain.Record{}
	}
	return data
}

// LineTicks calcula o intervalo entre rótulos do eixo x e se eles devem ser rotacionados
func LineTicks(points int) (interval int, rotate bool) {
	if points > lineThinningThreshold {
		interval = max(0, points/lineTicksTarget-1)
	}
	return interval, points > lineRotateThreshold
}

func renderLine(spec domain.ChartSpec) LineBody {
	interval, rotate := LineTicks(len(spec.Data))

	body := LineBody{
		XKey:            spec.X,
		YKey:            spec.Y,
		Stroke:          primaryColor,
		Points:          records(spec.Data),
		TickInterval:    interval,
		BottomMargin:    defaultBottomMargin,
		TooltipDecimals: tooltipDecimals,
	}
	if rotate {
		body.LabelAngle = rotatedLabelAngle
		body.BottomMargin = rotatedBottomMargin
	}
	return body
}

func renderArea(spec domain.ChartSpec) AreaBody {
	areas := []AreaSeries{{Key: spec.Y, Stroke: areaColor}}
	if spec.Y2 != "" {
		areas = append(areas, AreaSeries{Key: spec.Y2, Stroke: secondaryColor})
	}
	return AreaBody{XKey: spec.X, Areas: areas, Points: records(spec.Data)}
}

func renderBar(spec domain.ChartSpec) BarBody {
	body := BarBody{XKey: spec.X, Points: records(spec.Data)}

	if len(spec.Series) == 0 {
		body.Bars = []BarSeries{{Key: spec.Y, Name: spec.Y, Color: primaryColor}}
		return body
	}

	for i, s := range spec.Series {
		body.Bars = append(body.Bars, BarSeries{Key: s.DataKey, Name: s.Name, Color: colorOr(s.Fill, i)})
	}
	return body
}

func renderScatter(spec domain.ChartSpec) ScatterBody {
	body := ScatterBody{XKey: spec.X, YKey: spec.Y}

	if len(spec.Series) == 0 {
		body.Series = []ScatterSeries{{Name: "Data Points", Color: primaryColor, Points: records(spec.Data)}}
		return body
	}

	for i, s := range spec.Series {
		body.Series = append(body.Series, ScatterSeries{Name: s.Name, Color: colorOr(s.Fill, i), Points: records(s.Data)})
	}
	return body
}

// BoxFromRecord decompõe um registro em segmentos empilháveis, nunca negativos
func BoxFromRecord(record domain.Record) Box {
	minimum := toNumber(record["min"])
	q1 := toNumber(record["q1"])
	q3 := toNumber(record["q3"])
	maximum := toNumber(record["max"])

	return Box{
		Category:     record["category"],
		Min:          minimum,
		Q1:           q1,
		Median:       toNumber(record["median"]),
		Q3:           q3,
		Max:          maximum,
		LowerWhisker: math.Max(0, q1-minimum),
		IQR:          math.Max(0, q3-q1),
		UpperWhisker: math.Max(0, maximum-q3),
	}
}

func renderBoxPlot(spec domain.ChartSpec) BoxPlotBody {
	boxes := make([]Box, 0, len(spec.Data))
	for _, record := range spec.Data {
		boxes = append(boxes, BoxFromRecord(record))
	}
	return BoxPlotBody{Boxes: boxes, BoxColor: primaryColor, MedianColor: medianColor}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func renderTreemap(spec domain.ChartSpec) TreemapBody {
	nameKey := firstNonEmpty(spec.NameKey, spec.X)
	valueKey := firstNonEmpty(spec.DataKey, spec.Y)

	items := make([]RankedItem, 0, len(spec.Data))
	for i, record := range spec.Data {
		items = append(items, RankedItem{
			Name:  record[nameKey],
			Value: toNumber(record[valueKey]),
			Color: Palette(i),
		})
	}
	return TreemapBody{NameKey: nameKey, ValueKey: valueKey, Items: items}
}

func renderPie(spec domain.ChartSpec, opts Options) PieBody {
	nameKey := firstNonEmpty(spec.NameKey, spec.X, "name")
	valueKey := firstNonEmpty(spec.DataKey, spec.Y, "value")

	slices := make([]Slice, 0, len(spec.Data))
	for i, record := range spec.Data {
		slices = append(slices, Slice{
			Name:  record[nameKey],
			Value: toNumber(record[valueKey]),
			Color: Palette(i),
		})
	}

	radius := pieOuterRadius
	if opts.Compact {
		radius = compactPieOuterRadius
	}

	return PieBody{
		NameKey:     nameKey,
		ValueKey:    valueKey,
		Slices:      slices,
		OuterRadius: radius,
		Compact:     opts.Compact,
	}
}

func renderRadar(spec domain.ChartSpec) RadarBody {
	body := RadarBody{AngleKey: spec.X, Points: records(spec.Data)}

	if len(spec.Series) == 0 {
		body.Series = []RadarSeries{{Key: spec.Y, Name: spec.Y, Stroke: primaryColor, Fill: primaryColor}}
		return body
	}

	for i, s := range spec.Series {
		body.Series = append(body.Series, RadarSeries{
			Key:    s.DataKey,
			Name:   s.Name,
			Stroke: colorOr(s.Stroke, i),
			Fill:   colorOr(s.Fill, i),
		})
	}
	return body
}

// toNumber converte como o Number() do navegador, mas valores inválidos viram 0
func toNumber(raw any) float64 {
	var f float64
	switch t := raw.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case domain.Value:
		f = t.FloatOrZero()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
