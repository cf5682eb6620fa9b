package main

import (
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/utils"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeReport(w io.Writer, report *analysisReport, format string) error {
	switch format {
	case formatJSON:
		out, err := utils.PrettyJson(report)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case formatYAML:
		return writeYAML(w, report)
	default:
		return writeTables(w, report)
	}
}

// writeYAML passa pelo JSON para respeitar os serializadores do domínio
// (Value, Row e KPIPayload) e preservar a ordem das colunas.
func writeYAML(w io.Writer, report *analysisReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	resetStyle(&node)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&node); err != nil {
		return err
	}
	return encoder.Close()
}

func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}

func writeTables(w io.Writer, report *analysisReport) error {
	headingColor.Fprintf(w, "%s (%s): %d linhas processadas\n", report.File, report.ProjectType, report.RowsProcessed)
	if report.Legacy {
		warnColor.Fprintln(w, "⚠ motor de gráficos indisponível, usando gráficos legados")
	}

	fmt.Fprintln(w)
	headingColor.Fprintln(w, "KPIs")
	if err := renderTable(w, []string{"KPI", "Valor"}, kpiRows(report)); err != nil {
		return err
	}

	fmt.Fprintln(w)
	headingColor.Fprintln(w, "Tendência mensal")
	monthly := make([][]string, 0, len(report.Summary.Monthly))
	for _, point := range report.Summary.Monthly {
		monthly = append(monthly, []string{point.Month, formatNumber(point.Value)})
	}
	if err := renderTable(w, []string{"Mês", "Valor"}, monthly); err != nil {
		return err
	}

	if len(report.Summary.Category) > 0 {
		fmt.Fprintln(w)
		headingColor.Fprintln(w, "Categorias")
		if err := renderTable(w, []string{"Categoria", "Valor"}, namedRows(report.Summary.Category)); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	headingColor.Fprintln(w, "Gráficos")
	charts := make([][]string, 0, len(report.Charts))
	for i, chart := range report.Charts {
		charts = append(charts, []string{
			strconv.Itoa(i + 1),
			string(chart.Type),
			chart.Title,
			strconv.Itoa(len(chart.Data)),
		})
	}
	return renderTable(w, []string{"#", "Tipo", "Título", "Pontos"}, charts)
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func kpiRows(report *analysisReport) [][]string {
	if report.KPIs == nil {
		return [][]string{}
	}

	if report.KPIs.IsLabeled() {
		rows := make([][]string, 0, len(report.KPIs.Labeled))
		for _, kpi := range report.KPIs.Labeled {
			rows = append(rows, []string{kpi.Label, formatKPIValue(kpi.Value)})
		}
		return rows
	}

	summary := report.KPIs.Summary
	if summary == nil {
		return [][]string{}
	}

	return [][]string{
		{"Total " + summary.PrimaryMetric, formatNumber(summary.TotalRevenue)},
		{"Crescimento", formatNumber(summary.Growth) + "%"},
		{"Categoria", summary.CategoryMetric},
	}
}

func namedRows(values []domain.NamedValue) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{v.Name, formatNumber(v.Value)})
	}
	return rows
}

func formatKPIValue(value any) string {
	switch v := value.(type) {
	case float64:
		return formatNumber(v)
	case nil:
		return "-"
	default:
		return fmt.Sprint(v)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
