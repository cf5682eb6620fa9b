package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/analytics-forge-api/infrastructure/csvsource"
	"github.com/vfg2006/analytics-forge-api/infrastructure/integrator/chartengine"
	"github.com/vfg2006/analytics-forge-api/infrastructure/integrator/chartengine/chartengineclient"
	"github.com/vfg2006/analytics-forge-api/internal/config"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/aggregating"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/charting"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/classifying"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/normalizing"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/recommending"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type analyzeOptions struct {
	projectType string
	format      string
}

// analysisReport é o que o comando analyze imprime
type analysisReport struct {
	File           string                     `json:"file"`
	ProjectType    string                     `json:"projectType"`
	RowsProcessed  int                        `json:"rowsProcessed"`
	Classification domain.ColumnClassification `json:"classification"`
	Summary        domain.AggregateResult      `json:"summary"`
	Charts         []domain.ChartSpec          `json:"charts"`
	KPIs           *domain.KPIPayload          `json:"kpis"`
	Legacy         bool                        `json:"legacy"`
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <file.csv>",
		Short: "Roda o pipeline completo sobre um CSV local",
		Example: `  forgectl analyze vendas.csv
  forgectl analyze manutencao.csv --project-type maintenance --format json
  forgectl analyze vendas.csv --engine remote`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case formatTable, formatJSON, formatYAML:
			default:
				return fmt.Errorf("formato inválido %q: use table, json ou yaml", opts.format)
			}

			cfg, err := config.NewConfig()
			if err != nil {
				return errors.Wrap(err, "erro ao carregar configuração")
			}

			projectType := opts.projectType
			if projectType == "" {
				projectType = cfg.Upload.DefaultProjectType
			}

			report, err := analyzeFile(cmd.Context(), args[0], projectType, newRecommender(cfg), cfg)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), report, opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.projectType, "project-type", "p", "", "tipo de projeto (general, maintenance, retail...)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "formato de saída: table, json ou yaml")
	cmd.Flags().String("engine", "", "motor de gráficos: local ou remote (padrão ENGINE_MODE)")
	cmd.Flags().String("engine-url", "", "URL do motor remoto (padrão ENGINE_URL)")
	bindFlag(cmd, "ENGINE_MODE", "engine")
	bindFlag(cmd, "ENGINE_URL", "engine-url")

	return cmd
}

func newRecommender(cfg *config.Config) charting.Recommender {
	if cfg.Engine.Mode == config.EngineModeRemote {
		return chartengine.New(chartengineclient.NewClient(cfg))
	}
	return recommending.NewEngine()
}

func analyzeFile(ctx context.Context, path, projectType string, recommender charting.Recommender, cfg *config.Config) (*analysisReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir arquivo")
	}
	defer file.Close()

	return analyze(ctx, file, filepath.Base(path), projectType, recommender, cfg)
}

func analyze(ctx context.Context, r io.Reader, name, projectType string, recommender charting.Recommender, cfg *config.Config) (*analysisReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := csvsource.Read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", name)
	}

	cleaned := normalizing.Normalize(rows)
	classification := classifying.Classify(cleaned)
	aggregate := aggregating.Aggregate(cleaned, classification)

	builder := charting.NewBuilder(recommender, cfg.Engine.Timeout)
	built := builder.Build(ctx, cleaned, projectType, aggregate)

	return &analysisReport{
		File:           name,
		ProjectType:    projectType,
		RowsProcessed:  len(cleaned),
		Classification: classification,
		Summary:        aggregate,
		Charts:         built.Charts,
		KPIs:           built.KPIs,
		Legacy:         built.Charts == nil,
	}, nil
}
