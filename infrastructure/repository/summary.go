package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytics-forge-api/infrastructure/database"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/utils"
)

var summaryColumns = []string{
	"id",
	"project_type",
	"project_name",
	"summary_json",
	"category_json",
	"gender_json",
	"scatter_json",
	"kpi_json",
	"charts_json",
	"charts_version",
	"created_at",
	"updated_at",
}

type SummaryRepository interface {
	Create(ctx context.Context, record *domain.SummaryRecord) error
	GetByID(ctx context.Context, id string) (*domain.SummaryRecord, error)
	GetLatestByProjectType(ctx context.Context, projectType string) (*domain.SummaryRecord, error)
	ListLatest(ctx context.Context) ([]*domain.DashboardListItem, error)
	ListProjectTypes(ctx context.Context) ([]string, error)
	// ReplaceCharts só grava se charts_version ainda for expectedVersion
	ReplaceCharts(ctx context.Context, id string, charts []domain.ChartSpec, kpis *domain.KPIPayload, expectedVersion int) (bool, error)
}

type summaryRepository struct {
	conn *database.Connection
}

func NewSummaryRepository(conn *database.Connection) SummaryRepository {
	return &summaryRepository{
		conn: conn,
	}
}

func (r *summaryRepository) Create(ctx context.Context, record *domain.SummaryRecord) error {
	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID: %w", err)
		}
		record.ID = id
	}

	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = record.CreatedAt
	}

	values, err := encodeSummaryColumns(record)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert(summaryDataTable).
		Columns(summaryColumns...).
		Values(
			record.ID,
			record.ProjectType,
			record.ProjectName,
			values.monthly,
			values.category,
			values.gender,
			values.scatter,
			values.kpis,
			values.charts,
			record.ChartsVersion,
			record.CreatedAt,
			record.UpdatedAt,
		).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return execError("inserir resumo", err)
	}

	return nil
}

func (r *summaryRepository) GetByID(ctx context.Context, id string) (*domain.SummaryRecord, error) {
	return r.getOne(ctx, squirrel.Select(summaryColumns...).
		From(summaryDataTable).
		Where(squirrel.Eq{"id": id}))
}

func (r *summaryRepository) GetLatestByProjectType(ctx context.Context, projectType string) (*domain.SummaryRecord, error) {
	return r.getOne(ctx, squirrel.Select(summaryColumns...).
		From(summaryDataTable).
		Where(squirrel.Eq{"project_type": projectType}).
		OrderBy("created_at DESC").
		Limit(1))
}

func (r *summaryRepository) getOne(ctx context.Context, builder squirrel.SelectBuilder) (*domain.SummaryRecord, error) {
	query, args, err := builder.PlaceholderFormat(r.conn.Placeholder()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanSummary(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar resumo: %w", err)
	}

	return record, nil
}

// ListLatest devolve um item por (project_type, project_name), do mais recente
// para o mais antigo, apontando para o último resumo de cada par.
func (r *summaryRepository) ListLatest(ctx context.Context) ([]*domain.DashboardListItem, error) {
	query, args, err := squirrel.
		Select("id", "project_type", "project_name", "created_at").
		From(summaryDataTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	type dashboardKey struct {
		projectType string
		projectName string
		hasName     bool
	}

	seen := make(map[dashboardKey]struct{})
	items := make([]*domain.DashboardListItem, 0)

	for rows.Next() {
		var (
			id        string
			item      domain.DashboardListItem
			createdAt time.Time
		)

		if err := rows.Scan(&id, &item.ProjectType, &item.ProjectName, &createdAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear dashboard: %w", err)
		}

		key := dashboardKey{projectType: item.ProjectType}
		if item.ProjectName != nil {
			key.projectName = *item.ProjectName
			key.hasName = true
		}

		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		item.LatestID = id
		item.LatestCreatedAt = createdAt
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *summaryRepository) ListProjectTypes(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT project_type").
		From(summaryDataTable).
		OrderBy("project_type ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	projectTypes := make([]string, 0)
	for rows.Next() {
		var projectType string
		if err := rows.Scan(&projectType); err != nil {
			return nil, fmt.Errorf("erro ao escanear tipo de projeto: %w", err)
		}
		projectTypes = append(projectTypes, projectType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return projectTypes, nil
}

func (r *summaryRepository) ReplaceCharts(
	ctx context.Context,
	id string,
	charts []domain.ChartSpec,
	kpis *domain.KPIPayload,
	expectedVersion int,
) (bool, error) {
	chartsValue, err := encodeJSON(charts, charts == nil)
	if err != nil {
		return false, fmt.Errorf("erro ao serializar charts_json: %w", err)
	}

	kpisValue, err := encodeJSON(kpis, kpis == nil)
	if err != nil {
		return false, fmt.Errorf("erro ao serializar kpi_json: %w", err)
	}

	query, args, err := squirrel.
		Update(summaryDataTable).
		Set("charts_json", chartsValue).
		Set("kpi_json", kpisValue).
		Set("charts_version", squirrel.Expr("charts_version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, "charts_version": expectedVersion}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, execError("atualizar gráficos", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected == 1, nil
}

type summaryColumnValues struct {
	monthly  any
	category any
	gender   any
	scatter  any
	kpis     any
	charts   any
}

func encodeSummaryColumns(record *domain.SummaryRecord) (*summaryColumnValues, error) {
	var (
		values summaryColumnValues
		err    error
	)

	// summary_json é NOT NULL: lista vazia em vez de NULL
	monthly := record.Monthly
	if monthly == nil {
		monthly = []domain.MonthlyPoint{}
	}
	if values.monthly, err = encodeJSON(monthly, false); err != nil {
		return nil, fmt.Errorf("erro ao serializar summary_json: %w", err)
	}
	if values.category, err = encodeJSON(record.Category, record.Category == nil); err != nil {
		return nil, fmt.Errorf("erro ao serializar category_json: %w", err)
	}
	if values.gender, err = encodeJSON(record.Gender, record.Gender == nil); err != nil {
		return nil, fmt.Errorf("erro ao serializar gender_json: %w", err)
	}
	if values.scatter, err = encodeJSON(record.Scatter, record.Scatter == nil); err != nil {
		return nil, fmt.Errorf("erro ao serializar scatter_json: %w", err)
	}
	if values.kpis, err = encodeJSON(record.KPIs, record.KPIs == nil); err != nil {
		return nil, fmt.Errorf("erro ao serializar kpi_json: %w", err)
	}
	if values.charts, err = encodeJSON(record.Charts, record.Charts == nil); err != nil {
		return nil, fmt.Errorf("erro ao serializar charts_json: %w", err)
	}

	return &values, nil
}

func scanSummary(row *sql.Row) (*domain.SummaryRecord, error) {
	var (
		record                                    domain.SummaryRecord
		monthly, category, gender, scatter, kpis []byte
		charts                                    []byte
	)

	if err := row.Scan(
		&record.ID,
		&record.ProjectType,
		&record.ProjectName,
		&monthly,
		&category,
		&gender,
		&scatter,
		&kpis,
		&charts,
		&record.ChartsVersion,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}

	columns := []struct {
		name   string
		data   []byte
		target any
	}{
		{"summary_json", monthly, &record.Monthly},
		{"category_json", category, &record.Category},
		{"gender_json", gender, &record.Gender},
		{"scatter_json", scatter, &record.Scatter},
		{"charts_json", charts, &record.Charts},
	}

	for _, column := range columns {
		if err := decodeJSON(column.data, column.target); err != nil {
			return nil, fmt.Errorf("erro ao decodificar %s: %w", column.name, err)
		}
	}

	if len(kpis) > 0 && string(kpis) != "null" {
		record.KPIs = &domain.KPIPayload{}
		if err := record.KPIs.UnmarshalJSON(kpis); err != nil {
			return nil, fmt.Errorf("erro ao decodificar kpi_json: %w", err)
		}
	}

	return &record, nil
}
