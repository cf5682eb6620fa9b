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

type ProcessedDataRepository interface {
	Create(ctx context.Context, record *domain.ProcessedDataRecord) error
	GetLatestByProjectType(ctx context.Context, projectType string) (*domain.ProcessedDataRecord, error)
}

type processedDataRepository struct {
	conn *database.Connection
}

func NewProcessedDataRepository(conn *database.Connection) ProcessedDataRepository {
	return &processedDataRepository{
		conn: conn,
	}
}

func (r *processedDataRepository) Create(ctx context.Context, record *domain.ProcessedDataRecord) error {
	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID: %w", err)
		}
		record.ID = id
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	rows, err := encodeJSON(record.Rows, record.Rows == nil)
	if err != nil {
		return fmt.Errorf("erro ao serializar linhas: %w", err)
	}

	var sourceFileID any
	if record.SourceFileID != "" {
		sourceFileID = record.SourceFileID
	}

	query, args, err := squirrel.
		Insert(processedDataTable).
		Columns("id", "project_type", "project_name", "cleaned_json", "source_file_id", "created_at").
		Values(record.ID, record.ProjectType, record.ProjectName, rows, sourceFileID, record.CreatedAt).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return execError("inserir dados processados", err)
	}

	return nil
}

// GetLatestByProjectType retorna nil, nil quando não há dados para o tipo
func (r *processedDataRepository) GetLatestByProjectType(ctx context.Context, projectType string) (*domain.ProcessedDataRecord, error) {
	query, args, err := squirrel.
		Select("id", "project_type", "project_name", "cleaned_json", "source_file_id", "created_at").
		From(processedDataTable).
		Where(squirrel.Eq{"project_type": projectType}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		record       domain.ProcessedDataRecord
		rows         []byte
		sourceFileID sql.NullString
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.ProjectType,
		&record.ProjectName,
		&rows,
		&sourceFileID,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar dados processados: %w", err)
	}

	if err := decodeJSON(rows, &record.Rows); err != nil {
		return nil, fmt.Errorf("erro ao decodificar cleaned_json: %w", err)
	}
	record.SourceFileID = sourceFileID.String

	return &record, nil
}
