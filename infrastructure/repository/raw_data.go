package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytics-forge-api/infrastructure/database"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/utils"
)

type RawDataRepository interface {
	Create(ctx context.Context, record *domain.RawDataRecord) error
}

type rawDataRepository struct {
	conn *database.Connection
}

func NewRawDataRepository(conn *database.Connection) RawDataRepository {
	return &rawDataRepository{
		conn: conn,
	}
}

// Create grava as linhas do CSV; ID e UploadedAt são preenchidos quando vazios
func (r *rawDataRepository) Create(ctx context.Context, record *domain.RawDataRecord) error {
	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID: %w", err)
		}
		record.ID = id
	}

	if record.UploadedAt.IsZero() {
		record.UploadedAt = time.Now().UTC()
	}

	rows, err := encodeJSON(record.Rows, record.Rows == nil)
	if err != nil {
		return fmt.Errorf("erro ao serializar linhas: %w", err)
	}

	query, args, err := squirrel.
		Insert(rawDataTable).
		Columns("id", "project_type", "project_name", "filename", "json_data", "uploaded_at").
		Values(record.ID, record.ProjectType, record.ProjectName, record.Filename, rows, record.UploadedAt).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return execError("inserir dados brutos", err)
	}

	return nil
}
