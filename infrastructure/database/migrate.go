package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/vfg2006/analytics-forge-api/internal/config"
	"github.com/vfg2006/analytics-forge-api/pkg/log"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// LatestVersion indica que a migração deve ir até a última versão
const LatestVersion = -1

// Migrate aplica as migrações embutidas no banco configurado.
//   - targetVersion < 0 migra até a última versão
//   - targetVersion == 0 desfaz todas as migrações
//   - targetVersion > 0 migra até a versão informada
//
// A migração usa uma conexão própria, fechada ao final, para não prender
// conexões do pool da aplicação. Retorna a versão final do schema.
func Migrate(cfg config.Database, targetVersion int) (uint, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = cfg.BuildDSN()
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return 0, fmt.Errorf("erro ao abrir conexão de migração: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return 0, fmt.Errorf("erro ao conectar no banco para migração: %w", err)
	}
	defer func() { _ = db.Close() }()

	var driver migratedb.Driver
	switch cfg.Driver {
	case config.DriverSQLite:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		err = fmt.Errorf("driver sem suporte a migração: %s", cfg.Driver)
	}
	if err != nil {
		return 0, fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	migrationFS, err := fs.Sub(migrationsFS, "migrations/"+cfg.Driver)
	if err != nil {
		return 0, fmt.Errorf("erro ao acessar diretório de migrações: %w", err)
	}

	sourceDriver, err := iofs.New(migrationFS, ".")
	if err != nil {
		return 0, fmt.Errorf("erro ao criar fonte de migrações: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, cfg.Driver, driver)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar instância de migração: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.L.WithFields(log.Fields{
				"source_error":   srcErr,
				"database_error": dbErr,
			}).Warn("migrate: erro ao fechar migração")
		}
	}()

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("erro ao obter versão atual do schema: %w", err)
	}

	if dirty {
		return currentVersion, fmt.Errorf("schema em estado sujo na versão %d, corrija manualmente", currentVersion)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
	case targetVersion == 0:
		err = m.Down()
	default:
		err = m.Migrate(uint(targetVersion))
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.L.WithField("version", currentVersion).Debug("migrate: schema já está atualizado")
		return currentVersion, nil
	}
	if err != nil {
		return currentVersion, fmt.Errorf("erro ao migrar schema: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("erro ao obter versão do schema: %w", err)
	}

	log.L.WithFields(log.Fields{
		"from": currentVersion,
		"to":   newVersion,
	}).Info("migrate: schema migrado")

	return newVersion, nil
}
