package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-forge-api/infrastructure/database"
	"github.com/vfg2006/analytics-forge-api/infrastructure/integrator/chartengine"
	"github.com/vfg2006/analytics-forge-api/infrastructure/integrator/chartengine/chartengineclient"
	"github.com/vfg2006/analytics-forge-api/infrastructure/repository"
	"github.com/vfg2006/analytics-forge-api/internal/api"
	"github.com/vfg2006/analytics-forge-api/internal/config"
	"github.com/vfg2006/analytics-forge-api/internal/scheduler"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/authenticating"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/charting"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/recommending"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.AutoMigrate {
		version, err := database.Migrate(cfg.Database, database.LatestVersion)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.WithField("version", version).Info("Schema do banco atualizado")
	}

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	rawRepo := repository.NewRawDataRepository(conn)
	processedRepo := repository.NewProcessedDataRepository(conn)
	summaryRepo := repository.NewSummaryRepository(conn)

	builder := charting.NewBuilder(newRecommender(cfg), cfg.Engine.Timeout)

	dashboardService := dashboarding.NewService(
		rawRepo,
		processedRepo,
		summaryRepo,
		builder,
		cfg.Upload.DefaultProjectType,
	)

	authenticator := authenticating.NewService(cfg)

	chartRepairService := scheduler.NewChartRepairService(dashboardService, cfg)
	if err := chartRepairService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reparo de gráficos")
	} else {
		logrus.Info("Agendador de reparo de gráficos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		authenticator,
		conn,
		chartRepairService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newRecommender escolhe o motor de gráficos conforme ENGINE_MODE
func newRecommender(cfg *config.Config) charting.Recommender {
	if cfg.Engine.Mode == config.EngineModeLocal {
		logrus.Info("Usando motor de gráficos local")
		return recommending.NewEngine()
	}

	logrus.WithField("url", cfg.Engine.URL).Info("Usando motor de gráficos remoto")
	return chartengine.New(chartengineclient.NewClient(cfg))
}

// dbconn cria uma conexão com o banco de dados
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
