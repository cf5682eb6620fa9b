package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/analytics-forge-api/infrastructure/database"
	"github.com/vfg2006/analytics-forge-api/internal/config"
)

func newMigrateCmd() *cobra.Command {
	var targetVersion int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações embutidas no banco configurado",
		Long: `Aplica as migrações do driver configurado em DATABASE_DRIVER.
Sem --version migra até a última versão; --version 0 desfaz todas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return errors.Wrap(err, "erro ao carregar configuração")
			}

			version, err := database.Migrate(cfg.Database, targetVersion)
			if err != nil {
				return err
			}

			headingColor.Fprintf(cmd.OutOrStdout(), "✓ schema %s na versão %d\n", cfg.Database.Driver, version)
			return nil
		},
	}

	cmd.Flags().IntVar(&targetVersion, "version", database.LatestVersion, "versão alvo do schema (-1 para a última)")
	cmd.Flags().String("driver", "", "driver do banco: postgres ou sqlite (padrão DATABASE_DRIVER)")
	cmd.Flags().String("database-url", "", "endereço do banco ou caminho do arquivo sqlite (padrão DATABASE_URL)")
	bindFlag(cmd, "DATABASE_DRIVER", "driver")
	bindFlag(cmd, "DATABASE_URL", "database-url")

	return cmd
}
