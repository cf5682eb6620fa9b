package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "forgectl",
		Short:         "Pipeline de analytics de CSV pela linha de comando",
		Long:          `forgectl normaliza, classifica e agrega um CSV localmente, gera os gráficos do dashboard e administra o schema do banco.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "habilita logs de debug")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	return rootCmd
}

// Execute é o ponto de entrada chamado por main
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, "✗ Erro:", err)
		os.Exit(1)
	}
}

func configureLogger(debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.WarnLevel)
}

// bindFlag liga uma flag à chave de configuração lida por config.NewConfig
func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("flag %s inexistente: %v", flag, err))
	}
}
