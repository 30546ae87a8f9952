package main

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/diillson/buildops-audit-go/internal/adapter/driven/auth"
	"github.com/diillson/buildops-audit-go/internal/adapter/driven/buildops"
	"github.com/diillson/buildops-audit-go/internal/adapter/driven/config"
	"github.com/diillson/buildops-audit-go/internal/adapter/driven/export"
	"github.com/diillson/buildops-audit-go/internal/adapter/driven/geomap"
	"github.com/diillson/buildops-audit-go/internal/adapter/driving/cli"
	"github.com/diillson/buildops-audit-go/internal/domain/entity"
	"github.com/diillson/buildops-audit-go/internal/domain/repository"
	"github.com/diillson/buildops-audit-go/internal/shared/logging"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
	"github.com/diillson/buildops-audit-go/pkg/console"
	"github.com/diillson/buildops-audit-go/pkg/version"
)

func main() {
	// Inicializa os repositórios
	deps := cli.Dependencies{
		ConfigRepo: config.NewConfigRepository(),
		ExportRepo: export.NewExportRepository(),
		MapRepo:    geomap.NewMapRepository(),
		Console:    console.NewConsole(),
		Loggers:    logging.NewLoggerFactory(),
		NewAuth: func(cfg *types.Config, httpClient *http.Client, logger *zap.Logger) repository.AuthRepository {
			return auth.NewAuthRepository(cfg.AuthURL, httpClient, logger)
		},
		NewResources: func(session *entity.Session, cfg *types.Config, httpClient *http.Client, logger *zap.Logger) repository.ResourceRepository {
			return buildops.NewResourceRepository(session, buildops.Options{
				BaseURL:           cfg.APIBaseURL,
				HTTPClient:        httpClient,
				RequestsPerSecond: cfg.RequestsPerSecond,
				Logger:            logger,
			})
		},
	}

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, deps)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
