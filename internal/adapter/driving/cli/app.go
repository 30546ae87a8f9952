package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diillson/buildops-audit-go/internal/application/usecase"
	"github.com/diillson/buildops-audit-go/internal/domain/entity"
	"github.com/diillson/buildops-audit-go/internal/domain/repository"
	"github.com/diillson/buildops-audit-go/internal/shared/logging"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
	"github.com/diillson/buildops-audit-go/pkg/version"
)

// AuthFactory builds the token exchange client for a configuration.
type AuthFactory func(cfg *types.Config, httpClient *http.Client, logger *zap.Logger) repository.AuthRepository

// ResourceFactory builds the resource client bound to an authorized session.
type ResourceFactory func(session *entity.Session, cfg *types.Config, httpClient *http.Client, logger *zap.Logger) repository.ResourceRepository

// Dependencies reúne os adaptadores usados pela CLI.
type Dependencies struct {
	ConfigRepo   repository.ConfigRepository
	ExportRepo   repository.ExportRepository
	MapRepo      repository.MapRepository
	Console      types.ConsoleInterface
	Loggers      *logging.LoggerFactory
	NewAuth      AuthFactory
	NewResources ResourceFactory
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd *cobra.Command
	deps    Dependencies
	version string

	args    *types.CLIArgs
	session *entity.Session
	logger  *zap.Logger
	useCase *usecase.AuditUseCase
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, deps Dependencies) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		deps:    deps,
	}

	rootCmd := &cobra.Command{
		Use:               "buildops-audit",
		Short:             "BuildOps data-quality audit CLI",
		Version:           version.FormatVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.prepare,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "BuildOps Audit version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("env-file", ".env", "Path to a dotenv file with CLIENT_ID, CLIENT_SECRET and TENANT_ID")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report and map files (default: current directory)")
	flags.String("log-level", "", "Diagnostic log level: debug, info, warn, error (default: warn)")
	flags.String("log-format", "", "Diagnostic log format: structured or console (default: console)")
	flags.Bool("plain", false, "Print reports as plain text lines instead of tables")

	rootCmd.AddCommand(
		app.reportCommand("customers-no-properties", "List customers that have no properties", app.customersNoProperties),
		app.reportCommand("customers-with-properties", "List customers that have at least one property", app.customersWithProperties),
		app.propertiesManyAddressesCommand(),
		app.reportCommand("asset-make-counts", "Count assets per make", app.assetMakeCounts),
		app.reportCommand("asset-makes", "List the asset makes of the tenant", app.assetMakes),
		app.reportCommand("vendor-duplicate", "List vendor names used by more than one vendor", app.vendorDuplicates),
		app.showMapCommand(),
		app.reportCommand("full-audit", "Run every audit and print all reports", app.fullAudit),
	)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application. An interrupt cancels every request in flight.
func (app *CLIApp) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.rootCmd.ExecuteContext(ctx)
}

// SetArgs replaces os.Args, used by tests.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// auditAnnotation marks the commands that need an authorized session.
const auditAnnotation = "buildops-audit/audit"

func (app *CLIApp) reportCommand(use, short string, run func(ctx context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:         use,
		Short:       short,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{auditAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

func (app *CLIApp) propertiesManyAddressesCommand() *cobra.Command {
	cmd := app.reportCommand("properties-many-addresses", "List properties with more addresses than the threshold", app.propertiesManyAddresses)
	cmd.Flags().Int("threshold", types.DefaultManyAddressesThreshold, "Report properties with more addresses than this")
	return cmd
}

func (app *CLIApp) showMapCommand() *cobra.Command {
	cmd := app.reportCommand("show-map", "Write an HTML map of the properties in a state", app.showMap)
	cmd.Flags().String("state", "", "State code, e.g. TX")
	_ = cmd.MarkFlagRequired("state")
	return cmd
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func parseArgs(cmd *cobra.Command) *types.CLIArgs {
	flags := cmd.Flags()
	args := &types.CLIArgs{}
	args.ConfigFile, _ = flags.GetString("config-file")
	args.EnvFile, _ = flags.GetString("env-file")
	args.ReportName, _ = flags.GetString("report-name")
	args.ReportType, _ = flags.GetStringSlice("report-type")
	args.Dir, _ = flags.GetString("dir")
	args.LogLevel, _ = flags.GetString("log-level")
	args.LogFormat, _ = flags.GetString("log-format")
	args.Plain, _ = flags.GetBool("plain")

	if flags.Lookup("threshold") != nil && flags.Changed("threshold") {
		threshold, _ := flags.GetInt("threshold")
		args.Threshold = &threshold
	}
	if flags.Lookup("state") != nil {
		args.State, _ = flags.GetString("state")
	}
	return args
}

// mergeConfig aplica os valores do arquivo de configuração às flags não informadas.
func mergeConfig(cmd *cobra.Command, args *types.CLIArgs, cfg *types.Config) error {
	flags := cmd.Flags()
	if !flags.Changed("report-name") && cfg.ReportName != "" {
		args.ReportName = cfg.ReportName
	}
	if !flags.Changed("report-type") && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if !flags.Changed("dir") && cfg.Dir != "" {
		args.Dir = cfg.Dir
	}
	if args.Threshold == nil {
		threshold := cfg.AddressThreshold()
		args.Threshold = &threshold
	}

	// Set default directory to current working directory if not specified
	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		args.Dir = cwd
		return nil
	}
	absDir, err := filepath.Abs(args.Dir)
	if err != nil {
		return err
	}
	args.Dir = absDir
	return nil
}

// prepare runs before every audit command: it loads configuration and
// credentials, authorizes once and builds the use case. Other commands, such
// as help and completion, skip it.
func (app *CLIApp) prepare(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[auditAnnotation] != "true" {
		return nil
	}
	// cobra validates required flags only after the pre-run hooks.
	if err := cmd.ValidateRequiredFlags(); err != nil {
		return err
	}

	args := parseArgs(cmd)

	cfg, err := app.deps.ConfigRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	cfg = cfg.WithDefaults()
	if err := mergeConfig(cmd, args, cfg); err != nil {
		return err
	}

	logger, err := app.deps.Loggers.CreateLogger(logging.LogLevel(args.LogLevel), logging.LogFormat(args.LogFormat))
	if err != nil {
		return err
	}
	app.logger = logger

	if !args.Plain {
		displayWelcomeBanner()
		go version.CheckLatestVersion(cmd.Context(), app.version, app.deps.Console)
	}

	creds, err := app.deps.ConfigRepo.LoadCredentials(args.EnvFile)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second}
	session, err := app.deps.NewAuth(cfg, httpClient, logger).Authorize(cmd.Context(), creds)
	if err != nil {
		return err
	}
	logger.Info("authorized", zap.String("tenant_id", session.TenantID), zap.Int("expires_in", session.ExpiresIn))

	resources := app.deps.NewResources(session, cfg, httpClient, logger)
	app.args = args
	app.session = session
	app.useCase = usecase.NewAuditUseCase(resources, app.deps.ExportRepo, app.deps.MapRepo, app.deps.Console, logger, cfg, usecase.NewRunCache())
	return nil
}

func (app *CLIApp) customersNoProperties(ctx context.Context) error {
	return app.useCase.RunCustomersWithoutProperties(ctx, app.args)
}

func (app *CLIApp) customersWithProperties(ctx context.Context) error {
	return app.useCase.RunCustomersWithProperties(ctx, app.args)
}

func (app *CLIApp) propertiesManyAddresses(ctx context.Context) error {
	return app.useCase.RunPropertiesWithManyAddresses(ctx, app.args)
}

func (app *CLIApp) assetMakeCounts(ctx context.Context) error {
	return app.useCase.RunAssetMakeCounts(ctx, app.args)
}

func (app *CLIApp) assetMakes(ctx context.Context) error {
	return app.useCase.RunAssetMakes(ctx, app.args)
}

func (app *CLIApp) vendorDuplicates(ctx context.Context) error {
	return app.useCase.RunVendorDuplicates(ctx, app.args)
}

func (app *CLIApp) showMap(ctx context.Context) error {
	return app.useCase.RunShowMap(ctx, app.args)
}

func (app *CLIApp) fullAudit(ctx context.Context) error {
	return app.useCase.RunFullAudit(ctx, app.session.TenantID, app.args)
}
