package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/talentwire/talentctl/config"
	"github.com/talentwire/talentctl/talentwire"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *talentwire.Client

	appVersion = "dev"
	buildTime  = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "talentctl",
	Short: "A CLI for the TalentWire resume parsing and matching API",
	Long: `talentctl parses resumes and job orders, manages searchable indexes,
and runs matching, searching and scoring against the TalentWire API.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build metadata injected by the linker.
func SetVersion(version, built string) {
	if version != "" {
		appVersion = version
	}
	if built != "" {
		buildTime = built
	}
	rootCmd.Version = appVersion
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	dataCenter, err := resolveDataCenter(cfg.TalentWire)
	if err != nil {
		return err
	}

	opts := []talentwire.Option{
		talentwire.WithUserAgent("talentctl/" + appVersion),
	}
	if cfg.TalentWire.Debug {
		opts = append(opts, talentwire.WithDebug(true))
	}

	client, err = talentwire.NewClient(cfg.TalentWire.AccountID, cfg.TalentWire.ServiceKey,
		dataCenter, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create TalentWire client: %w", err)
	}

	return nil
}

// resolveDataCenter maps the configured environment name to an API root
func resolveDataCenter(cfg config.TalentWireConfig) (talentwire.DataCenter, error) {
	switch cfg.DataCenter {
	case "us":
		return talentwire.DataCenterUS, nil
	case "eu":
		return talentwire.DataCenterEU, nil
	case "au":
		return talentwire.DataCenterAU, nil
	case "self-hosted":
		return talentwire.SelfHostedDataCenter(cfg.RootURL), nil
	default:
		return talentwire.DataCenter{}, fmt.Errorf("unknown data center: %s", cfg.DataCenter)
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Color only when writing to an actual terminal.
	useColor := cfg.Color &&
		(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints the version and build metadata
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("talentctl %s (built %s)\n", appVersion, buildTime)
	},
}

// reportAPIError prints the diagnostic details a typed API error carries.
func reportAPIError(err error) {
	apiErr, ok := talentwire.AsAPIError(err)
	if !ok {
		return
	}
	event := logger.Error().
		Int("status", apiErr.StatusCode).
		Str("code", apiErr.Code).
		Str("transaction_id", apiErr.TransactionID)
	if apiErr.RequestBody != "" {
		event = event.Str("request_body", apiErr.RequestBody)
	}
	event.Msg(apiErr.Message)
}
