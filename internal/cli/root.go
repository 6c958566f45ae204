package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/nerrad567/plugctl/internal/infrastructure/config"
	"github.com/nerrad567/plugctl/internal/infrastructure/logging"
	"github.com/nerrad567/plugctl/internal/registry"
	"github.com/nerrad567/plugctl/internal/shelly"
)

// Exit codes for CLI commands.
// These provide semantic exit codes for scripting and automation.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (device unreachable, invalid arguments).
	ExitCodeError = 1
	// ExitCodeNotFound indicates the target or group does not exist.
	ExitCodeNotFound = 2
	// ExitCodeAmbiguous indicates a target resolved to other than exactly one device.
	ExitCodeAmbiguous = 3
	// ExitCodeCorrupt indicates the registry file could not be parsed.
	ExitCodeCorrupt = 4
)

// Persistent flag values, bound in init.
var (
	cfgFile      string
	logLevel     string
	outputFormat string
)

// appEnv holds the wired application dependencies for a single
// invocation. Built once in PersistentPreRunE so every subcommand
// shares the same config, logger, store, and device client.
type appEnv struct {
	cfg      *config.Config
	log      *logging.Logger
	store    *registry.Store
	resolver *registry.Resolver
	gateway  *shelly.Client
}

var env *appEnv

// rootCmd represents the base command for the plugctl application.
var rootCmd = &cobra.Command{
	Use:   "plugctl",
	Short: "Control Shelly Plug S devices on the local network",
	Long: `plugctl manages a local registry of Shelly Plug S smart relays and
drives them over their HTTP RPC API. Devices are registered by IP and
identified by their hardware id; aliases and named groups make targets
human-friendly.`,
	// SilenceUsage prevents Cobra from printing the usage message on
	// errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		log := logging.New(cfg.Logging, cmd.Root().Version)

		store := registry.NewStore(cfg.Registry.Path)
		store.SetLogger(log)

		resolver := registry.NewResolver()
		resolver.SetLogger(log)

		env = &appEnv{
			cfg:      cfg,
			log:      log,
			store:    store,
			resolver: resolver,
			gateway:  shelly.NewClient(cfg.GetDeviceTimeout()),
		}
		return nil
	},
}

// Execute is the main entry point for the CLI application.
// It runs the root command and translates handled errors into
// semantic exit codes. Called by main.main().
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`{{printf "plugctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	switch {
	case errors.Is(err, registry.ErrIntegrity):
		return ExitCodeCorrupt
	case errors.Is(err, registry.ErrAmbiguousTarget):
		return ExitCodeAmbiguous
	case errors.Is(err, registry.ErrTargetNotFound),
		errors.Is(err, registry.ErrGroupNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeError
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $XDG_CONFIG_HOME/plugctl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"override the configured log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json",
		"output format (json, table)")

	rootCmd.AddCommand(
		newAddCmd(),
		newRemoveCmd(),
		newRenameCmd(),
		newGroupCmd(),
		newOnCmd(),
		newOffCmd(),
		newToggleCmd(),
		newStatusCmd(),
		newLedCmd(),
		newListCmd(),
		newHistoryCmd(),
	)
}
