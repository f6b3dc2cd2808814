package cli

import (
	"time"

	"github.com/spf13/cobra"

	"gink/src/internal/common"
	versionpkg "gink/src/internal/version"
)

// CLI Constants
const (
	CmdServer       = "server"
	FlagConfig      = "config"
	FlagPort        = "port"
	FlagUnits       = "units"
	FlagDelay       = "delay"
	FlagConcurrency = "concurrency"
	FlagPolicy      = "policy"
)

// CLILogger reports problems that happen before the configured logger exists
var CLILogger = common.NewSafeLogger("CLI")

// CLI Variables
var (
	configPath  string
	port        uint16
	units       int
	delay       time.Duration
	concurrency int
	policy      string
)

// Root command
var rootCmd = &cobra.Command{
	Use:   "gink",
	Short: "gink - a peer node that folds a large batch of concurrent work units",
	Long: `gink runs a peer node process. On start it builds its first change set,
launches a batch of independent delayed work units and folds their results
into a single sum as they complete.

QUICK START:
  gink server --port 8080                  # Run the reference batch
  gink server -p 8080 --units 1000         # Run a smaller batch
  gink --version                           # Show the version

Use 'gink <command> --help' for detailed command information.`,
	Version:       versionpkg.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command definitions
var (
	serverCmd = &cobra.Command{
		Use:   CmdServer,
		Short: "Start a gink server",
		Long: `Start a gink server on the given port.

The server launches --units work units that each wait --delay and then yield
their index, and logs the sum of every index once all of them have reported.
With the defaults (1000000 units of 100ms) the sum is 499999500000.

Flags override the values read from the configuration file.

Examples:
  gink server --port 8080
  gink server -p 8080 --concurrency 10000 --policy best-effort
  gink server -p 8080 -c ./gink.yaml`,
		Args: cobra.NoArgs,
		RunE: runServerCmd,
	}
)

func init() {
	// Server command flags
	serverCmd.Flags().Uint16VarP(&port, FlagPort, "p", 0, "Port to serve on (required)")
	serverCmd.Flags().StringVarP(&configPath, FlagConfig, "c", "", "Configuration file path (optional, will use defaults if not provided)")
	serverCmd.Flags().IntVar(&units, FlagUnits, 0, "Number of work units in the batch")
	serverCmd.Flags().DurationVar(&delay, FlagDelay, 0, "Delay of each work unit, e.g. 100ms")
	serverCmd.Flags().IntVar(&concurrency, FlagConcurrency, 0, "Maximum work units in flight (0 = no limit)")
	serverCmd.Flags().StringVar(&policy, FlagPolicy, "", "Failure policy: fail-fast or best-effort")
	_ = serverCmd.MarkFlagRequired(FlagPort)

	rootCmd.SetVersionTemplate("gink {{.Version}}\n")

	// Add commands to root
	rootCmd.AddCommand(serverCmd)
}

func runServerCmd(cmd *cobra.Command, args []string) error {
	cfg := LoadConfigWithFallback(configPath)
	if err := applyServerFlags(cmd, cfg); err != nil {
		return err
	}
	return RunServer(cmd.Context(), port, cfg)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
