package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/docmap/internal/cmd/globals"
	"github.com/agentstation/docmap/pkg/logging"
)

var (
	configFile  string
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "docmap",
	Short: "Image model documentation toolchain",
	Long: `Docmap maintains the documentation for built-in image-generation models.

It keeps a catalog of models, generates their documentation pages and the
navigation index, and lints toctree listings for data-quality defects such
as duplicate or dangling page references.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.docmap.yaml)")
	globalFlags = globals.AddFlags(rootCmd)

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Load .env if present; environment always wins over file config.
	_ = godotenv.Load()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".docmap")
	}

	viper.SetEnvPrefix("DOCMAP")
	viper.AutomaticEnv()

	// Config file is optional
	_ = viper.ReadInConfig()
}

// setupCommand configures logging and color for every command run.
func setupCommand(cmd *cobra.Command, _ []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	cfg := logging.DefaultConfig()
	switch {
	case flags.Quiet:
		cfg.Level = "error"
	case flags.Verbose:
		cfg.Level = "debug"
	}
	cfg.NoColor = cfg.NoColor || flags.NoColor
	logging.Configure(cfg)

	color.NoColor = color.NoColor || flags.NoColor

	return nil
}

// defaultIndexPage is where generate writes, and validate reads, the
// built-in image model listing by default.
func defaultIndexPage() string {
	return filepath.Join("docs", "models", "builtin", "image", "index.rst")
}
