package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/riziyan/apdetax/internal/api"
	"github.com/riziyan/apdetax/internal/config"
	"github.com/riziyan/apdetax/internal/debuglog"
	"github.com/riziyan/apdetax/internal/search"
	"github.com/riziyan/apdetax/internal/session"
	"github.com/riziyan/apdetax/internal/tui"
	"github.com/riziyan/apdetax/internal/validation"
)

// Version is set at build time.
var Version = "dev"

var (
	flagConfig   string
	flagAPI      string
	flagLogLevel string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "apdetax",
	Short: "Terminal research dashboard",
	Long: `apdetax aggregates YouTube search, web search, news and an AI
assistant into one terminal dashboard backed by your own API server.

Controls:
  enter     - Search / Select
  tab       - Switch result panel
  ctrl+k    - Chat with the assistant
  ctrl+f    - Find in this session's results
  esc       - Back
  q         - Quit`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("apdetax version %s\n", Version)
	},
}

var generateConfigCmd = &cobra.Command{
	Use:   "generate-config",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		home, _ := os.UserHomeDir()
		configFile := filepath.Join(home, ".config", "apdetax", "config.toml")

		if err := config.GenerateDefaultConfig(configFile); err != nil {
			return fmt.Errorf("generating config: %w", err)
		}
		cmd.Printf("Generated default configuration at: %s\n", configFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to configuration file")
	rootCmd.Flags().StringVar(&flagAPI, "api", "", "backend API base URL (overrides config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "debug log level: debug, info, warn, error, off")
	rootCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "skip the startup banner")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateConfigCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	baseURL := cfg.API.BaseURL
	if flagAPI != "" {
		baseURL = flagAPI
	}
	validator := validation.NewBaseURLValidator()
	baseURL, err = validator.ValidateAndNormalize(baseURL)
	if err != nil {
		return err
	}

	logLevel := cfg.Log.Level
	if flagLogLevel != "" {
		logLevel = flagLogLevel
	}
	if err := debuglog.Setup(debuglog.ParseLogLevel(logLevel), cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer debuglog.Close()

	if !flagQuiet {
		tui.ShowBanner(Version)
	}

	tui.ApplyPalette(cfg.UI.Colors)

	var cookieJar http.CookieJar
	if err := os.MkdirAll(filepath.Dir(cfg.Session.Path), 0o755); err != nil {
		debuglog.Warnf("creating session directory: %v", err)
	} else if jar, jarErr := session.Open(cfg.Session.Path); jarErr != nil {
		// A broken session store only costs the login; start logged out.
		debuglog.Warnf("opening session store: %v", jarErr)
	} else {
		defer jar.Close()
		cookieJar = jar
	}
	client := api.NewClient(baseURL, cfg.API.Timeout, cookieJar)

	finder, err := search.NewMemEngine()
	if err != nil {
		debuglog.Warnf("session finder unavailable: %v", err)
		finder = nil
	}

	debuglog.WithFields(map[string]interface{}{"api": baseURL}).Infof("starting dashboard")

	app := tui.NewApp(client, finder, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
