// Package cmd contains all CLI commands for the maodou tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/maodou/internal/config"
	"github.com/f3rmion/maodou/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "maodou",
	Short: "毛豆字数统计 - count Chinese characters and English words",
	Long: `maodou counts mixed Chinese and English text.

It reports Chinese characters, English words, characters with and without
spaces, digits, punctuation, paragraphs, sentences and lines, plus a
playful bean equivalent and a comment on the language mix.

Running 'maodou' without arguments launches the interactive TUI.
'maodou serve' starts the web page, 'maodou count' counts a file or stdin.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/maodou)")
	rootCmd.PersistentFlags().Bool("debug", false, "debug logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.SetDefault("config_dir", dir)
	}

	viper.SetEnvPrefix("MAODOU")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig loads config.yaml from the config directory, falling back to
// defaults when it does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a text logger on w at level, or at debug level when
// --debug is set.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// runTUI launches the counter TUI.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := tui.Options{Config: cfg}

	// The TUI owns the terminal, so logs only go to a file with --debug.
	if viper.GetBool("debug") {
		dir := getConfigDir()
		if err := config.EnsureConfigDir(dir); err != nil {
			return err
		}
		f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "maodou")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
		opts.Logger = newLogger(f, slog.LevelDebug)
	}

	p := tea.NewProgram(
		tui.NewApp(opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
