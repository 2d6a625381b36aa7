package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/maodou/internal/config"
	"github.com/f3rmion/maodou/internal/quotes"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize maodou configuration",
	Long: `Write the default config.yaml to your config directory.

The file holds the web server settings (listen address, timeouts, upload
limit), the number of frequent characters to list and the quotes shown
above the input box. Edit it afterwards to taste.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Quotes = append([]string(nil), quotes.Defaults...)
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file to change the listen address or add your own quotes")
	fmt.Fprintln(out, "  2. Run 'maodou' for the terminal counter or 'maodou serve' for the web page")

	return nil
}
