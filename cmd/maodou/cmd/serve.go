package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/f3rmion/maodou/internal/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web counter",
	Long: `Serve the counter page and its JSON API.

Routes:
  GET  /             the page
  POST /count        count the form field "text"
  POST /example      fill in the example text
  POST /upload       count an uploaded UTF-8 .txt file
  POST /api/stats    {"text": "..."} -> statistics as JSON
  GET  /api/example  the example text as JSON
  GET  /health       liveness

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "address to listen on (default from config, 127.0.0.1:8501)")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listen := viper.GetString("listen"); listen != "" {
		cfg.Server.Listen = listen
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(web.Deps{
		Config: cfg,
		Logger: newLogger(os.Stderr, slog.LevelInfo),
	})

	fmt.Fprintf(cmd.OutOrStdout(), "🫘 maodou listening on http://%s\n", cfg.Server.Listen)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
