package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sopmaster25-create/sopmaster/internal/auth"
	"github.com/sopmaster25-create/sopmaster/internal/config"
	"github.com/sopmaster25-create/sopmaster/internal/mail"
	"github.com/sopmaster25-create/sopmaster/internal/server"
	"github.com/sopmaster25-create/sopmaster/internal/sop"
	"github.com/sopmaster25-create/sopmaster/internal/stats"
	"github.com/sopmaster25-create/sopmaster/internal/store"
	"github.com/sopmaster25-create/sopmaster/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SOPMaster web server",
	Long:  `Starts the SOPMaster web application: landing page, dashboard, SOP builder wizard, and live monthly stats.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// Open database.
		st, err := store.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer st.Close()

		// Code delivery. Without a configured mail account codes are
		// shown on-screen instead.
		var sender mail.Sender
		if cfg.Mail.Enabled {
			sender = mail.NewEmailJS(mail.Options{
				Endpoint:   cfg.Mail.Endpoint,
				ServiceID:  cfg.Mail.ServiceID,
				TemplateID: cfg.Mail.TemplateID,
				PublicKey:  cfg.Mail.PublicKey,
				Timeout:    cfg.Mail.Timeout(),
			})
		}

		agg := stats.New(st)
		svc := auth.New(st, sender)
		sessions := auth.NewSessions(cfg.SecureCookies)
		handler := web.New(st, agg, svc, sessions, sop.New(), cfg.GenerateDelay())

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, handler)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Printf("SOPMaster running at %s\n", cfg.BaseURL)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
