package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/folio-lab/portfolio-backend/pkg/cli/config"
	httpctrl "github.com/folio-lab/portfolio-backend/pkg/controller/http"
	"github.com/folio-lab/portfolio-backend/pkg/service/embedding"
	"github.com/folio-lab/portfolio-backend/pkg/usecase"
	"github.com/folio-lab/portfolio-backend/pkg/utils/async"
	"github.com/folio-lab/portfolio-backend/pkg/utils/logging"
	"github.com/folio-lab/portfolio-backend/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var smtpCfg config.SMTP
	var resumeCfg config.Resume

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("PORTFOLIO_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, smtpCfg.Flags()...)
	flags = append(flags, resumeCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			resume, err := resumeCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load resume")
			}
			logging.Default().Info("Resume loaded", "resume", resumeCfg)

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			ucOpts := []usecase.Option{}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient != nil {
				embedSvc, err := embedding.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize embedding service")
				}
				genSvc, err := geminiCfg.ConfigureGeneration(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize generation service")
				}
				ucOpts = append(ucOpts,
					usecase.WithEmbedding(embedSvc),
					usecase.WithGeneration(genSvc),
				)
				logging.Default().Info("Gemini services enabled", "gemini", geminiCfg)
			} else {
				logging.Default().Info("Gemini project not configured, chat retrieval will be limited")
			}

			mailSvc, err := smtpCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize mail relay")
			}
			if mailSvc != nil {
				ucOpts = append(ucOpts,
					usecase.WithMailer(mailSvc),
					usecase.WithAdminEmail(smtpCfg.AdminEmail()),
				)
				logging.Default().Info("Mail relay enabled", "smtp", smtpCfg)
			} else {
				logging.Default().Info("SMTP credentials not configured, contact notifications disabled")
			}

			uc := usecase.New(repo, resume, ucOpts...)

			// Index the résumé in the background so the contact form and the
			// chat shortcut are available immediately. An indexing failure is
			// logged, not fatal.
			if llmClient != nil {
				async.Dispatch(ctx, func(ctx context.Context) error {
					logging.From(ctx).Info("Uploading portfolio data...")
					return uc.Index.Upload(ctx)
				})
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
