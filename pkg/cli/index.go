package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/folio-lab/portfolio-backend/pkg/cli/config"
	"github.com/folio-lab/portfolio-backend/pkg/service/embedding"
	"github.com/folio-lab/portfolio-backend/pkg/usecase"
	"github.com/folio-lab/portfolio-backend/pkg/utils/logging"
	"github.com/folio-lab/portfolio-backend/pkg/utils/safe"
)

// cmdIndex re-indexes the résumé into the vector store once and exits.
// Safe to run any number of times: fact ids are deterministic, so every run
// overwrites the previous vectors.
func cmdIndex() *cli.Command {
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var resumeCfg config.Resume

	var flags []cli.Flag
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, resumeCfg.Flags()...)

	return &cli.Command{
		Name:  "index",
		Usage: "Flatten the resume and upload fact embeddings to the vector index",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			resume, err := resumeCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load resume")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient == nil {
				return goerr.New("gemini-project is required for indexing")
			}

			embedSvc, err := embedding.New(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize embedding service")
			}

			uc := usecase.New(repo, resume, usecase.WithEmbedding(embedSvc))
			if err := uc.Index.Upload(ctx); err != nil {
				return goerr.Wrap(err, "failed to index resume")
			}

			logging.Default().Info("Portfolio data uploaded")
			return nil
		},
	}
}
