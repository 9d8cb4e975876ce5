package config

import (
	"context"

	"github.com/folio-lab/portfolio-backend/pkg/domain/interfaces"
	"github.com/folio-lab/portfolio-backend/pkg/repository/firestore"
	"github.com/folio-lab/portfolio-backend/pkg/repository/memory"
	"github.com/folio-lab/portfolio-backend/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend    string
	projectID  string
	databaseID string
}

// Flags returns CLI flags for repository configuration
func (x *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (firestore or memory)",
			Value:       "firestore",
			Sources:     cli.EnvVars("PORTFOLIO_REPOSITORY_BACKEND"),
			Destination: &x.backend,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Sources:     cli.EnvVars("PORTFOLIO_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Sources:     cli.EnvVars("PORTFOLIO_FIRESTORE_DATABASE_ID"),
			Destination: &x.databaseID,
		},
	}
}

// Configure initializes and returns a repository based on the configured
// backend. The firestore backend is probed once; an unreachable store aborts
// startup. The caller is responsible for calling Close() on the returned
// repository.
func (x *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch x.backend {
	case "firestore":
		if x.projectID == "" {
			return nil, goerr.New("firestore-project-id is required when using firestore backend")
		}
		repo, err := firestore.New(ctx, x.projectID, x.databaseID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		if err := repo.Ping(ctx); err != nil {
			return nil, goerr.Wrap(err, "firestore is unreachable")
		}
		logging.Default().Info("Using Firestore repository",
			"project_id", x.projectID,
			"database_id", x.databaseID,
		)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", x.backend))
	}
}
