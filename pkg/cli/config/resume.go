package config

import (
	"log/slog"

	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Resume holds configuration for the résumé document
type Resume struct {
	path string
}

// Flags returns CLI flags for résumé configuration
func (x *Resume) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "resume",
			Usage:       "Path to the resume JSON document",
			Value:       "resume.json",
			Sources:     cli.EnvVars("PORTFOLIO_RESUME"),
			Destination: &x.path,
		},
	}
}

// LogValue returns log attributes for the résumé configuration
func (x *Resume) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", x.path))
}

// Configure loads the résumé document. The document is immutable for the
// process lifetime; a missing or unparsable file is fatal.
func (x *Resume) Configure() (*model.ResumeDocument, error) {
	resume, err := model.LoadResume(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load resume document")
	}

	return resume, nil
}
