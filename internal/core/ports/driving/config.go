package driving

import "github.com/mizzou-cs-core/assignment-window/internal/core/domain"

// ConfigService prepares and loads the run configuration.
type ConfigService interface {
	// Ensure loads the configuration, or writes a template and returns
	// domain.ErrSetupRequired when none exists yet.
	Ensure() (*domain.Config, error)

	// Materialize writes a (possibly partial) configuration.
	// Unless overwrite is set, an existing document is left untouched and
	// an error is returned.
	Materialize(cfg domain.Config, overwrite bool) error

	// Validate checks a configuration is complete enough for a sync run.
	Validate(cfg *domain.Config) error

	// Path returns where the configuration lives.
	Path() string
}
