package driven

import "github.com/mizzou-cs-core/assignment-window/internal/core/domain"

// ConfigStore provides access to the configuration document.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Exists reports whether the document is present.
	Exists() bool

	// Materialize writes cfg as a fresh document, replacing any existing one.
	// Zero-valued fields are written as empty placeholders for the operator.
	Materialize(cfg domain.Config) error

	// Load reads the document. Missing keys load as zero values.
	Load() (*domain.Config, error)

	// Path returns the configuration file path.
	Path() string
}
