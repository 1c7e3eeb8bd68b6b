package domain

// DefaultCanvasBaseURL is the Canvas API root used when none is configured.
const DefaultCanvasBaseURL = "https://umsystem.instructure.com/api/v1/"

// Config is the declarative document that parameterises a run.
type Config struct {
	General    GeneralConfig
	Paths      PathsConfig
	Canvas     CanvasConfig
	Resolution ResolutionConfig
}

// GeneralConfig identifies the grading instance.
type GeneralConfig struct {
	// InstanceCode is the code of the grading instance the store belongs to.
	InstanceCode string `validate:"required"`
}

// PathsConfig locates local resources.
type PathsConfig struct {
	// SQLitePath is the path to the grading instance database.
	SQLitePath string `validate:"required"`
}

// CanvasConfig describes where and what to fetch.
type CanvasConfig struct {
	Token           string `validate:"required"`
	BaseURL         string `validate:"omitempty,url"`
	CourseID        int64  `validate:"gt=0"`
	NamePredicate   string
	PhraseBlacklist []string
}

// ResolutionConfig pre-answers the metadata questions for every assignment.
type ResolutionConfig struct {
	// AssignmentType is c, cpp or none. Empty means ask.
	AssignmentType string `validate:"omitempty,oneof=c cpp none"`

	// FileCount is the expected file count. Negative means ask.
	FileCount int
}

// Filter returns the FilterSpec described by the Canvas section.
func (c *Config) Filter() FilterSpec {
	return FilterSpec{
		Predicate: c.Canvas.NamePredicate,
		Blacklist: c.Canvas.PhraseBlacklist,
	}
}

// DefaultConfig returns an empty template with sensible placeholders.
// The blacklist holds a single blank phrase so the key is present and
// obviously a list when the operator edits the file.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			BaseURL:         DefaultCanvasBaseURL,
			PhraseBlacklist: []string{""},
		},
		Resolution: ResolutionConfig{
			FileCount: -1,
		},
	}
}
