package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
)

// DefaultFileName is the configuration file looked up in the working directory.
const DefaultFileName = "gen_assignment_window.toml"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewConfigStore creates a TOML config store for the given file.
// If filePath is empty, defaults to ./gen_assignment_window.toml.
func NewConfigStore(filePath string) *ConfigStore {
	if filePath == "" {
		filePath = DefaultFileName
	}
	return &ConfigStore{filePath: filePath}
}

// document is the on-disk layout. Field order is the order keys are written.
type document struct {
	General    generalSection    `toml:"general"`
	Paths      pathsSection      `toml:"paths"`
	Canvas     canvasSection     `toml:"canvas"`
	Resolution resolutionSection `toml:"resolution"`
}

type generalSection struct {
	InstanceCode string `toml:"mucs_instance_code" comment:"Code of the grading instance, e.g. cs1050-sp25"`
}

type pathsSection struct {
	SQLitePath string `toml:"sqlite3_path" comment:"Path to the grading instance SQLite database"`
}

//nolint:lll // comments are part of the generated template
type canvasSection struct {
	Token           string   `toml:"canvas_token" comment:"Canvas API access token"`
	BaseURL         string   `toml:"canvas_base_url" comment:"Canvas API root"`
	CourseID        int64    `toml:"canvas_course_id" comment:"Numeric Canvas course id"`
	NamePredicate   string   `toml:"canvas_assignment_name_predicate" comment:"Only assignments whose name contains this text are synced (empty matches all)"`
	PhraseBlacklist []string `toml:"canvas_assignment_phrase_blacklist" comment:"Assignments whose name contains any of these phrases are skipped"`
}

//nolint:lll // comments are part of the generated template
type resolutionSection struct {
	AssignmentType string `toml:"assignment_type" comment:"c, cpp or none for every assignment; leave empty to be asked"`
	FileCount      int    `toml:"file_count" comment:"Expected file count for every assignment; -1 to be asked"`
}

// Exists reports whether the configuration file is present.
func (s *ConfigStore) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.filePath)
	return err == nil
}

// Materialize writes cfg as a fresh TOML document with commented keys.
func (s *ConfigStore) Materialize(cfg domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blacklist := cfg.Canvas.PhraseBlacklist
	if len(blacklist) == 0 {
		blacklist = []string{""}
	}

	doc := document{
		General: generalSection{InstanceCode: cfg.General.InstanceCode},
		Paths:   pathsSection{SQLitePath: cfg.Paths.SQLitePath},
		Canvas: canvasSection{
			Token:           cfg.Canvas.Token,
			BaseURL:         cfg.Canvas.BaseURL,
			CourseID:        cfg.Canvas.CourseID,
			NamePredicate:   cfg.Canvas.NamePredicate,
			PhraseBlacklist: blacklist,
		},
		Resolution: resolutionSection{
			AssignmentType: cfg.Resolution.AssignmentType,
			FileCount:      cfg.Resolution.FileCount,
		},
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	// Write with restricted permissions, the file holds an API token
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load reads the configuration file. Missing keys load as zero values,
// except resolution.file_count which defaults to -1 (ask).
func (s *ConfigStore) Load() (*domain.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, s.filePath)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidConfig, s.filePath, err)
	}

	// Flatten nested tables into dot-notation keys for easier access
	v := values(flattenMap(loaded, ""))

	cfg := &domain.Config{
		General: domain.GeneralConfig{
			InstanceCode: v.getString("general.mucs_instance_code"),
		},
		Paths: domain.PathsConfig{
			SQLitePath: v.getString("paths.sqlite3_path"),
		},
		Canvas: domain.CanvasConfig{
			Token:           v.getString("canvas.canvas_token"),
			BaseURL:         v.getString("canvas.canvas_base_url"),
			CourseID:        v.getInt64("canvas.canvas_course_id", 0),
			NamePredicate:   v.getString("canvas.canvas_assignment_name_predicate"),
			PhraseBlacklist: v.getStringSlice("canvas.canvas_assignment_phrase_blacklist"),
		},
		Resolution: domain.ResolutionConfig{
			AssignmentType: v.getString("resolution.assignment_type"),
			FileCount:      int(v.getInt64("resolution.file_count", -1)),
		},
	}
	return cfg, nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// values is a flattened TOML document with lenient typed getters.
type values map[string]any

func (v values) getString(key string) string {
	str, ok := v[key].(string)
	if !ok {
		return ""
	}
	return str
}

// getInt64 accepts TOML integers and numeric strings, since a course id
// copied from a URL is easily quoted by hand.
func (v values) getInt64(key string, fallback int64) int64 {
	switch val := v[key].(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	case string:
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func (v values) getStringSlice(key string) []string {
	// TOML arrays are parsed as []any
	switch val := v[key].(type) {
	case []string:
		return val
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	case string:
		return []string{val}
	default:
		return nil
	}
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}
