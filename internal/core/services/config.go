package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driving"
	"github.com/mizzou-cs-core/assignment-window/internal/logger"
)

// Ensure ConfigService implements the interface.
var _ driving.ConfigService = (*ConfigService)(nil)

// configKeys maps validated struct fields to the document keys operators edit.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
var configKeys = map[string]string{
	"Config.General.InstanceCode":      "general.mucs_instance_code",
	"Config.Paths.SQLitePath":          "paths.sqlite3_path",
	"Config.Canvas.Token":              "canvas.canvas_token",
	"Config.Canvas.BaseURL":            "canvas.canvas_base_url",
	"Config.Canvas.CourseID":           "canvas.canvas_course_id",
	"Config.Resolution.AssignmentType": "resolution.assignment_type",
}

// ConfigService manages the run configuration document.
type ConfigService struct {
	configStore driven.ConfigStore
	validate    *validator.Validate
}

// NewConfigService creates a new config service.
func NewConfigService(configStore driven.ConfigStore) *ConfigService {
	return &ConfigService{
		configStore: configStore,
		validate:    validator.New(),
	}
}

// Ensure loads the configuration, writing a template when none exists.
func (s *ConfigService) Ensure() (*domain.Config, error) {
	if !s.configStore.Exists() {
		if err := s.configStore.Materialize(domain.DefaultConfig()); err != nil {
			return nil, fmt.Errorf("write config template: %w", err)
		}
		logger.Debug("Created config template at %s", s.configStore.Path())
		return nil, fmt.Errorf("%w: %s was just created, edit it before running again",
			domain.ErrSetupRequired, s.configStore.Path())
	}

	logger.Debug("Loading %s", s.configStore.Path())
	cfg, err := s.configStore.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Materialize writes a (possibly partial) configuration.
func (s *ConfigService) Materialize(cfg domain.Config, overwrite bool) error {
	if s.configStore.Exists() && !overwrite {
		return fmt.Errorf("%s already exists", s.configStore.Path())
	}
	if len(cfg.Canvas.PhraseBlacklist) == 0 {
		cfg.Canvas.PhraseBlacklist = []string{""}
	}
	if cfg.Canvas.BaseURL == "" {
		cfg.Canvas.BaseURL = domain.DefaultCanvasBaseURL
	}
	if cfg.Canvas.Token != "" {
		logger.Debug("Creating %s with pre-provided defaults", s.configStore.Path())
	} else {
		logger.Debug("Creating %s with empty defaults", s.configStore.Path())
	}
	return s.configStore.Materialize(cfg)
}

// Validate checks that a configuration can drive a sync run.
func (s *ConfigService) Validate(cfg *domain.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: no configuration loaded", domain.ErrInvalidConfig)
	}

	err := s.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key, ok := configKeys[fe.Namespace()]
		if !ok {
			key = fe.Namespace()
		}
		problems = append(problems, describeViolation(key, fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(problems, "; "))
}

// Path returns where the configuration lives.
func (s *ConfigService) Path() string {
	return s.configStore.Path()
}

func describeViolation(key string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "gt":
		return key + " must be greater than " + fe.Param()
	case "oneof":
		return key + " must be one of: " + fe.Param()
	case "url":
		return key + " must be a URL"
	default:
		return fmt.Sprintf("%s failed %q", key, fe.Tag())
	}
}
