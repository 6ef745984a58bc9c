package validation

import (
	"errors"
	"fmt"
	"time"
)

// ConfigValidator provides a fluent interface for validating configuration
// values. It collects every violation rather than failing on the first one.
type ConfigValidator struct {
	errors []error
	name   string
}

// NewConfigValidator creates a validator for the named config struct.
func NewConfigValidator(configName string) *ConfigValidator {
	return &ConfigValidator{name: configName}
}

// Required validates that a string field is not empty.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if value == "" {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: required field is empty", cv.name, field))
	}
	return cv
}

// MinInt validates that an int field is at least min.
func (cv *ConfigValidator) MinInt(field string, value, min int) *ConfigValidator {
	if value < min {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: must be at least %d, got %d", cv.name, field, min, value))
	}
	return cv
}

// MaxInt validates that an int field is at most max.
func (cv *ConfigValidator) MaxInt(field string, value, max int) *ConfigValidator {
	if value > max {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: must not exceed %d, got %d", cv.name, field, max, value))
	}
	return cv
}

// PortRange validates a TCP port number.
func (cv *ConfigValidator) PortRange(field string, value int) *ConfigValidator {
	if value < 1 || value > 65535 {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: must be a valid port (1-65535), got %d", cv.name, field, value))
	}
	return cv
}

// MinDuration validates that a duration field is at least min.
func (cv *ConfigValidator) MinDuration(field string, value, min time.Duration) *ConfigValidator {
	if value < min {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: must be at least %s, got %s", cv.name, field, min, value))
	}
	return cv
}

// Err returns all collected violations joined, or nil when the config is
// valid.
func (cv *ConfigValidator) Err() error {
	if len(cv.errors) == 0 {
		return nil
	}
	return errors.Join(cv.errors...)
}
