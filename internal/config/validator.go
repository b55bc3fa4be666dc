package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"text", "json"}
	validDrivers    = []string{StoreDriverMemory, StoreDriverPostgres, StoreDriverSQLite}
)

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY environment variable must be set for security"))
	}
	if c.Port < minPort || c.Port > maxPort {
		errs = append(errs, fmt.Errorf("invalid PORT value: %d", c.Port))
	}
	if !oneOf(c.LogLevel, validLogLevels) {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q (expected one of %s)", c.LogLevel, strings.Join(validLogLevels, ", ")))
	}
	if !oneOf(c.LogFormat, validLogFormats) {
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT %q (expected one of %s)", c.LogFormat, strings.Join(validLogFormats, ", ")))
	}
	if !oneOf(c.StoreDriver, validDrivers) {
		errs = append(errs, fmt.Errorf("invalid STORE_DRIVER %q (expected one of %s)", c.StoreDriver, strings.Join(validDrivers, ", ")))
	}
	if c.StoreDriver == StoreDriverSQLite && c.SQLitePath == "" {
		errs = append(errs, errors.New("SQLITE_PATH must be set when STORE_DRIVER=sqlite"))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, fmt.Errorf("invalid DB_MAX_CONNS value: %d", c.DBMaxConns))
	}
	if c.EventMaxRetries < 0 {
		errs = append(errs, fmt.Errorf("invalid EVENT_MAX_RETRIES value: %d", c.EventMaxRetries))
	}

	return errors.Join(errs...)
}

// ValidateWithWarnings validates the configuration and reports non-critical issues,
// such as example secrets or a missing planner key
func (c *Config) ValidateWithWarnings() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	if c.StoreDriver == StoreDriverPostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.GeminiAPIKey == "" {
		warnings = append(warnings, "GEMINI_API_KEY is not set - goals will be planned with the offline template")
	}
	if c.StoreDriver == StoreDriverMemory && c.Environment == "production" {
		warnings = append(warnings, "STORE_DRIVER=memory loses all data on restart")
	}

	return warnings, nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}
