package restclient

import (
	"time"

	"github.com/orbitalabs/restkit/validation"
)

const defaultTimeout = 10 * time.Second

// Config configures a Client.
type Config struct {
	// Name identifies the client in logs, metrics, and registries.
	Name string `yaml:"name" mapstructure:"name" json:"name"`

	// BaseURL, when set, is prepended to request URLs that are not already
	// absolute.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" json:"base_url" validate:"omitempty,url"`

	// Timeout is the default per-call timeout. Defaults to 10s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" json:"timeout"`

	// Headers are client-level defaults merged over the policy defaults
	// and under per-call headers.
	Headers map[string]string `yaml:"headers" mapstructure:"headers" json:"headers"`

	// UnauthorizedRetries is the number of times one call may be re-run
	// after an HTTP 401, with a credential refresh signalled each time.
	// Zero disables the retry.
	UnauthorizedRetries int `yaml:"unauthorized_retries" mapstructure:"unauthorized_retries" json:"unauthorized_retries" validate:"gte=0,lte=5"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "restclient"
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
