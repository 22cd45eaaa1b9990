package restclient

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Name != "restclient" {
		t.Errorf("name = %q", cfg.Name)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestConfig_DefaultsKeepExplicitValues(t *testing.T) {
	cfg := Config{Name: "billing", Timeout: 2 * time.Second}
	cfg.ApplyDefaults()

	if cfg.Name != "billing" || cfg.Timeout != 2*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "https://api.example.com", UnauthorizedRetries: 1}, false},
		{"empty base url allowed", Config{}, false},
		{"malformed base url", Config{BaseURL: "not a url"}, true},
		{"retries above cap", Config{UnauthorizedRetries: 6}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.ApplyDefaults()
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %t", err, tc.wantErr)
			}
		})
	}
}
