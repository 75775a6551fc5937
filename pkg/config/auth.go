package config

import (
	"fmt"

	"github.com/glorpus-work/foxfetch/pkg/auth"
	"github.com/glorpus-work/foxfetch/pkg/errors"
)

// AuthConfig holds the credentials for a build index behind an
// authenticating proxy. At most one method may be set.
type AuthConfig struct {
	BasicAuth  *BasicAuth  `yaml:"basic,omitempty"`
	HeaderAuth *HeaderAuth `yaml:"header,omitempty"`
	BearerAuth *BearerAuth `yaml:"bearer,omitempty"`
}

// BasicAuth holds configuration for HTTP Basic Authentication.
type BasicAuth struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// HeaderAuth holds configuration for custom header-based authentication.
type HeaderAuth struct {
	Headers map[string]string `yaml:"headers"`
}

// BearerAuth holds configuration for Bearer token authentication.
type BearerAuth struct {
	Token string `yaml:"token"`
}

// Authenticator returns the configured credentials, or nil when none are set.
func (c *Config) Authenticator() auth.Authenticator {
	a := c.Settings.Auth
	switch {
	case a == nil:
		return nil
	case a.BasicAuth != nil:
		return auth.BasicAuth{Username: a.BasicAuth.Username, Password: a.BasicAuth.Password}
	case a.HeaderAuth != nil:
		return auth.HeaderAuth{Headers: a.HeaderAuth.Headers}
	case a.BearerAuth != nil:
		return auth.BearerAuth{Token: a.BearerAuth.Token}
	default:
		return nil
	}
}

func (a *AuthConfig) validate() error {
	if a == nil {
		return nil
	}
	methods := 0
	for _, set := range []bool{a.BasicAuth != nil, a.HeaderAuth != nil, a.BearerAuth != nil} {
		if set {
			methods++
		}
	}
	if methods > 1 {
		return fmt.Errorf("%w: only one of basic, header or bearer auth may be set", errors.ErrConfigValidation)
	}
	return nil
}
