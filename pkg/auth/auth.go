// Package auth applies credentials to build index and artifact requests,
// for deployments that sit behind an authenticating proxy.
package auth

import (
	"net/http"

	"github.com/glorpus-work/foxfetch/pkg/errors"
)

// Method names a credential scheme. It matches the key used in the config
// file's auth section.
type Method string

const (
	MethodNone   Method = "none"
	MethodBasic  Method = "basic"
	MethodHeader Method = "header"
	MethodBearer Method = "bearer"
)

// Authenticator adds credentials to an outgoing request.
type Authenticator interface {
	Apply(req *http.Request) error
	Method() Method
}

// BasicAuth sends a username and password with every request.
type BasicAuth struct {
	Username string
	Password string
}

func (b BasicAuth) Apply(req *http.Request) error {
	if b.Username == "" {
		return errors.Wrap(errors.ErrAuthCredentials, "basic auth needs a username")
	}
	req.SetBasicAuth(b.Username, b.Password)
	return nil
}

func (b BasicAuth) Method() Method { return MethodBasic }

// HeaderAuth sets fixed headers, e.g. a proxy API key.
type HeaderAuth struct {
	Headers map[string]string
}

func (h HeaderAuth) Apply(req *http.Request) error {
	if len(h.Headers) == 0 {
		return errors.Wrap(errors.ErrAuthCredentials, "header auth needs at least one header")
	}
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	return nil
}

func (h HeaderAuth) Method() Method { return MethodHeader }

// BearerAuth sends a token in the Authorization header.
type BearerAuth struct {
	Token string
}

func (b BearerAuth) Apply(req *http.Request) error {
	if b.Token == "" {
		return errors.Wrap(errors.ErrAuthCredentials, "bearer auth needs a token")
	}
	req.Header.Set("Authorization", "Bearer "+b.Token)
	return nil
}

func (b BearerAuth) Method() Method { return MethodBearer }

// Apply runs a on req. A nil Authenticator leaves the request untouched.
func Apply(a Authenticator, req *http.Request) error {
	if a == nil {
		return nil
	}
	return a.Apply(req)
}

// MethodOf reports the scheme of a, or MethodNone for nil. It never exposes
// the credentials themselves, so it is safe to log.
func MethodOf(a Authenticator) Method {
	if a == nil {
		return MethodNone
	}
	return a.Method()
}
