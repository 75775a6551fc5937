package auth_test

import (
	"net/http"
	"testing"

	"github.com/glorpus-work/foxfetch/pkg/auth"
	"github.com/glorpus-work/foxfetch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "https://firefox-ci-tc.services.mozilla.com/api/index/v1/task/x", http.NoBody)
	require.NoError(t, err)
	return req
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		auth   auth.Authenticator
		method auth.Method
		expect map[string]string
	}{
		{
			name:   "basic",
			auth:   auth.BasicAuth{Username: "user", Password: "pass"},
			method: auth.MethodBasic,
			expect: map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
		},
		{
			name:   "bearer",
			auth:   auth.BearerAuth{Token: "tc-token"},
			method: auth.MethodBearer,
			expect: map[string]string{"Authorization": "Bearer tc-token"},
		},
		{
			name:   "header",
			auth:   auth.HeaderAuth{Headers: map[string]string{"x-proxy-key": "k", "X-Client-ID": "ci"}},
			method: auth.MethodHeader,
			expect: map[string]string{"X-Proxy-Key": "k", "X-Client-Id": "ci"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(t)
			require.NoError(t, auth.Apply(tt.auth, req))
			for k, v := range tt.expect {
				assert.Equal(t, v, req.Header.Get(k))
			}
			assert.Equal(t, tt.method, auth.MethodOf(tt.auth))
		})
	}
}

func TestApply_MissingCredentials(t *testing.T) {
	for _, a := range []auth.Authenticator{
		auth.BasicAuth{Password: "pass"},
		auth.BearerAuth{},
		auth.HeaderAuth{},
	} {
		t.Run(string(a.Method()), func(t *testing.T) {
			req := newRequest(t)
			assert.ErrorIs(t, auth.Apply(a, req), errors.ErrAuthCredentials)
			assert.Empty(t, req.Header.Get("Authorization"))
		})
	}
}

func TestApply_Nil(t *testing.T) {
	req := newRequest(t)
	require.NoError(t, auth.Apply(nil, req))
	assert.Empty(t, req.Header)
	assert.Equal(t, auth.MethodNone, auth.MethodOf(nil))
}
