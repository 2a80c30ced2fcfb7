package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready","components":{}}`))
	})
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":[{"id":"1","name":"Ann","email":"ann@x.com"}]}`))
	})
	mux.HandleFunc("DELETE /posts", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":[]}`))
	})
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"q is not a valid pattern"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHealth(t *testing.T) {
	srv := fakeAPI(t)
	out, err := run(t, "--url", srv.URL, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "ready")
}

func TestUsersList(t *testing.T) {
	srv := fakeAPI(t)
	out, err := run(t, "--url", srv.URL, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ann@x.com")
	assert.Contains(t, out, "1 users")

	out, err = run(t, "--url", srv.URL, "--out", "json", "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"email": "ann@x.com"`)
}

func TestPurgeNeedsConfirmation(t *testing.T) {
	srv := fakeAPI(t)
	_, err := run(t, "--url", srv.URL, "posts", "purge")
	require.Error(t, err)

	out, err := run(t, "--url", srv.URL, "posts", "purge", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted all posts")
}

func TestServerErrorIsReported(t *testing.T) {
	srv := fakeAPI(t)
	_, err := run(t, "--url", srv.URL, "posts", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q is not a valid pattern")
}
