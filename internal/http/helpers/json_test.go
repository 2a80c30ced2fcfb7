package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, []string{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","data":[]}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestReadJSON(t *testing.T) {
	type body struct {
		Name *string `json:"name"`
	}

	t.Run("decodes", func(t *testing.T) {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann"}`))
		ok := ReadJSON(httptest.NewRecorder(), req, &b)
		require.True(t, ok)
		require.NotNil(t, b.Name)
		assert.Equal(t, "Ann", *b.Name)
	})

	t.Run("empty body is accepted", func(t *testing.T) {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		assert.True(t, ReadJSON(httptest.NewRecorder(), req, &b))
		assert.Nil(t, b.Name)
	})

	t.Run("malformed body writes 400", func(t *testing.T) {
		var b body
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		assert.False(t, ReadJSON(rec, req, &b))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp["status"])
	})

	t.Run("trailing content writes 400", func(t *testing.T) {
		for _, raw := range []string{`{"name":"Ann"} trailing`, `{"name":"Ann"}{"name":"Bob"}`} {
			var b body
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(raw))
			assert.False(t, ReadJSON(rec, req, &b), raw)
			assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
		}
	})

	t.Run("trailing whitespace is accepted", func(t *testing.T) {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"name\":\"Ann\"}\n  "))
		assert.True(t, ReadJSON(httptest.NewRecorder(), req, &b))
	})

	t.Run("oversized body writes 400", func(t *testing.T) {
		var b body
		big := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
		assert.False(t, ReadJSON(rec, req, &b))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
