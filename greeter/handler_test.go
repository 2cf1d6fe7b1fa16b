package greeter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRootAllMethods(t *testing.T) {
	s := httptest.NewServer(NewHandler())
	defer s.Close()

	methods := []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
		"PURGE",
	}
	for _, m := range methods {
		req, err := http.NewRequest(m, s.URL+"/", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, m)
		assert.Equal(t, ContentType, resp.Header.Get("Content-Type"), m)
		assert.Equal(t, Body, string(body), m)
	}
}

func TestHandleRootHead(t *testing.T) {
	s := httptest.NewServer(NewHandler())
	defer s.Close()

	req, err := http.NewRequest(http.MethodHead, s.URL+"/", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, ContentType, resp.Header.Get("Content-Type"))
	assert.Empty(t, body)
}

func TestHandleOtherPaths(t *testing.T) {
	h := NewHandler()
	for _, path := range []string{"/missing", "/index.html", "//", "/a/b/c", "/%20"} {
		for _, m := range []string{http.MethodGet, http.MethodPost} {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(m, "http://localhost"+path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code, path)
			assert.NotEqual(t, Body, rec.Body.String(), path)
		}
	}
}

func TestHandleRootWithQuery(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?name=x", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Body, rec.Body.String())
}

func TestHandleIdempotent(t *testing.T) {
	h := NewHandler()
	var first []byte
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		if first == nil {
			first = rec.Body.Bytes()
			continue
		}
		assert.Equal(t, first, rec.Body.Bytes())
	}
	assert.Equal(t, Body, string(first))
}
