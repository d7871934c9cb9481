//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertDownload checks a file response: status 200, content type and attachment name.
func AssertDownload(t *testing.T, w *httptest.ResponseRecorder, contentType, filename string) {
	t.Helper()
	assert.Equal(t, 200, w.Code, w.Body.String())
	AssertHeaders(t, w, map[string]string{
		"Content-Type":        contentType,
		"Content-Disposition": `attachment; filename="` + filename + `"`,
	})
	assert.NotZero(t, w.Body.Len(), "download body is empty")
}
