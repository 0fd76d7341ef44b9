package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyFor(t *testing.T, target, route string) string {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(route)
	return cacheKey("cache", c)
}

func TestCacheKeySeparatesPathParams(t *testing.T) {
	route := "/api/trademarks/:id"

	k1 := keyFor(t, "/api/trademarks/1", route)
	k2 := keyFor(t, "/api/trademarks/2", route)

	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, keyFor(t, "/api/trademarks/1", route))
}

func TestCacheKeySeparatesQueryStrings(t *testing.T) {
	route := "/api/search"

	k1 := keyFor(t, "/api/search?query=nike", route)
	k2 := keyFor(t, "/api/search?query=apple", route)

	assert.NotEqual(t, k1, k2)
}

func TestCaptureWriterCountsPastLimit(t *testing.T) {
	cw := &captureWriter{ResponseWriter: httptest.NewRecorder(), limit: 8}

	_, err := cw.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = cw.Write([]byte("world!"))
	require.NoError(t, err)

	// size reflects everything written so oversized responses can be
	// detected and left uncached instead of stored truncated
	assert.Equal(t, int64(11), cw.size)
	assert.LessOrEqual(t, int64(cw.buf.Len()), cw.limit)
}

func TestCaptureWriterCountsAfterExactFill(t *testing.T) {
	cw := &captureWriter{ResponseWriter: httptest.NewRecorder(), limit: 4}

	_, err := cw.Write([]byte("full"))
	require.NoError(t, err)
	_, err = cw.Write([]byte("more"))
	require.NoError(t, err)

	assert.Equal(t, int64(8), cw.size)
	assert.Equal(t, int64(4), int64(cw.buf.Len()))
}
