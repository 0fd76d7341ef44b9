package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/trademark-search/internal/repository"
)

func postWaitlist(t *testing.T, h *WaitlistHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Join(e.NewContext(req, rec)))
	return rec
}

func TestWaitlistJoin(t *testing.T) {
	h := NewWaitlistHandler(repository.NewStore())

	rec := postWaitlist(t, h, `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Message string `json:"message"`
		ID      uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, uint64(1), out.ID)
	assert.Equal(t, "Successfully added to waitlist", out.Message)
}

func TestWaitlistJoinDuplicateConflicts(t *testing.T) {
	h := NewWaitlistHandler(repository.NewStore())

	rec := postWaitlist(t, h, `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postWaitlist(t, h, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWaitlistJoinValidatesEmail(t *testing.T) {
	h := NewWaitlistHandler(repository.NewStore())

	for _, body := range []string{`{}`, `{"email":""}`, `{"email":"   "}`, `{"email":"not-an-email"}`} {
		rec := postWaitlist(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
	}
}
