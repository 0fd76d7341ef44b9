package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/trademark-search/internal/repository"
)

func seededHandler(t *testing.T) *PublicHandler {
	t.Helper()
	s := repository.NewStore()
	repository.Seed(s)
	return NewPublicHandler(s)
}

func doGET(t *testing.T, target string, fn echo.HandlerFunc, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	require.NoError(t, fn(c))
	return rec
}

func TestGetOwners(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, "/api/owners", h.GetOwners)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []publicOwner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 3)
	assert.Equal(t, "Nike, Inc.", out[0].Name)
	assert.Equal(t, uint64(1), out[0].ID)
}

func TestGetLawFirms(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, "/api/law-firms", h.GetLawFirms)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []publicLawFirm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Trademark Legal Partners LLP", out[0].Name)
}

func TestGetAttorneys(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, "/api/attorneys", h.GetAttorneys)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []publicAttorney
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 3)
	assert.Equal(t, "John Smith", out[0].Name)
	require.NotNil(t, out[0].LawFirmID)
	assert.Equal(t, uint64(1), *out[0].LawFirmID)
}

func TestGetTrademarkDetail(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, "/api/trademarks/1", h.GetTrademark, "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var out trademarkView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, uint64(1), out.ID)
	assert.Equal(t, "NIKE", out.Name)
	assert.Equal(t, "Nike, Inc.", out.Owner.Name)
	require.NotNil(t, out.FilingDate)
	assert.Equal(t, "2022-01-15", *out.FilingDate)
	assert.Equal(t, []int{25, 28}, out.Classifications)
	require.Len(t, out.ClassificationDetails, 2)
	assert.Equal(t, "Class 25: Clothing", out.ClassificationDetails[0].Name)
}

func TestGetTrademarkNotFound(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, "/api/trademarks/999", h.GetTrademark, "id", "999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTrademarkInvalidID(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, "/api/trademarks/abc", h.GetTrademark, "id", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
