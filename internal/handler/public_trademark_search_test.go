package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchURL(params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return "/api/search?" + q.Encode()
}

func TestSearchDefaults(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, "/api/search", h.SearchTrademarks)
	require.Equal(t, http.StatusOK, rec.Code)

	var out searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 4, out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.PerPage)
	assert.Equal(t, "", out.Query)
	require.Len(t, out.Trademarks, 4)
	assert.Equal(t, "NIKE", out.Trademarks[0].Name)
}

func TestSearchByQuery(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, searchURL(map[string]string{"query": "air"}), h.SearchTrademarks)
	require.Equal(t, http.StatusOK, rec.Code)

	var out searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "air", out.Query)
	require.Len(t, out.Trademarks, 1)
	assert.Equal(t, "AIR JORDAN", out.Trademarks[0].Name)
}

func TestSearchSortAndPaging(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, searchURL(map[string]string{
		"sortBy": "name-asc", "page": "2", "perPage": "2",
	}), h.SearchTrademarks)
	require.Equal(t, http.StatusOK, rec.Code)

	var out searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 4, out.Total)
	assert.Equal(t, 2, out.Page)
	require.Len(t, out.Trademarks, 2)
	assert.Equal(t, "MICROSOFT", out.Trademarks[0].Name)
	assert.Equal(t, "NIKE", out.Trademarks[1].Name)
}

func TestSearchFilingDateFilters(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, searchURL(map[string]string{
		"filingDateFrom": "2021-01-01",
		"filingDateTo":   "2021-12-31",
	}), h.SearchTrademarks)
	require.Equal(t, http.StatusOK, rec.Code)

	var out searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Trademarks, 1)
	assert.Equal(t, "APPLE", out.Trademarks[0].Name)
}

func TestSearchRejectsUnknownSortBy(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, searchURL(map[string]string{"sortBy": "alphabetical"}), h.SearchTrademarks)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchRejectsUnknownStatusFilter(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, searchURL(map[string]string{"statusFilter": "Live"}), h.SearchTrademarks)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchRejectsMalformedDates(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, searchURL(map[string]string{"filingDateFrom": "01/15/2022"}), h.SearchTrademarks)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGET(t, searchURL(map[string]string{"filingDateTo": "soon"}), h.SearchTrademarks)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchClampsPagination(t *testing.T) {
	h := seededHandler(t)

	rec := doGET(t, searchURL(map[string]string{"page": "-3", "perPage": "0"}), h.SearchTrademarks)
	require.Equal(t, http.StatusOK, rec.Code)

	var out searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.PerPage)
}
