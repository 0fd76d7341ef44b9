package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/brandvault/trademark-search/internal/model"
	"github.com/brandvault/trademark-search/internal/repository"
)

// sortValues enumerates the accepted sortBy parameter values. An empty
// parameter falls back to "relevance", which leaves the filtered order
// untouched.
var sortValues = map[string]bool{
	"relevance": true,
	"recent":    true,
	"oldest":    true,
	"name-asc":  true,
	"name-desc": true,
}

type searchResponse struct {
	Trademarks []trademarkView `json:"trademarks"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	Query      string          `json:"query"`
}

// SearchTrademarks parses and validates the query parameters, then runs
// the catalog search. Shape validation happens here so the store never
// sees an out-of-enum sortBy or statusFilter value.
func (h *PublicHandler) SearchTrademarks(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	ownerFilter := strings.TrimSpace(c.QueryParam("ownerFilter"))
	lawFirmFilter := strings.TrimSpace(c.QueryParam("lawFirmFilter"))
	attorneyFilter := strings.TrimSpace(c.QueryParam("attorneyFilter"))
	statusFilter := strings.TrimSpace(c.QueryParam("statusFilter"))
	registrationNumber := strings.TrimSpace(c.QueryParam("registrationNumber"))

	sortBy := strings.TrimSpace(c.QueryParam("sortBy"))
	if sortBy == "" {
		sortBy = "relevance"
	}
	if !sortValues[sortBy] {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid sortBy value"})
	}
	if statusFilter != "" && !model.ValidStatusName(statusFilter) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid statusFilter value"})
	}

	from, err := parseDateParam(c.QueryParam("filingDateFrom"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid filingDateFrom date"})
	}
	to, err := parseDateParam(c.QueryParam("filingDateTo"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid filingDateTo date"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.QueryParam("perPage"))
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	res := h.Store.SearchTrademarks(repository.TrademarkSearchQuery{
		Query:              query,
		OwnerFilter:        ownerFilter,
		LawFirmFilter:      lawFirmFilter,
		AttorneyFilter:     attorneyFilter,
		StatusFilter:       statusFilter,
		FilingDateFrom:     from,
		FilingDateTo:       to,
		RegistrationNumber: registrationNumber,
		SortBy:             sortBy,
		Page:               page,
		PerPage:            perPage,
	})

	out := searchResponse{
		Trademarks: make([]trademarkView, 0, len(res.Trademarks)),
		Total:      res.Total,
		Page:       res.Page,
		PerPage:    res.PerPage,
		Query:      res.Query,
	}
	for _, d := range res.Trademarks {
		out.Trademarks = append(out.Trademarks, newTrademarkView(d))
	}
	return c.JSON(http.StatusOK, out)
}

// parseDateParam parses an optional ISO calendar date query parameter.
func parseDateParam(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
