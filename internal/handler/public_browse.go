// Package handler exposes the HTTP handlers for the trademark search
// API. All routes are public; responses use dedicated structs so the
// wire format stays stable regardless of how the repository models
// evolve.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/brandvault/trademark-search/internal/model"
	"github.com/brandvault/trademark-search/internal/repository"
)

// PublicHandler aggregates the store handle needed by the browse and
// search endpoints. The store is injected explicitly; there is no
// process-wide singleton.
type PublicHandler struct {
	Store *repository.Store
}

// NewPublicHandler wires a PublicHandler to the given store.
func NewPublicHandler(s *repository.Store) *PublicHandler {
	return &PublicHandler{Store: s}
}

// publicOwner is an owner row as exposed by the API.
type publicOwner struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// publicLawFirm is a law firm row as exposed by the API.
type publicLawFirm struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// publicAttorney is an attorney row as exposed by the API. LawFirmID is
// omitted for independent attorneys.
type publicAttorney struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	LawFirmID *uint64 `json:"lawFirmId,omitempty"`
}

// trademarkView is the denormalized trademark response, the resolved
// owner always present, attorney and law firm nullable. Classifications
// carries the raw class IDs; ClassificationDetails resolves them
// against the fixed catalog so clients can render badges.
type trademarkView struct {
	ID                    uint64                 `json:"id"`
	Name                  string                 `json:"name"`
	SerialNumber          string                 `json:"serialNumber"`
	Description           string                 `json:"description"`
	FilingDate            *string                `json:"filingDate"`
	RegistrationDate      *string                `json:"registrationDate"`
	StatusID              int                    `json:"statusId"`
	OwnerID               uint64                 `json:"ownerId"`
	AttorneyID            *uint64                `json:"attorneyId"`
	LawFirmID             *uint64                `json:"lawFirmId"`
	SearchCount           int                    `json:"searchCount"`
	Owner                 publicOwner            `json:"owner"`
	Attorney              *publicAttorney        `json:"attorney"`
	LawFirm               *publicLawFirm         `json:"lawFirm"`
	Classifications       []int                  `json:"classifications"`
	ClassificationDetails []model.Classification `json:"classificationDetails"`
}

// newTrademarkView maps a repository detail into the response shape.
func newTrademarkView(d model.TrademarkDetail) trademarkView {
	v := trademarkView{
		ID:               d.ID,
		Name:             d.Name,
		SerialNumber:     d.SerialNumber,
		Description:      d.Description,
		FilingDate:       formatDate(d.FilingDate),
		RegistrationDate: formatDate(d.RegistrationDate),
		StatusID:         d.StatusID,
		OwnerID:          d.OwnerID,
		AttorneyID:       d.AttorneyID,
		LawFirmID:        d.LawFirmID,
		SearchCount:      d.SearchCount,
		Owner:            publicOwner{ID: d.Owner.ID, Name: d.Owner.Name, Address: d.Owner.Address},
		Classifications:  d.Classifications,
	}
	if d.Attorney != nil {
		v.Attorney = &publicAttorney{ID: d.Attorney.ID, Name: d.Attorney.Name, LawFirmID: d.Attorney.LawFirmID}
	}
	if d.LawFirm != nil {
		v.LawFirm = &publicLawFirm{ID: d.LawFirm.ID, Name: d.LawFirm.Name, Address: d.LawFirm.Address}
	}
	v.ClassificationDetails = make([]model.Classification, 0, len(d.Classifications))
	for _, id := range d.Classifications {
		if c := model.ClassificationByID(id); c != nil {
			v.ClassificationDetails = append(v.ClassificationDetails, *c)
		}
	}
	return v
}

// formatDate renders an optional date as an ISO calendar day string.
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// GetOwners returns all owners for the filter dropdown.
func (h *PublicHandler) GetOwners(c echo.Context) error {
	owners := h.Store.AllOwners()
	out := make([]publicOwner, 0, len(owners))
	for _, o := range owners {
		out = append(out, publicOwner{ID: o.ID, Name: o.Name, Address: o.Address})
	}
	return c.JSON(http.StatusOK, out)
}

// GetLawFirms returns all law firms for the filter dropdown.
func (h *PublicHandler) GetLawFirms(c echo.Context) error {
	firms := h.Store.AllLawFirms()
	out := make([]publicLawFirm, 0, len(firms))
	for _, f := range firms {
		out = append(out, publicLawFirm{ID: f.ID, Name: f.Name, Address: f.Address})
	}
	return c.JSON(http.StatusOK, out)
}

// GetAttorneys returns all attorneys for the filter dropdown.
func (h *PublicHandler) GetAttorneys(c echo.Context) error {
	attorneys := h.Store.AllAttorneys()
	out := make([]publicAttorney, 0, len(attorneys))
	for _, a := range attorneys {
		out = append(out, publicAttorney{ID: a.ID, Name: a.Name, LawFirmID: a.LawFirmID})
	}
	return c.JSON(http.StatusOK, out)
}

// GetTrademark returns the detail view of a single trademark. A
// non-numeric ID is a 400; an ID that does not resolve (including one
// whose owner reference is broken) is a 404.
func (h *PublicHandler) GetTrademark(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid trademark ID"})
	}
	d, err := h.Store.TrademarkByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Trademark not found"})
	}
	return c.JSON(http.StatusOK, newTrademarkView(d))
}
