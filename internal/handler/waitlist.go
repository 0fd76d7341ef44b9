package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/brandvault/trademark-search/internal/queue"
	"github.com/brandvault/trademark-search/internal/repository"
	queue_publisher "github.com/brandvault/trademark-search/internal/service"
)

// WaitlistHandler bundles the store handle for waitlist signups.
type WaitlistHandler struct {
	Store *repository.Store
}

// NewWaitlistHandler wires a WaitlistHandler to the given store.
func NewWaitlistHandler(s *repository.Store) *WaitlistHandler {
	return &WaitlistHandler{Store: s}
}

type joinWaitlistReq struct {
	Email string `json:"email"`
}

// Join adds an email to the waitlist. Email shape is validated here;
// the store only enforces uniqueness. A duplicate email yields 409.
// On success a waitlist.joined event is published in the background so
// a broker outage never blocks the signup.
func (h *WaitlistHandler) Join(c echo.Context) error {
	var req joinWaitlistReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "a valid email is required"})
	}

	entry, err := h.Store.JoinWaitlist(email)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"message": "This email is already on the waitlist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to add to waitlist"})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishWaitlistJoined(ctx, queue.WaitlistJoinedEvent{
			EntryID:  entry.ID,
			Email:    entry.Email,
			JoinedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully added to waitlist", "id": entry.ID})
}
