// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/gradebook/changelog"
	"github.com/danielhkuo/gradebook/middleware"
	"github.com/danielhkuo/gradebook/models"
)

const (
	defaultChangeLimit = 50
	maxChangeLimit     = 500
)

// ChangeLister reads back stored change records, newest first.
type ChangeLister interface {
	Recent(limit int) ([]changelog.Entry, error)
}

type ChangeHandler struct {
	changes ChangeLister
}

// NewChangeHandler accepts a nil lister when no database is configured.
func NewChangeHandler(changes ChangeLister) *ChangeHandler {
	return &ChangeHandler{changes: changes}
}

// ListChanges handles GET /api/changes?limit=
func (h *ChangeHandler) ListChanges(w http.ResponseWriter, r *http.Request) {
	if h.changes == nil {
		middleware.ErrorResponse(w, http.StatusNotImplemented, "Change history requires a database")
		return
	}

	limit := defaultChangeLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(v, maxChangeLimit)
	}

	entries, err := h.changes.Recent(limit)
	if err != nil {
		slog.Error("failed to load change records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	changes := make([]models.ChangeEntry, 0, len(entries))
	for _, e := range entries {
		changes = append(changes, models.ChangeEntry{
			ID:          e.ID,
			Timestamp:   e.Timestamp,
			Ago:         humanize.Time(e.Timestamp),
			StudentID:   e.StudentID,
			StudentName: e.StudentName,
			Action:      string(e.Action),
			Subject:     e.Subject,
			Score:       e.Score,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChangeListResponse{Changes: changes})
}
