// Package cataloghandler exposes CRUD for the reference catalogs and the
// holiday import trigger.
package cataloghandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adeia/internal/catalog"
	"adeia/internal/holidays"
	"adeia/internal/transport/http/api"
)

// Import years are bounded before the collaborator is invoked.
const (
	minImportYear = 2020
	maxImportYear = 2030
)

type Handler struct {
	Store *catalog.Store
}

func NewHandler(store *catalog.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave-types", func(r chi.Router) {
		r.Get("/", h.handleListLeaveTypes)
		r.Post("/", h.handleAddLeaveType)
		r.Put("/{typeID}", h.handleUpdateLeaveType)
		r.Delete("/{typeID}", h.handleDeleteLeaveType)
	})
	r.Route("/offices", func(r chi.Router) {
		r.Get("/", h.handleListOffices)
		r.Post("/", h.handleAddOffice)
		r.Put("/{officeID}", h.handleUpdateOffice)
		r.Delete("/{officeID}", h.handleDeleteOffice)
	})
	r.Route("/holidays", func(r chi.Router) {
		r.Get("/", h.handleListHolidays)
		r.Post("/", h.handleAddHoliday)
		r.Post("/import", h.handleImportHolidays)
		r.Put("/{holidayID}", h.handleUpdateHoliday)
		r.Delete("/{holidayID}", h.handleDeleteHoliday)
	})
	r.Route("/settings", func(r chi.Router) {
		r.Get("/exclusions", h.handleGetExclusions)
		r.Put("/exclusions", h.handleSetExclusions)
	})
}

func (h *Handler) handleListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	api.Success(w, r, h.Store.LeaveTypes())
}

func (h *Handler) handleAddLeaveType(w http.ResponseWriter, r *http.Request) {
	var payload catalog.LeaveType
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "invalid payload")
		return
	}
	if payload.Label == "" || payload.Group == "" || payload.GroupIndex <= 0 {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "label, group and positive groupIndex are required")
		return
	}
	created, err := h.Store.AddLeaveType(r.Context(), payload)
	if err != nil {
		h.failStore(w, r, err, "failed to add leave type")
		return
	}
	api.Created(w, r, created)
}

func (h *Handler) handleUpdateLeaveType(w http.ResponseWriter, r *http.Request) {
	var payload catalog.LeaveType
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "invalid payload")
		return
	}
	payload.ID = chi.URLParam(r, "typeID")
	if err := h.Store.UpdateLeaveType(r.Context(), payload); err != nil {
		h.failStore(w, r, err, "failed to update leave type")
		return
	}
	api.Success(w, r, payload)
}

func (h *Handler) handleDeleteLeaveType(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteLeaveType(r.Context(), chi.URLParam(r, "typeID")); err != nil {
		h.failStore(w, r, err, "failed to delete leave type")
		return
	}
	api.Success(w, r, nil)
}

func (h *Handler) handleListOffices(w http.ResponseWriter, r *http.Request) {
	api.Success(w, r, h.Store.Offices())
}

func (h *Handler) handleAddOffice(w http.ResponseWriter, r *http.Request) {
	var payload catalog.ProsecutorOffice
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "invalid payload")
		return
	}
	if payload.Name == "" {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "name is required")
		return
	}
	created, err := h.Store.AddOffice(r.Context(), payload)
	if err != nil {
		h.failStore(w, r, err, "failed to add office")
		return
	}
	api.Created(w, r, created)
}

func (h *Handler) handleUpdateOffice(w http.ResponseWriter, r *http.Request) {
	var payload catalog.ProsecutorOffice
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "invalid payload")
		return
	}
	payload.ID = chi.URLParam(r, "officeID")
	if err := h.Store.UpdateOffice(r.Context(), payload); err != nil {
		h.failStore(w, r, err, "failed to update office")
		return
	}
	api.Success(w, r, payload)
}

func (h *Handler) handleDeleteOffice(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteOffice(r.Context(), chi.URLParam(r, "officeID")); err != nil {
		h.failStore(w, r, err, "failed to delete office")
		return
	}
	api.Success(w, r, nil)
}

func (h *Handler) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	api.Success(w, r, h.Store.Holidays())
}

func (h *Handler) handleAddHoliday(w http.ResponseWriter, r *http.Request) {
	var payload catalog.Holiday
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "invalid payload")
		return
	}
	if payload.Date == "" || payload.Name == "" {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "date and name are required")
		return
	}
	created, err := h.Store.AddHoliday(r.Context(), payload)
	if err != nil {
		h.failStore(w, r, err, "failed to add holiday")
		return
	}
	api.Created(w, r, created)
}

func (h *Handler) handleUpdateHoliday(w http.ResponseWriter, r *http.Request) {
	var payload catalog.Holiday
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "invalid payload")
		return
	}
	payload.ID = chi.URLParam(r, "holidayID")
	if err := h.Store.UpdateHoliday(r.Context(), payload); err != nil {
		h.failStore(w, r, err, "failed to update holiday")
		return
	}
	api.Success(w, r, payload)
}

func (h *Handler) handleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteHoliday(r.Context(), chi.URLParam(r, "holidayID")); err != nil {
		h.failStore(w, r, err, "failed to delete holiday")
		return
	}
	api.Success(w, r, nil)
}

func (h *Handler) handleImportHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < minImportYear || year > maxImportYear {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "year must be between 2020 and 2030")
		return
	}

	added, err := h.Store.ImportHolidays(r.Context(), year)
	if err != nil {
		var importErr *holidays.ImportError
		if errors.As(err, &importErr) {
			slog.Warn("holiday import failed", "year", year, "err", err)
			api.Fail(w, r, http.StatusBadGateway, "import_failed", importErr.Error())
			return
		}
		h.failStore(w, r, err, "failed to import holidays")
		return
	}
	api.Success(w, r, map[string]any{"year": year, "added": added})
}

func (h *Handler) handleGetExclusions(w http.ResponseWriter, r *http.Request) {
	api.Success(w, r, map[string]bool{"excludeHolidaysAndWeekends": h.Store.ExcludeWeekends()})
}

func (h *Handler) handleSetExclusions(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ExcludeHolidaysAndWeekends bool `json:"excludeHolidaysAndWeekends"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "invalid payload")
		return
	}
	if err := h.Store.SetExcludeWeekends(r.Context(), payload.ExcludeHolidaysAndWeekends); err != nil {
		h.failStore(w, r, err, "failed to update exclusions")
		return
	}
	api.Success(w, r, payload)
}

func (h *Handler) failStore(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		api.Fail(w, r, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, catalog.ErrDuplicateGroupIndex):
		api.Fail(w, r, http.StatusConflict, "duplicate_group_index", err.Error())
	default:
		slog.Error("catalog operation failed", "err", err)
		api.Fail(w, r, http.StatusInternalServerError, "catalog_failed", message)
	}
}
