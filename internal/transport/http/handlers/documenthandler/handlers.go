// Package documenthandler turns a submitted leave application into the three
// output formats: screen preview, print page and PDF. Generation is stateless;
// every request carries the full form payload.
package documenthandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adeia/internal/application"
	"adeia/internal/catalog"
	"adeia/internal/document"
	"adeia/internal/document/render/html"
	"adeia/internal/document/render/pdf"
	"adeia/internal/leave"
	"adeia/internal/transport/http/api"
)

const dateLayout = "2006-01-02"

type Handler struct {
	Builder *application.Builder
	PDF     *pdf.Renderer

	// Now is swappable for deterministic tests.
	Now func() time.Time
}

func NewHandler(builder *application.Builder, renderer *pdf.Renderer) *Handler {
	return &Handler{
		Builder: builder,
		PDF:     renderer,
		Now:     time.Now,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Post("/layout", h.handleLayout)
		r.Post("/preview", h.handlePreview)
		r.Post("/print", h.handlePrint)
		r.Post("/pdf", h.handlePDF)
	})
}

// applicationRequest is the wire form of a leave application. Dates travel as
// "YYYY-MM-DD" strings; empty means unset.
type applicationRequest struct {
	OfficeID         string   `json:"officeId"`
	LeaveTypeID      string   `json:"leaveTypeId"`
	ApplicantName    string   `json:"applicantName"`
	ApplicantService string   `json:"applicantService"`
	ApplicantGender  string   `json:"applicantGender"`
	Reason           string   `json:"reason"`
	DateFrom         string   `json:"dateFrom"`
	DateTo           string   `json:"dateTo"`
	DateRequest      string   `json:"dateRequest"`
	Attachments      []string `json:"attachments"`

	ContactAddress    string `json:"contactAddress"`
	ContactPostalCode string `json:"contactPostalCode"`
	ContactPhone      string `json:"contactPhone"`
	ContactEmail      string `json:"contactEmail"`
}

func (p applicationRequest) toApplication() (application.LeaveApplication, error) {
	app := application.LeaveApplication{
		OfficeID:          p.OfficeID,
		LeaveTypeID:       p.LeaveTypeID,
		ApplicantName:     p.ApplicantName,
		ApplicantService:  p.ApplicantService,
		Reason:            p.Reason,
		Attachments:       p.Attachments,
		ContactAddress:    p.ContactAddress,
		ContactPostalCode: p.ContactPostalCode,
		ContactPhone:      p.ContactPhone,
		ContactEmail:      p.ContactEmail,
	}

	switch p.ApplicantGender {
	case "", string(catalog.GenderMale), string(catalog.GenderFemale):
		app.ApplicantGender = catalog.Gender(p.ApplicantGender)
	default:
		return application.LeaveApplication{}, fmt.Errorf("applicantGender must be %q or %q", catalog.GenderMale, catalog.GenderFemale)
	}

	var err error
	if app.DateFrom, err = parseDate(p.DateFrom); err != nil {
		return application.LeaveApplication{}, fmt.Errorf("dateFrom: %w", err)
	}
	if app.DateTo, err = parseDate(p.DateTo); err != nil {
		return application.LeaveApplication{}, fmt.Errorf("dateTo: %w", err)
	}
	if app.DateRequest, err = parseDate(p.DateRequest); err != nil {
		return application.LeaveApplication{}, fmt.Errorf("dateRequest: %w", err)
	}
	return app, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}

func (h *Handler) buildDocument(w http.ResponseWriter, r *http.Request) (document.Document, bool) {
	var payload applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", "invalid payload")
		return document.Document{}, false
	}
	app, err := payload.toApplication()
	if err != nil {
		api.Fail(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return document.Document{}, false
	}
	resolved, err := h.Builder.Build(app, h.Now())
	if err != nil {
		if errors.Is(err, leave.ErrInvalidRange) {
			api.Fail(w, r, http.StatusBadRequest, "invalid_range", err.Error())
			return document.Document{}, false
		}
		slog.Error("document build failed", "err", err)
		api.Fail(w, r, http.StatusInternalServerError, "build_failed", "failed to build document")
		return document.Document{}, false
	}
	return document.Build(resolved), true
}

func (h *Handler) handleLayout(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildDocument(w, r)
	if !ok {
		return
	}
	api.Success(w, r, doc)
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildDocument(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := html.Preview(&buf, doc); err != nil {
		slog.Error("preview render failed", "err", err)
		api.Fail(w, r, http.StatusInternalServerError, "render_failed", "failed to render preview")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) handlePrint(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildDocument(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := html.Print(&buf, doc); err != nil {
		slog.Error("print render failed", "err", err)
		api.Fail(w, r, http.StatusInternalServerError, "render_failed", "failed to render print page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildDocument(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.PDF.Render(&buf, doc); err != nil {
		slog.Error("pdf render failed", "err", err)
		api.Fail(w, r, http.StatusInternalServerError, "render_failed", "failed to render pdf")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename))
	_, _ = buf.WriteTo(w)
}
