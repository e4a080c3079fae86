// Package application assembles a normalized leave application from raw form
// values and the current reference catalogs.
package application

import (
	"fmt"
	"time"

	"adeia/internal/catalog"
	"adeia/internal/leave"
)

// LeaveApplication is the raw form state of one document-generation action.
// It is built fresh per action and never persisted. Zero date values mean the
// field was left unset.
type LeaveApplication struct {
	OfficeID         string
	LeaveTypeID      string
	ApplicantName    string
	ApplicantService string
	ApplicantGender  catalog.Gender
	Reason           string
	DateFrom         time.Time
	DateTo           time.Time
	Attachments      []string
	DateRequest      time.Time

	// Contact fields collected by one variant of the form.
	ContactAddress    string
	ContactPostalCode string
	ContactPhone      string
	ContactEmail      string
}

// Resolved is a LeaveApplication joined with its catalog references and the
// derived display values. Office and LeaveType are nil when the ids do not
// resolve; renderers substitute placeholders instead of failing.
type Resolved struct {
	App       LeaveApplication
	Office    *catalog.ProsecutorOffice
	LeaveType *catalog.LeaveType

	// LeaveTypeName is "{group}.{groupIndex}] {label}", empty when unresolved.
	LeaveTypeName string
	LeaveTypeCode string

	// DaysCount is valid only when DaysSet is true. A computed zero (range
	// entirely on excluded days) is distinct from an unset date range.
	DaysCount int
	DaysSet   bool
}

// Catalog is the reference-data surface the builder needs.
type Catalog interface {
	OfficeByID(id string) (catalog.ProsecutorOffice, bool)
	LeaveTypeByID(id string) (catalog.LeaveType, bool)
	Holidays() []catalog.Holiday
	ExcludeWeekends() bool
}

type Builder struct {
	Catalog Catalog
}

func NewBuilder(c Catalog) *Builder {
	return &Builder{Catalog: c}
}

// Build resolves catalog references and computes the day count. Unresolved
// office or leave-type ids are not errors; an inverted date range is.
func (b *Builder) Build(app LeaveApplication, now time.Time) (Resolved, error) {
	if app.DateRequest.IsZero() {
		app.DateRequest = now
	}

	res := Resolved{App: app}

	if office, ok := b.Catalog.OfficeByID(app.OfficeID); ok {
		res.Office = &office
	}
	if lt, ok := b.Catalog.LeaveTypeByID(app.LeaveTypeID); ok {
		res.LeaveType = &lt
		res.LeaveTypeName = fmt.Sprintf("%s.%d] %s", lt.Group, lt.GroupIndex, lt.Label)
		res.LeaveTypeCode = lt.Code
	}

	if app.DateFrom.IsZero() || app.DateTo.IsZero() {
		return res, nil
	}

	exclude := b.Catalog.ExcludeWeekends()
	if res.LeaveType != nil && res.LeaveType.ExcludeHolidaysAndWeekends != nil {
		exclude = *res.LeaveType.ExcludeHolidaysAndWeekends
	}

	var (
		days int
		err  error
	)
	if exclude {
		days, err = leave.CalculateWorkingDays(app.DateFrom, app.DateTo, b.Catalog.Holidays())
	} else {
		days, err = leave.CalculateDays(app.DateFrom, app.DateTo)
	}
	if err != nil {
		return Resolved{}, err
	}
	res.DaysCount = days
	res.DaysSet = true
	return res, nil
}
