package catalog

import "context"

// Snapshot is the full persisted state of the reference catalogs. The three
// lists are stored as independent keyed blobs, one per entity type.
type Snapshot struct {
	LeaveTypes      []LeaveType        `json:"leaveTypes"`
	Offices         []ProsecutorOffice `json:"offices"`
	Holidays        []Holiday          `json:"holidays"`
	ExcludeWeekends bool               `json:"excludeHolidaysAndWeekends"`
}

// Port is the persistence boundary of the store. Load reports ok=false when
// no usable settings exist; corrupt data is treated as absent, not as an
// error. Save replaces the persisted state wholesale.
type Port interface {
	Load(ctx context.Context) (snap Snapshot, ok bool, err error)
	Save(ctx context.Context, snap Snapshot) error
}

// HolidayFetcher is the external holiday-import collaborator. FetchYear
// returns zero or more holidays for the given calendar year, or an error
// when the fetch/parse step fails.
type HolidayFetcher interface {
	FetchYear(ctx context.Context, year int) ([]Holiday, error)
}
