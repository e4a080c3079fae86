package catalog

// Gender selects the grammatical form of generated titles.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// LeaveGroup is the closed enumeration of leave-type groups.
type LeaveGroup string

const (
	GroupA LeaveGroup = "A"
	GroupB LeaveGroup = "B"
)

// LeaveType is a categorized reason for requesting leave. The display code
// prefix is composed as "{Group}.{GroupIndex}" and (Group, GroupIndex) pairs
// are unique across the catalog.
type LeaveType struct {
	ID                         string     `json:"id"`
	Label                      string     `json:"label"`
	Code                       string     `json:"code"`
	Group                      LeaveGroup `json:"group"`
	GroupIndex                 int        `json:"groupIndex"`
	ExcludeHolidaysAndWeekends *bool      `json:"excludeHolidaysAndWeekends,omitempty"`
	RequiredDocuments          []string   `json:"requiredDocuments,omitempty"`
}

// ProsecutorOffice is the issuing/approving administrative unit of an
// application. HasProsecutor selects the signatory role, HeadGender its
// grammatical gender.
type ProsecutorOffice struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	PostalCode    string `json:"postalCode"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	City          string `json:"city"`
	HasProsecutor bool   `json:"hasProsecutor"`
	HeadGender    Gender `json:"headGender"`
}

// Holiday is a non-working day. Date is kept as the literal string the entry
// was created with: "2006-01-02" for year-specific holidays, and the same
// form (or a bare "01-02" month-day) for fixed ones. IsFixed marks a holiday
// recurring every year on the same month-day.
type Holiday struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsFixed     bool   `json:"isFixed"`
}
