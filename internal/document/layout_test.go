package document

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"adeia/internal/application"
	"adeia/internal/catalog"
)

func fullResolved() application.Resolved {
	office := catalog.ProsecutorOffice{
		ID: "4", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΑΘΗΝΩΝ",
		Address: "Λ. Αλεξάνδρας 132", PostalCode: "11521",
		Phone: "2106404000", Email: "eisaggeleas@athens.gr",
		City: "ΑΘΗΝΑ", HasProsecutor: true, HeadGender: catalog.GenderMale,
	}
	lt := catalog.LeaveType{ID: "A1", Label: "Κανονική άδεια", Code: "αρ. 49 του ν. 3528/2007", Group: catalog.GroupA, GroupIndex: 1}
	return application.Resolved{
		App: application.LeaveApplication{
			OfficeID:         "4",
			LeaveTypeID:      "A1",
			ApplicantName:    "ΠΑΠΑΔΟΠΟΥΛΟΥ ΜΑΡΙΑ",
			ApplicantService: "ΤΜΗΜΑ ΔΙΟΙΚΗΣΗΣ",
			ApplicantGender:  catalog.GenderFemale,
			Reason:           "Οικογενειακοί λόγοι",
			DateFrom:         time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			DateTo:           time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
			DateRequest:      time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		Office:        &office,
		LeaveType:     &lt,
		LeaveTypeName: "A.1] Κανονική άδεια",
		LeaveTypeCode: "αρ. 49 του ν. 3528/2007",
		DaysCount:     5,
		DaysSet:       true,
	}
}

func TestBuildFullDocument(t *testing.T) {
	doc := Build(fullResolved())

	if doc.Title != "ΑΙΤΗΣΗ ΑΔΕΙΑΣ" {
		t.Fatalf("title = %q", doc.Title)
	}
	if doc.OfficeName != "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΑΘΗΝΩΝ" {
		t.Fatalf("office name = %q", doc.OfficeName)
	}
	if doc.IssueDate != "01/03/2025" {
		t.Fatalf("issue date = %q", doc.IssueDate)
	}
	if doc.ProtocolValue != "_______" {
		t.Fatalf("protocol = %q", doc.ProtocolValue)
	}

	wantFields := []Field{
		{Label: "ΟΝΟΜΑΤΕΠΩΝΥΜΟ ΥΠΑΛΛΗΛΟΥ:", Lines: []string{"ΠΑΠΑΔΟΠΟΥΛΟΥ ΜΑΡΙΑ"}},
		{Label: "ΥΠΗΡΕΣΙΑ ΣΤΗΝ ΟΠΟΙΑ ΥΠΗΡΕΤΕΙ:", Lines: []string{"ΤΜΗΜΑ ΔΙΟΙΚΗΣΗΣ"}},
		{Label: "ΕΙΔΟΣ ΑΔΕΙΑΣ:", Lines: []string{"A.1] Κανονική άδεια (αρ. 49 του ν. 3528/2007)"}},
		{Label: "ΛΟΓΟΙ:", Lines: []string{"Οικογενειακοί λόγοι"}},
		{Label: "ΔΙΑΡΚΕΙΑ:", Lines: []string{"ΑΠΟ 10/03/2025 ΕΩΣ 14/03/2025", "(Σύνολο ημερών: 5)"}},
	}
	if diff := cmp.Diff(wantFields, doc.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	wantSig := Signatures{
		AgreeLabel:     "ΣΥΜΦΩΝΩ",
		HeadTitle:      "Ο Κ. ΕΙΣΑΓΓΕΛΕΑΣ",
		ApplicantTitle: "Η ΑΙΤΟΥΣΑ",
		DepartmentHead: []string{"Ο/Η ΠΡΟΪΣΤΑΜ.........", "ΤΟΥ ΤΜΗΜΑΤΟΣ"},
		PlaceDate:      "ΑΘΗΝΑ, 01/03/2025",
	}
	if diff := cmp.Diff(wantSig, doc.Signatures); diff != "" {
		t.Fatalf("signatures mismatch (-want +got):\n%s", diff)
	}

	if doc.Attachments != nil {
		t.Fatal("no attachments expected")
	}
}

func TestBuildEmptyApplicationUsesPlaceholders(t *testing.T) {
	doc := Build(application.Resolved{
		App: application.LeaveApplication{
			DateRequest: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	})

	if doc.OfficeName != Placeholder {
		t.Fatalf("office name = %q, want placeholder", doc.OfficeName)
	}
	if doc.OfficeDetails != nil {
		t.Fatalf("office details = %v, want none", doc.OfficeDetails)
	}
	if doc.ContactDetails != nil {
		t.Fatalf("contact details = %v, want none", doc.ContactDetails)
	}

	// The service field is omitted entirely when not collected, and with no
	// date range there is no total-days line to show.
	wantFields := []Field{
		{Label: "ΟΝΟΜΑΤΕΠΩΝΥΜΟ ΥΠΑΛΛΗΛΟΥ:", Lines: []string{Placeholder}},
		{Label: "ΕΙΔΟΣ ΑΔΕΙΑΣ:", Lines: []string{Placeholder}},
		{Label: "ΛΟΓΟΙ:", Lines: []string{Placeholder}},
		{Label: "ΔΙΑΡΚΕΙΑ:", Lines: []string{"ΑΠΟ ... ΕΩΣ ..."}},
	}
	if diff := cmp.Diff(wantFields, doc.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	if doc.Signatures.HeadTitle != "Ο Κ. ΠΡΟΕΔΡΟΣ" {
		t.Fatalf("head title = %q", doc.Signatures.HeadTitle)
	}
	if doc.Signatures.ApplicantTitle != "Ο ΑΙΤΩΝ" {
		t.Fatalf("applicant title = %q", doc.Signatures.ApplicantTitle)
	}
	if doc.Signatures.PlaceDate != "ΑΘΗΝΑ, 01/03/2025" {
		t.Fatalf("place date = %q", doc.Signatures.PlaceDate)
	}
}

func TestHeadTitleMatrix(t *testing.T) {
	tests := []struct {
		name   string
		office *catalog.ProsecutorOffice
		want   string
	}{
		{"male prosecutor", &catalog.ProsecutorOffice{HasProsecutor: true, HeadGender: catalog.GenderMale}, "Ο Κ. ΕΙΣΑΓΓΕΛΕΑΣ"},
		{"female prosecutor", &catalog.ProsecutorOffice{HasProsecutor: true, HeadGender: catalog.GenderFemale}, "Η Κ. ΕΙΣΑΓΓΕΛΕΑΣ"},
		{"male president", &catalog.ProsecutorOffice{HasProsecutor: false, HeadGender: catalog.GenderMale}, "Ο Κ. ΠΡΟΕΔΡΟΣ"},
		{"female president", &catalog.ProsecutorOffice{HasProsecutor: false, HeadGender: catalog.GenderFemale}, "Η Κ. ΠΡΟΕΔΡΟΣ"},
		{"unresolved office", nil, "Ο Κ. ΠΡΟΕΔΡΟΣ"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := Build(application.Resolved{Office: tc.office})
			if doc.Signatures.HeadTitle != tc.want {
				t.Fatalf("head title = %q, want %q", doc.Signatures.HeadTitle, tc.want)
			}
		})
	}
}

func TestDurationDistinguishesUnsetFromComputedZero(t *testing.T) {
	duration := func(doc Document) Field {
		for _, f := range doc.Fields {
			if f.Label == "ΔΙΑΡΚΕΙΑ:" {
				return f
			}
		}
		t.Fatal("duration field missing")
		return Field{}
	}

	unset := Build(application.Resolved{})
	if diff := cmp.Diff([]string{"ΑΠΟ ... ΕΩΣ ..."}, duration(unset).Lines); diff != "" {
		t.Fatalf("unset range mismatch (-want +got):\n%s", diff)
	}

	// A weekend-only span with exclusion on computes to zero working days;
	// that zero must render, unlike the unset case above.
	zero := Build(application.Resolved{
		App: application.LeaveApplication{
			DateFrom: time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC),
			DateTo:   time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
		DaysCount: 0,
		DaysSet:   true,
	})
	want := []string{"ΑΠΟ 04/01/2025 ΕΩΣ 05/01/2025", "(Σύνολο ημερών: 0)"}
	if diff := cmp.Diff(want, duration(zero).Lines); diff != "" {
		t.Fatalf("computed zero mismatch (-want +got):\n%s", diff)
	}
}

func TestContactDetailsPadMissingEntries(t *testing.T) {
	doc := Build(application.Resolved{
		App: application.LeaveApplication{ContactPhone: "2101234567"},
	})

	want := []string{
		"Ταχ. Διεύθυνση: ...",
		"Ταχ. Κώδικας: ...",
		"Τηλέφωνο: 2101234567",
		"Email: ...",
	}
	if diff := cmp.Diff(want, doc.ContactDetails); diff != "" {
		t.Fatalf("contact details mismatch (-want +got):\n%s", diff)
	}
}

func TestAttachmentsKeepOrder(t *testing.T) {
	res := fullResolved()
	res.App.Attachments = []string{"Ιατρική γνωμάτευση", "Υπεύθυνη δήλωση"}

	doc := Build(res)
	if doc.Attachments == nil {
		t.Fatal("attachments expected")
	}
	if doc.Attachments.Title != "ΣΥΝΗΜΜΕΝΑ ΕΓΓΡΑΦΑ:" {
		t.Fatalf("attachments title = %q", doc.Attachments.Title)
	}
	want := []string{"Ιατρική γνωμάτευση", "Υπεύθυνη δήλωση"}
	if diff := cmp.Diff(want, doc.Attachments.Items); diff != "" {
		t.Fatalf("attachments mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	res := fullResolved()
	first := Build(res)
	second := Build(res)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated build differs (-first +second):\n%s", diff)
	}
}
