// Package document maps a resolved leave application onto the fixed official
// document shape. The layout built here is the single source of truth for
// every renderer: screen preview, print page and PDF all consume the same
// ordered field list and differ only in output primitives.
package document

import (
	"fmt"

	"adeia/internal/application"
)

// Placeholder substitutes any empty or unresolved value in the rendered
// document.
const Placeholder = "..."

// DateLayout renders all dates as dd/MM/yyyy with 2-digit day and month.
const DateLayout = "02/01/2006"

// Fixed literals of the document. Defined once, never re-derived by a
// renderer.
const (
	Title = "ΑΙΤΗΣΗ ΑΔΕΙΑΣ"

	labelApplicantName = "ΟΝΟΜΑΤΕΠΩΝΥΜΟ ΥΠΑΛΛΗΛΟΥ:"
	labelService       = "ΥΠΗΡΕΣΙΑ ΣΤΗΝ ΟΠΟΙΑ ΥΠΗΡΕΤΕΙ:"
	labelLeaveType     = "ΕΙΔΟΣ ΑΔΕΙΑΣ:"
	labelReason        = "ΛΟΓΟΙ:"
	labelDuration      = "ΔΙΑΡΚΕΙΑ:"

	agreeLabel       = "ΣΥΜΦΩΝΩ"
	attachmentsTitle = "ΣΥΝΗΜΜΕΝΑ ΕΓΓΡΑΦΑ:"
	defaultCity      = "ΑΘΗΝΑ"

	issueDateLabel = "Ημερομηνία:"
	protocolLabel  = "Αρ. Πρωτ.:"
	protocolBlank  = "_______"
)

// Line is one letterhead or recipient line with an emphasis marker.
type Line struct {
	Text string
	Bold bool
}

// Field is one labeled body entry. Lines holds the value split into display
// lines; most fields carry exactly one.
type Field struct {
	Label string
	Lines []string
}

// Signatures is the two-column signature block. The left column carries the
// approval, the right one the applicant.
type Signatures struct {
	AgreeLabel     string
	HeadTitle      string
	ApplicantTitle string
	DepartmentHead []string
	PlaceDate      string
}

// Attachments is the optional numbered list on its own section. Items keep
// the order they were supplied in.
type Attachments struct {
	Title string
	Items []string
}

// Document is the complete medium-independent content of one application.
type Document struct {
	Letterhead     []Line
	OfficeName     string
	OfficeDetails  []string
	ContactDetails []string
	RecipientLabel string
	Recipient      []string
	IssueDateLabel string
	IssueDate      string
	ProtocolLabel  string
	ProtocolValue  string
	Title          string
	Fields         []Field
	Signatures     Signatures
	Attachments    *Attachments
}

func letterhead() []Line {
	return []Line{
		{Text: "ΕΛΛΗΝΙΚΗ ΔΗΜΟΚΡΑΤΙΑ", Bold: true},
		{Text: "ΥΠΟΥΡΓΕΙΟ ΔΙΚΑΙΟΣΥΝΗΣ"},
		{},
		{Text: "ΠΕΡΙΦΕΡΕΙΑΚΗ ΥΠΗΡΕΣΙΑ"},
		{Text: "ΔΙΚΑΣΤΙΚΗΣ ΑΣΤΥΝΟΜΙΑΣ"},
		{Text: "ΠΟΛΙΤΙΚΟΣ ΤΟΜΕΑΣ"},
	}
}

func recipient() []string {
	return []string{
		"Υπουργείο Δικαιοσύνης",
		"Δ/νση Ανθρώπινου Δυναμικού και Οργάνωσης",
		"Τμήμα Διοίκησης Ανθρώπινου Δυναμικού",
	}
}

// Build produces the document for a resolved application. It is a pure
// function: the generation date comes from the application, never from the
// ambient clock.
func Build(res application.Resolved) Document {
	app := res.App
	issueDate := app.DateRequest.Format(DateLayout)

	doc := Document{
		Letterhead:     letterhead(),
		OfficeName:     Placeholder,
		RecipientLabel: "ΠΡΟΣ:",
		Recipient:      recipient(),
		IssueDateLabel: issueDateLabel,
		IssueDate:      issueDate,
		ProtocolLabel:  protocolLabel,
		ProtocolValue:  protocolBlank,
		Title:          Title,
	}

	if res.Office != nil {
		doc.OfficeName = res.Office.Name
		doc.OfficeDetails = []string{
			fmt.Sprintf("%s, %s", res.Office.Address, res.Office.PostalCode),
			fmt.Sprintf("Τηλ: %s | Email: %s", res.Office.Phone, res.Office.Email),
		}
	}
	doc.ContactDetails = contactDetails(app)

	doc.Fields = bodyFields(res)
	doc.Signatures = signatures(res, issueDate)

	if len(app.Attachments) > 0 {
		doc.Attachments = &Attachments{
			Title: attachmentsTitle,
			Items: append([]string(nil), app.Attachments...),
		}
	}
	return doc
}

func contactDetails(app application.LeaveApplication) []string {
	if app.ContactAddress == "" && app.ContactPostalCode == "" &&
		app.ContactPhone == "" && app.ContactEmail == "" {
		return nil
	}
	return []string{
		"Ταχ. Διεύθυνση: " + orPlaceholder(app.ContactAddress),
		"Ταχ. Κώδικας: " + orPlaceholder(app.ContactPostalCode),
		"Τηλέφωνο: " + orPlaceholder(app.ContactPhone),
		"Email: " + orPlaceholder(app.ContactEmail),
	}
}

func bodyFields(res application.Resolved) []Field {
	app := res.App

	fields := []Field{
		{Label: labelApplicantName, Lines: []string{orPlaceholder(app.ApplicantName)}},
	}
	if app.ApplicantService != "" {
		fields = append(fields, Field{Label: labelService, Lines: []string{app.ApplicantService}})
	}

	leaveType := Placeholder
	if res.LeaveTypeName != "" {
		leaveType = fmt.Sprintf("%s (%s)", res.LeaveTypeName, res.LeaveTypeCode)
	}
	fields = append(fields,
		Field{Label: labelLeaveType, Lines: []string{leaveType}},
		Field{Label: labelReason, Lines: []string{orPlaceholder(app.Reason)}},
		Field{Label: labelDuration, Lines: durationLines(res)},
	)
	return fields
}

// durationLines emits the total-days line only when a day count was actually
// computed, so a computed zero (range entirely on excluded days) stays
// distinguishable from an unset date range.
func durationLines(res application.Resolved) []string {
	from, to := Placeholder, Placeholder
	if !res.App.DateFrom.IsZero() {
		from = res.App.DateFrom.Format(DateLayout)
	}
	if !res.App.DateTo.IsZero() {
		to = res.App.DateTo.Format(DateLayout)
	}
	lines := []string{fmt.Sprintf("ΑΠΟ %s ΕΩΣ %s", from, to)}
	if res.DaysSet {
		lines = append(lines, fmt.Sprintf("(Σύνολο ημερών: %d)", res.DaysCount))
	}
	return lines
}

func signatures(res application.Resolved, issueDate string) Signatures {
	city := defaultCity
	if res.Office != nil && res.Office.City != "" {
		city = res.Office.City
	}
	return Signatures{
		AgreeLabel:     agreeLabel,
		HeadTitle:      headTitle(res),
		ApplicantTitle: applicantTitle(res),
		DepartmentHead: []string{"Ο/Η ΠΡΟΪΣΤΑΜ.........", "ΤΟΥ ΤΜΗΜΑΤΟΣ"},
		PlaceDate:      fmt.Sprintf("%s, %s", city, issueDate),
	}
}

// headTitle composes the gendered honorific of the approving signatory.
// An unresolved office defaults to the masculine president form.
func headTitle(res application.Resolved) string {
	article := "Ο"
	role := "ΠΡΟΕΔΡΟΣ"
	if res.Office != nil {
		if res.Office.HeadGender == "F" {
			article = "Η"
		}
		if res.Office.HasProsecutor {
			role = "ΕΙΣΑΓΓΕΛΕΑΣ"
		}
	}
	return fmt.Sprintf("%s Κ. %s", article, role)
}

func applicantTitle(res application.Resolved) string {
	if res.App.ApplicantGender == "F" {
		return "Η ΑΙΤΟΥΣΑ"
	}
	return "Ο ΑΙΤΩΝ"
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
