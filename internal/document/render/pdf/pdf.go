// Package pdf lays the document out on a fixed-size A4 page with explicit
// coordinate positioning.
package pdf

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"adeia/internal/document"
)

// Filename is the fixed name of the generated artifact.
const Filename = "aitisi_adeias.pdf"

const (
	pageWidth  = 210.0
	leftCol    = 20.0
	rightCol   = 80.0
	headerCol  = 150.0
	lineHeight = 10.0

	officeWrapWidth = 80.0
	fieldWrapWidth  = 110.0
)

// Renderer draws documents with a Unicode font loaded from FontDir. When the
// font files are missing the renderer logs the degradation and falls back to
// the core font with a Greek codepage translator; generation never blocks on
// fonts.
type Renderer struct {
	FontDir string
}

func NewRenderer(fontDir string) *Renderer {
	return &Renderer{FontDir: fontDir}
}

const fontFamily = "DejaVuSans"

func (r *Renderer) setupFonts(p *gofpdf.Fpdf) (family string, tr func(string) string) {
	regular := filepath.Join(r.FontDir, "DejaVuSans.ttf")
	bold := filepath.Join(r.FontDir, "DejaVuSans-Bold.ttf")

	if fileExists(regular) && fileExists(bold) {
		p.AddUTF8Font(fontFamily, "", regular)
		p.AddUTF8Font(fontFamily, "B", bold)
		if !p.Err() {
			return fontFamily, func(s string) string { return s }
		}
	}
	slog.Warn("pdf font unavailable, using core font with greek codepage", "dir", r.FontDir)
	return "Helvetica", p.UnicodeTranslatorFromDescriptor("greek")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Render writes the document as a single PDF artifact: one main page, plus
// an attachments page when the application carries attachments.
func (r *Renderer) Render(w io.Writer, doc document.Document) error {
	p := gofpdf.New("P", "mm", "A4", "")
	family, tr := r.setupFonts(p)
	p.AddPage()

	r.drawHeader(p, family, tr, doc)
	r.drawTitle(p, family, tr, doc)
	r.drawBody(p, family, tr, doc)
	r.drawSignatures(p, family, tr, doc)

	if doc.Attachments != nil {
		r.drawAttachments(p, family, tr, *doc.Attachments)
	}
	return p.Output(w)
}

func (r *Renderer) drawHeader(p *gofpdf.Fpdf, family string, tr func(string) string, doc document.Document) {
	p.SetFont(family, "B", 10)
	y := 20.0
	for _, line := range doc.Letterhead {
		if line.Text != "" {
			p.Text(leftCol, y, tr(line.Text))
		}
		y += 5
	}

	officeLines := p.SplitText(tr(doc.OfficeName), officeWrapWidth)
	for _, line := range officeLines {
		p.Text(leftCol, y, line)
		y += 5
	}

	p.SetFont(family, "", 9)
	y += 5
	for _, line := range append(append([]string{}, doc.OfficeDetails...), doc.ContactDetails...) {
		p.Text(leftCol, y, tr(line))
		y += 5
	}

	p.SetFont(family, "", 10)
	p.Text(headerCol, 20, tr(doc.IssueDateLabel+" "+doc.IssueDate))
	p.Text(headerCol, 25, tr(doc.ProtocolLabel+" "+doc.ProtocolValue))

	p.SetFont(family, "B", 10)
	p.Text(headerCol, 40, tr(doc.RecipientLabel))
	p.SetFont(family, "", 10)
	recipientY := 45.0
	for _, line := range doc.Recipient {
		for _, wrapped := range p.SplitText(tr(line), pageWidth-headerCol-10) {
			p.Text(headerCol, recipientY, wrapped)
			recipientY += 5
		}
	}
}

func (r *Renderer) drawTitle(p *gofpdf.Fpdf, family string, tr func(string) string, doc document.Document) {
	p.SetFont(family, "B", 14)
	title := tr(doc.Title)
	p.Text((pageWidth-p.GetStringWidth(title))/2, 105, title)
}

// drawBody walks the ordered field list, wrapping long values to the fixed
// column width and advancing by the number of lines consumed.
func (r *Renderer) drawBody(p *gofpdf.Fpdf, family string, tr func(string) string, doc document.Document) {
	y := 120.0
	p.SetFontSize(11)

	for _, field := range doc.Fields {
		p.SetFont(family, "B", 11)
		p.Text(leftCol, y, tr(field.Label))
		p.SetFont(family, "", 11)

		for _, value := range field.Lines {
			wrapped := p.SplitText(tr(value), fieldWrapWidth)
			if len(wrapped) == 0 {
				wrapped = []string{""}
			}
			for _, line := range wrapped {
				p.Text(rightCol, y, line)
				y += lineHeight
			}
		}
	}
}

func (r *Renderer) drawSignatures(p *gofpdf.Fpdf, family string, tr func(string) string, doc document.Document) {
	const sigY = 240.0
	sig := doc.Signatures

	p.SetFont(family, "B", 11)
	p.Text(30, sigY, tr(sig.AgreeLabel))
	p.Text(30, sigY+15, tr(sig.HeadTitle))

	p.Text(140, sigY, tr(sig.ApplicantTitle))
	deptY := sigY + 15
	for _, line := range sig.DepartmentHead {
		p.Text(140, deptY, tr(line))
		deptY += 5
	}

	p.SetFont(family, "", 11)
	p.Text(140, sigY+40, tr(sig.PlaceDate))
}

func (r *Renderer) drawAttachments(p *gofpdf.Fpdf, family string, tr func(string) string, att document.Attachments) {
	p.AddPage()
	p.SetFont(family, "B", 14)
	p.Text(leftCol, 20, tr(att.Title))

	p.SetFont(family, "", 11)
	y := 40.0
	for _, line := range attachmentLines(att) {
		p.Text(leftCol, y, tr(line))
		y += lineHeight
	}
}

// attachmentLines numbers the attachment items 1-based, preserving input
// order.
func attachmentLines(att document.Attachments) []string {
	lines := make([]string, 0, len(att.Items))
	for i, item := range att.Items {
		lines = append(lines, strconv.Itoa(i+1)+". "+item)
	}
	return lines
}
