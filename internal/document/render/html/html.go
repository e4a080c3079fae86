// Package html renders a document layout to HTML: a fragment for the live
// on-screen preview and a standalone paginated page for printing. Both are
// thin adapters over the shared layout; neither re-derives content.
package html

import (
	"html/template"
	"io"

	"adeia/internal/document"
)

// Preview writes the on-screen preview fragment.
func Preview(w io.Writer, doc document.Document) error {
	return previewTmpl.Execute(w, doc)
}

// Print writes the standalone print page. Callers that must not emit partial
// output on failure should render into a buffer first.
func Print(w io.Writer, doc document.Document) error {
	return printTmpl.Execute(w, doc)
}

var previewTmpl = template.Must(template.New("preview").Parse(`<div class="document-preview">
  <div class="header">
    <div class="header-left">
{{- range .Letterhead}}
      {{if .Bold}}<p><strong>{{.Text}}</strong></p>{{else if .Text}}<p>{{.Text}}</p>{{else}}<br/>{{end}}
{{- end}}
      <p class="office-name"><strong>{{.OfficeName}}</strong></p>
{{- range .OfficeDetails}}
      <p class="office-details">{{.}}</p>
{{- end}}
{{- range .ContactDetails}}
      <p class="contact-details">{{.}}</p>
{{- end}}
      <div class="ministry-address">
        <p><strong>{{.RecipientLabel}}</strong></p>
{{- range .Recipient}}
        <p>{{.}}</p>
{{- end}}
      </div>
    </div>
    <div class="header-right">
      <p>{{.IssueDateLabel}} {{.IssueDate}}</p>
      <p>{{.ProtocolLabel}} {{.ProtocolValue}}</p>
    </div>
  </div>
  <div class="title">{{.Title}}</div>
  <div class="content">
{{- range .Fields}}
    <div class="field-row">
      <div class="field-label">{{.Label}}</div>
      <div class="field-value">{{range $i, $line := .Lines}}{{if $i}}<br/>{{end}}{{$line}}{{end}}</div>
    </div>
{{- end}}
  </div>
  <div class="signatures">
    <div class="signature-section">
      <div class="signature-label">{{.Signatures.AgreeLabel}}</div>
      <div class="signature-title">{{.Signatures.HeadTitle}}</div>
    </div>
    <div class="signature-section">
      <div class="signature-label">{{.Signatures.ApplicantTitle}}</div>
{{- range .Signatures.DepartmentHead}}
      <div class="signature-title">{{.}}</div>
{{- end}}
      <div class="date-location">{{.Signatures.PlaceDate}}</div>
    </div>
  </div>
{{- with .Attachments}}
  <div class="attachments">
    <div class="attachments-title">{{.Title}}</div>
    <ol>
{{- range .Items}}
      <li>{{.}}</li>
{{- end}}
    </ol>
  </div>
{{- end}}
</div>
`))

// The print page carries its own styles sized to A4 with fixed margins, and
// triggers the native print flow after a short settle delay.
var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="el">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
  @page { size: A4; margin: 20mm; }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: 'Times New Roman', serif; font-size: 12pt; line-height: 1.4; color: black; background: white; }
  .header { display: grid; grid-template-columns: 1fr 1fr; gap: 20mm; margin-bottom: 15mm; }
  .header-left { font-size: 10pt; }
  .header-right { text-align: right; font-size: 10pt; }
  .office-name { font-weight: bold; margin: 3mm 0; }
  .office-details, .contact-details { font-size: 9pt; line-height: 1.2; opacity: 0.8; }
  .ministry-address { margin-top: 8mm; }
  .title { text-align: center; font-size: 16pt; font-weight: bold; text-decoration: underline; margin: 15mm 0; }
  .field-row { display: grid; grid-template-columns: 45mm 1fr; gap: 3mm; margin-bottom: 6mm; align-items: start; }
  .field-label { font-weight: bold; font-size: 11pt; }
  .field-value { font-family: 'Courier New', monospace; border-bottom: 1pt dotted #666; padding-bottom: 1mm; min-height: 6mm; }
  .signatures { display: grid; grid-template-columns: 1fr 1fr; gap: 20mm; margin-top: 25mm; }
  .signature-section { text-align: center; }
  .signature-label { font-weight: bold; margin-bottom: 8mm; }
  .signature-title { font-weight: bold; margin-bottom: 3mm; }
  .date-location { margin-top: 15mm; text-align: right; }
  .attachments { margin-top: 15mm; border-top: 2pt solid black; padding-top: 5mm; page-break-before: always; }
  .attachments-title { font-weight: bold; margin-bottom: 3mm; }
  .attachments ol { margin-left: 5mm; font-family: 'Courier New', monospace; font-size: 10pt; }
</style>
</head>
<body>
<div class="header">
  <div class="header-left">
{{- range .Letterhead}}
    {{if .Bold}}<p><strong>{{.Text}}</strong></p>{{else if .Text}}<p>{{.Text}}</p>{{else}}<br/>{{end}}
{{- end}}
    <div class="office-name">{{.OfficeName}}</div>
{{- range .OfficeDetails}}
    <p class="office-details">{{.}}</p>
{{- end}}
{{- range .ContactDetails}}
    <p class="contact-details">{{.}}</p>
{{- end}}
    <div class="ministry-address">
      <p><strong>{{.RecipientLabel}}</strong></p>
{{- range .Recipient}}
      <p>{{.}}</p>
{{- end}}
    </div>
  </div>
  <div class="header-right">
    <p>{{.IssueDateLabel}} {{.IssueDate}}</p>
    <p>{{.ProtocolLabel}} {{.ProtocolValue}}</p>
  </div>
</div>
<div class="title">{{.Title}}</div>
<div class="content">
{{- range .Fields}}
  <div class="field-row">
    <div class="field-label">{{.Label}}</div>
    <div class="field-value">{{range $i, $line := .Lines}}{{if $i}}<br/>{{end}}{{$line}}{{end}}</div>
  </div>
{{- end}}
</div>
<div class="signatures">
  <div class="signature-section">
    <div class="signature-label">{{.Signatures.AgreeLabel}}</div>
    <div class="signature-title">{{.Signatures.HeadTitle}}</div>
  </div>
  <div class="signature-section">
    <div class="signature-label">{{.Signatures.ApplicantTitle}}</div>
{{- range .Signatures.DepartmentHead}}
    <div class="signature-title">{{.}}</div>
{{- end}}
    <div class="date-location">{{.Signatures.PlaceDate}}</div>
  </div>
</div>
{{- with .Attachments}}
<div class="attachments">
  <div class="attachments-title">{{.Title}}</div>
  <ol>
{{- range .Items}}
    <li>{{.}}</li>
{{- end}}
  </ol>
</div>
{{- end}}
<script>
  window.onload = function () {
    setTimeout(function () {
      window.print();
      window.close();
    }, 500);
  };
</script>
</body>
</html>
`))
