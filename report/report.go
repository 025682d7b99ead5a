// Package report lays records out onto fixed-size PDF pages and returns
// the finished document as bytes; it performs no disk or network I/O.
//
// Layout is a pure function of the records, the title and the Options:
// identical input produces byte-identical output. Malformed records never
// fail a document; missing fields degrade to placeholder text, because a
// missing report is worse than an imperfect one.
package report

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page geometry and layout constants, in PDF points (A4).
const (
	pageWidth  = 595
	pageHeight = 842
	leftX      = 40
	rightX     = 555
	topY       = 820 // cursor origin, measured from the bottom edge

	wrapBudget = 92 // characters per wrapped journal line

	// Near-bottom margins: when the cursor drops below these no further
	// content is placed and a new page starts.
	lineMargin  = 70  // before any single content line
	entryMargin = 120 // before a journal entry header

	// approxCharPx approximates character width for table-cell budgets.
	// Not true glyph measurement; see fitText.
	approxCharPx = 40
)

type rgb struct{ r, g, b int }

var (
	accent    = rgb{51, 153, 158}
	muted     = rgb{179, 191, 217}
	heading   = rgb{230, 235, 250}
	body      = rgb{224, 230, 245}
	emphasis  = rgb{235, 242, 252}
	separator = rgb{51, 64, 89}
	tableRule = rgb{64, 76, 102}
)

// Options parameterize a document without breaking layout determinism.
type Options struct {
	// GeneratedAt stamps the "Gerado em" line and the document metadata.
	// Two renderings with the same records, title and GeneratedAt are
	// byte-identical.
	GeneratedAt time.Time
	// Currency formats monetary cells and totals. Defaults to BRL.
	Currency string
}

func (o Options) currency() string {
	if o.Currency == "" {
		return "BRL"
	}
	return o.Currency
}

// doc wraps fpdf with a bottom-up cursor: y starts at topY and decreases
// as content is placed, so layout code reads like the page fills downward.
type doc struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func newDoc(opts Options) *doc {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(opts.GeneratedAt)
	pdf.AddPage()
	return &doc{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		y:   topY,
	}
}

func (d *doc) text(x, size float64, bold bool, c rgb, s string) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.SetTextColor(c.r, c.g, c.b)
	d.pdf.Text(x, pageHeight-d.y, d.tr(s))
}

func (d *doc) line(width float64, c rgb) {
	d.pdf.SetLineWidth(width)
	d.pdf.SetDrawColor(c.r, c.g, c.b)
	d.pdf.Line(leftX, pageHeight-d.y, rightX, pageHeight-d.y)
}

func (d *doc) newPage() {
	d.pdf.AddPage()
	d.y = topY
}

// title draws the document title block shared by both reports.
func (d *doc) title(title string, generatedAt time.Time) {
	d.text(leftX, 18, true, accent, title)
	d.y -= 22
	d.text(leftX, 10, false, muted, "Gerado em: "+generatedAt.Format("02/01/2006 15:04:05"))
	d.y -= 18
}

func (d *doc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
