package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmesquita/agenda"
)

type column struct {
	x, w float64
	name string
}

// The five cash-book columns with their fixed positions and widths.
var cashColumns = []column{
	{x: 40, w: 90, name: "Data"},
	{x: 130, w: 70, name: "Tipo"},
	{x: 200, w: 90, name: "Valor"},
	{x: 290, w: 120, name: "Categoria"},
	{x: 410, w: 145, name: "Descrição"},
}

// Cash renders the cash book: a one-line totals summary over exactly the
// given records, the column header row, and one row per transaction in
// ascending timestamp order. The store hands out newest-first, so the
// engine re-sorts here.
//
// Known limitation, preserved: the header row is drawn once for the whole
// document, not repeated on continuation pages.
func Cash(txns []agenda.Transaction, title string, opts Options) ([]byte, error) {
	currency := opts.currency()

	var totalIn, totalOut int64
	for _, t := range txns {
		if t.Type == agenda.In {
			totalIn += t.AmountCents
		} else {
			totalOut += t.AmountCents
		}
	}

	sorted := slices.Clone(txns)
	slices.SortStableFunc(sorted, func(a, b agenda.Transaction) int {
		return cmp.Compare(a.DateTime, b.DateTime)
	})

	d := newDoc(opts)
	d.title(title, opts.GeneratedAt)

	d.text(leftX, 11, true, emphasis, summaryLine(totalIn, totalOut, currency))
	d.y -= 16
	d.line(1, accent)
	d.y -= 12

	header := make([]string, len(cashColumns))
	for i, c := range cashColumns {
		header[i] = c.name
	}
	d.row(header, 10.5, true)
	d.y -= 14
	d.line(0.5, tableRule)
	d.y -= 10

	for _, t := range sorted {
		if d.y < lineMargin {
			d.newPage()
		}
		d.row(cashRow(t, currency), 10, false)
		d.y -= 14
	}

	return d.output()
}

// summaryLine states total inflow, total outflow and the net balance.
func summaryLine(totalIn, totalOut int64, currency string) string {
	return fmt.Sprintf("Entradas: %s   •   Saídas: %s   •   Saldo: %s",
		agenda.FormatCents(totalIn, currency),
		agenda.FormatCents(totalOut, currency),
		agenda.FormatCents(totalIn-totalOut, currency))
}

// cashRow formats one table row, substituting "-" for missing category or
// description rather than failing the document.
func cashRow(t agenda.Transaction, currency string) []string {
	label := "Saída"
	if t.Type == agenda.In {
		label = "Entrada"
	}
	category := t.Category
	if category == "" {
		category = "-"
	}
	description := strings.TrimSpace(t.Description)
	if description == "" {
		description = "-"
	}
	return []string{
		time.UnixMilli(t.DateTime).Format("02/01/2006 15:04:05"),
		label,
		agenda.FormatCents(t.AmountCents, currency),
		category,
		description,
	}
}

func (d *doc) row(cells []string, size float64, bold bool) {
	for i, cell := range cells {
		col := cashColumns[i]
		d.text(col.x, size, bold, body, fitText(cell, col.w))
	}
}
