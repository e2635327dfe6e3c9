package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const classicDoc = `ACME Corp
InvoiceNumber123456
IssueDate2024/05/10
Due date: 2024/06/10
DescriptionQuantityUnit priceAmount
Global IT Services - Soporte 5
Office 365 Business Premium 12
Valor total
Total 2.500,00 COP 120,00 2.500,00
`

func TestClassicExtract(t *testing.T) {
	f := ForFormat(FormatClassic).Extract(classicDoc)

	assert.Equal(t, FormatClassic, f.Format)
	assert.Equal(t, "123456", f.InvoiceNumber.Value)
	assert.Equal(t, "2024-05-10", f.IssueDate.Value)
	assert.Equal(t, "2024-06-10", f.DueDate.Value)

	// The classic layout has no customer line; the name stays missing and the
	// legacy combined block equals the line-item text.
	assert.False(t, f.CustomerName.Found)
	assert.Equal(t, "Global IT Services - Soporte 5 Office 365 Business Premium 12", f.LineItemText.Value)
	assert.Equal(t, f.LineItemText.Value, f.CustomerBlock())

	// Largest decimal-comma token on the COP line wins.
	assert.Equal(t, "2500.00", f.Amount.Value)
	assert.Equal(t, "2500", f.AmountDecimal().String())
}

func TestClassicExtractMisses(t *testing.T) {
	f := ForFormat(FormatClassic).Extract("nothing useful here")

	misses := f.Misses()
	assert.Equal(t, "classic.number", misses["invoice_number"])
	assert.Equal(t, "classic.date", misses["issue_date"])
	assert.Equal(t, "due_date", misses["due_date"])
	assert.Equal(t, "classic.block", misses["line_item_text"])
	assert.Equal(t, "classic.amount", misses["amount"])

	assert.Equal(t, SentinelNotFound, f.InvoiceNumber.Or(SentinelNotFound))
	assert.Equal(t, SentinelNotFound, f.CustomerBlock())
	assert.Equal(t, "0", f.AmountDecimal().String())
}

func TestClassicInvalidDateDegrades(t *testing.T) {
	f := ForFormat(FormatClassic).Extract("Date2024/13/40")
	assert.False(t, f.IssueDate.Found)
	assert.Equal(t, "classic.date.invalid", f.IssueDate.Miss)
}

const globalAVLDoc = `Global AVL SpA
Factura: GA-2033
Fecha: 2024/03/01
Cliente: Transportes
del Sur Ltda
RUT: 76.543.210-8
10 Servicio de localizacion GPS mensual
0 Servicio de localizacion respaldo
Sub-Total $ 90.000,00
Total de impuestos $ 19.000,00
Total $ 109.000,00
`

func TestGlobalAVLExtract(t *testing.T) {
	f := ForFormat(FormatGlobalAVL).Extract(globalAVLDoc)

	assert.Equal(t, "GA-2033", f.InvoiceNumber.Value)
	assert.Equal(t, "2024-03-01", f.IssueDate.Value)
	assert.Equal(t, "Transportes del Sur Ltda", f.CustomerName.Value)

	// Zero-quantity rows are dropped from the service fragments.
	assert.Equal(t, "Servicio localizacion (10 disp.)", f.LineItemText.Value)

	// Sub-Total and "Total de" lines must not shadow the Total line.
	assert.Equal(t, "109000.00", f.Amount.Value)
}

func TestGlobalAVLNoServiceLines(t *testing.T) {
	f := ForFormat(FormatGlobalAVL).Extract("Factura: 9\nTotal $ 100")
	assert.False(t, f.LineItemText.Found)
	assert.Equal(t, "globalavl.servicios", f.LineItemText.Miss)
	assert.Equal(t, "100.00", f.Amount.Value)
}

const englishDoc = `INVOICE
INVOICE NUMBER: INV-9001
INVOICE DATE: 2024/04/02,
ATTN: Jordan Smith
DATEAMOUNT
Global Guarding Platform - Monitoring 3
Mark-up infrastructure 1.5
If you have any questions please contact billing.
TOTALUSD: $1250.00
TOTAL: $9999.99
`

func TestEnglishExtract(t *testing.T) {
	f := ForFormat(FormatEnglish).Extract(englishDoc)

	assert.Equal(t, "INV-9001", f.InvoiceNumber.Value)
	// The trailing comma on the date token is stripped before validation.
	assert.Equal(t, "2024-04-02", f.IssueDate.Value)
	assert.Equal(t, "Jordan Smith", f.CustomerName.Value)
	assert.Equal(t, "Global Guarding Platform - Monitoring 3 Mark-up infrastructure 1.5", f.LineItemText.Value)

	// TOTALUSD outranks the plain TOTAL label.
	assert.Equal(t, "1250.00", f.Amount.Value)

	assert.Equal(t, "Jordan Smith "+f.LineItemText.Value, f.CustomerBlock())
}

func TestEnglishInvalidDate(t *testing.T) {
	f := ForFormat(FormatEnglish).Extract("INVOICE DATE: TBD")
	assert.False(t, f.IssueDate.Found)
	assert.Equal(t, "english.date.invalid", f.IssueDate.Miss)
}

const colombianDoc = `Factura Electrónica de Venta
Factura No. 4521
Fecha: 15/02/2024
Cliente: Inversiones
Andinas SAS
NIT 900.123.456-1
Descripción: Servicio de consultoría
mensual febrero
Total: $ 3.400.000,00
`

func TestColombianExtract(t *testing.T) {
	f := ForFormat(FormatColombian).Extract(colombianDoc)

	assert.Equal(t, "4521", f.InvoiceNumber.Value)
	assert.Equal(t, "2024-02-15", f.IssueDate.Value, "DD/MM/YYYY is canonicalized to ISO")
	assert.Equal(t, "Inversiones Andinas SAS", f.CustomerName.Value)
	assert.Equal(t, "Servicio de consultoría mensual febrero", f.LineItemText.Value)
	assert.Equal(t, "3400000.00", f.Amount.Value)
	assert.False(t, f.DueDate.Found)
}

func TestUnknownExtractKeepsPreview(t *testing.T) {
	long := strings.Repeat("x", 600)
	f := ForFormat(FormatUnknown).Extract(long)

	assert.Equal(t, FormatUnknown, f.Format)
	assert.True(t, f.LineItemText.Found)
	assert.Len(t, f.LineItemText.Value, 500)
	assert.False(t, f.InvoiceNumber.Found)
	assert.False(t, f.Amount.Found)
}

func TestForFormatFallsBackToUnknown(t *testing.T) {
	e := ForFormat(FormatKind("made-up"))
	assert.Equal(t, FormatUnknown, e.Format())
}

func TestCleanText(t *testing.T) {
	in := "a\r\nb\t\tc   d\n\n\n\n\ne  \n"
	assert.Equal(t, "a\nb c d\n\ne", CleanText(in))
	assert.Equal(t, "", CleanText(""))
}
