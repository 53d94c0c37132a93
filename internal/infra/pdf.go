package infra

// Invoice rendering with go-pdf/fpdf.
// Generates an A4 invoice with:
//   - Business name header
//   - Invoice number, order and issue date
//   - Line table (product name, quantity, unit price, subtotal)
//   - Net total, IVA and bold grand total
//
// The document is returned in memory; nothing is written to disk.

import (
	"bytes"
	"fmt"

	"retailapi/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateFacturaPDF renders factura and its order lines as a PDF document.
func GenerateFacturaPDF(factura *model.Factura, lineas []model.LineaFactura, negocio string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	// core fonts are cp1252; accents in product names need translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr(negocio), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Factura", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Invoice info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Factura N° %s", factura.NumeroFactura)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Pedido: %d", factura.IDPedido), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, tr("Fecha de emisión: ")+factura.FechaEmision.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Lines header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.50 // product name
	col2 := contentW * 0.12 // qty
	col3 := contentW * 0.19 // unit price
	col4 := contentW * 0.19 // subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Subtotal", "B", 1, "R", false, 0, "")

	// ── Line rows ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, l := range lineas {
		nombre := []rune(l.NombreProducto)
		if len(nombre) > 45 {
			nombre = append(nombre[:44], '.')
		}
		pdf.CellFormat(col1, 6, tr(string(nombre)), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("%d", l.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+l.PrecioUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+l.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	labelW := col1 + col2 + col3
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(labelW, 6, "Total neto:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "$"+factura.TotalNeto.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, "IVA:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "$"+factura.IVA.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 7, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "$"+factura.TotalConIVA.StringFixed(2), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render factura %d: %w", factura.IDFactura, err)
	}
	return buf.Bytes(), nil
}
