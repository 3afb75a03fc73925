package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	customerEntity "pos/src/customers/domain/entity"
	"pos/src/sales/domain/entity"
)

// PDFReceiptGenerator genera el ticket de venta en PDF
type PDFReceiptGenerator struct {
	storeName string
}

// NewPDFReceiptGenerator crea una nueva instancia del generador
func NewPDFReceiptGenerator(storeName string) *PDFReceiptGenerator {
	if storeName == "" {
		storeName = "Punto de Venta"
	}
	return &PDFReceiptGenerator{storeName: storeName}
}

// Generate arma el ticket: encabezado del local, datos de la venta, líneas
// y total. Los montos se muestran redondeados a 2 decimales.
func (g *PDFReceiptGenerator) Generate(sale *entity.Sale, customer *customerEntity.Customer) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, g.storeName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Receipt #%s", sale.ShortID()), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, sale.CreatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(0, 6, "Payment: "+string(sale.PaymentType), "", 1, "L", false, 0, "")
	if customer != nil {
		pdf.CellFormat(0, 6, "Customer: "+customer.Name, "", 1, "L", false, 0, "")
	}
	if sale.Status == entity.SaleStatusVoided {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, "*** VOIDED ***", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Unit price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range sale.Items {
		qty := item.Quantity.String()
		if item.PricingUnit != "PIECE" {
			qty += " kg"
		}
		pdf.CellFormat(80, 7, item.ProductName, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, qty, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, "$"+item.UnitPrice.Round(2).StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, "$"+item.Subtotal.Round(2).StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(150, 8, "TOTAL", "T", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "$"+sale.TotalAmount.Round(2).StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error rendering receipt: %w", err)
	}

	return buf.Bytes(), nil
}
