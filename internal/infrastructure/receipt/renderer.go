// Package receipt renders ticket receipts as PDF documents with a QR code and
// keeps them on local disk for download.
package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"turnero/internal/shared/biztime"
)

const qrImageName = "ticket-qr"

// Data is everything printed on a receipt.
type Data struct {
	Number       string
	NationalID   string
	FullName     string
	Level        string
	Municipality string
	Subject      string
	IssuedAt     time.Time
}

// QRPayload is the text encoded in the receipt QR code.
func (d Data) QRPayload() string {
	return fmt.Sprintf("CURP: %s\nTurno: %s\nFecha: %s\nNombre: %s",
		d.NationalID, d.Number, biztime.FormatReceiptDate(d.IssuedAt), d.FullName)
}

type PDFRenderer struct {
	title string
}

func NewPDFRenderer(title string) *PDFRenderer {
	if strings.TrimSpace(title) == "" {
		title = "Comprobante de turno"
	}
	return &PDFRenderer{title: title}
}

// Render produces a single A4 page PDF.
func (r *PDFRenderer) Render(d Data) ([]byte, error) {
	png, err := qrcode.Encode(d.QRPayload(), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.title, true)
	pdf.SetCreationDate(d.IssuedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr(r.title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 16, tr(d.Number), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	rows := [][2]string{
		{"CURP", d.NationalID},
		{"Nombre", d.FullName},
		{"Nivel", d.Level},
		{"Municipio", d.Municipality},
		{"Asunto", d.Subject},
		{"Fecha", biztime.FormatReceiptDate(d.IssuedAt)},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(40, 8, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, tr(row[1]), "", 1, "L", false, 0, "")
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(png))
	pdf.ImageOptions(qrImageName, 75, pdf.GetY()+10, 60, 60, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
