package invoice

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/format"
	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"github.com/gdg-garage/hotel-registration-api/internal/pricing"
	"github.com/phpdave11/gofpdf"
)

// Render builds an A4 invoice for reg. The core PDF fonts have no glyphs
// for currency symbols, so amounts use ISO codes.
func Render(reg models.Registration, q pricing.Quote, f *format.Formatter, issuedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := "INV-" + shortID(reg.ID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+issuedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Guest")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Name       : %s", tr(safe(strings.TrimSpace(reg.Owner.FullName()), "-"))),
		fmt.Sprintf("Email      : %s", safe(reg.Owner.Email, "-")),
		fmt.Sprintf("Check-in   : %s", f.Date(reg.CheckInDate)),
		fmt.Sprintf("Check-out  : %s", f.Date(reg.CheckOutDate)),
		fmt.Sprintf("Nights     : %d", q.Nights),
		fmt.Sprintf("Guests     : %d adults, %d children", reg.NumberOfAdults, reg.NumberOfChildren),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Charges")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if reg.Room != nil && q.Room != nil {
		pdf.Cell(0, 6, fmt.Sprintf("%s (%s) x %d room(s) x %d night(s): %s",
			reg.Room.Name, reg.Room.ShortName, q.Units, q.Nights, f.MoneyCode(*q.Room)))
		pdf.Ln(6)
	}
	if reg.WifiEnabled {
		pdf.Cell(0, 6, "Wi-Fi: "+f.MoneyCode(q.Wifi))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+f.MoneyCode(q.Total))
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_%s.pdf", invNo, safeFilenamePart(reg.Owner.LastName))
	return buf.Bytes(), filename, nil
}

func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(safe(id, "DRAFT"))
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	return safe(b.String(), "guest")
}
