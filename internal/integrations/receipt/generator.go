package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	pageWidth   = 210.0
	margin      = 20.0
	contentW    = pageWidth - 2*margin
	priceColumn = 50.0
)

// Generator формирует PDF-чеки в каталоге dir
type Generator struct {
	dir       string
	salonName string
	currency  string
	log       Logger
}

// NewGenerator создает генератор чеков
func NewGenerator(dir, salonName, currency string, log Logger) *Generator {
	return &Generator{
		dir:       dir,
		salonName: salonName,
		currency:  currency,
		log:       log,
	}
}

// Path возвращает путь файла чека: Ticket_{id}_{surname}.pdf
func (g *Generator) Path(appointmentID int64, surname string) string {
	return filepath.Join(g.dir, fmt.Sprintf("Ticket_%d_%s.pdf", appointmentID, sanitize(surname)))
}

// Generate записывает чек и возвращает путь к файлу. Повторный вызов перезаписывает файл.
func (g *Generator) Generate(ctx context.Context, r *Receipt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r == nil || r.AppointmentID <= 0 || len(r.Items) == 0 {
		return "", ErrInvalidReceipt
	}

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create dir: %v", ErrWrite, err)
	}

	path := g.Path(r.AppointmentID, r.ClientSurname)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetTitle(fmt.Sprintf("Recibo turno %d", r.AppointmentID), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Шапка салона
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, tr(g.salonName), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 8, tr(fmt.Sprintf("RECIBO DE PAGO - TURNO ID: %d", r.AppointmentID)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Клиент и дата
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 7, tr(fmt.Sprintf("Cliente: %s %s", r.ClientName, r.ClientSurname)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 7, tr(fmt.Sprintf("Fecha y Hora: %s", r.ScheduledAt.Format(domain.DisplayDateTime))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Таблица услуг
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW-priceColumn, 8, "SERVICIO", "B", 0, "L", false, 0, "")
	pdf.CellFormat(priceColumn, 8, "PRECIO", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range r.Items {
		pdf.CellFormat(contentW-priceColumn, 7, tr(item.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(priceColumn, 7, tr(g.money(item.Price)), "", 1, "R", false, 0, "")
	}

	y := pdf.GetY() + 2
	pdf.Line(margin, y, pageWidth-margin, y)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW-priceColumn, 8, "TOTAL COBRADO", "", 0, "L", false, 0, "")
	pdf.CellFormat(priceColumn, 8, tr(g.money(r.Total)), "", 1, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(contentW, 6, tr("¡Gracias por su preferencia!"), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		g.log.Error("Receipt: failed to write %s: %v", path, err)
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	g.log.Info("Receipt: written %s for appointment id=%d", path, r.AppointmentID)
	return path, nil
}

func (g *Generator) money(d decimal.Decimal) string {
	return strings.TrimSpace(g.currency + " " + d.StringFixed(2))
}

// sanitize оставляет в фамилии только буквы и цифры
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "cliente"
	}
	return b.String()
}
