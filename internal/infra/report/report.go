package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/jung-kurt/gofpdf"
)

// UserResults результаты одного пользователя для отчёта
type UserResults struct {
	UserID      string
	DisplayName string
	Results     []model.Result
}

// Options настройки отчёта. Если в FontDir есть DejaVuSans.ttf и DejaVuSans-Bold.ttf,
// используется UTF-8 шрифт с кириллицей, иначе встроенный Helvetica.
type Options struct {
	FontDir string
}

// WriteResultsPDF формирует PDF‑отчёт по результатам всех пользователей и пишет его в w.
func WriteResultsPDF(w io.Writer, users []UserResults, generatedAt time.Time, opts Options) error {
	pdf := gofpdf.New("P", "mm", "A4", "")

	family, tr := setupFont(pdf, opts.FontDir)
	pdf.AddPage()

	pdf.SetFont(family, "B", 16)
	pdf.MultiCell(0, 10, tr("Quiz results"), "", "L", false)
	pdf.SetFont(family, "", 10)
	pdf.MultiCell(0, 6, tr("Generated: "+generatedAt.Format(model.TimestampLayout)), "", "L", false)
	pdf.Ln(4)

	if len(users) == 0 {
		pdf.SetFont(family, "", 12)
		pdf.MultiCell(0, 8, tr("No results yet."), "", "L", false)
	}

	for _, u := range users {
		pdf.SetFont(family, "B", 12)
		pdf.MultiCell(0, 8, tr(fmt.Sprintf("%s (ID: %s)", u.DisplayName, u.UserID)), "", "L", false)

		pdf.SetFont(family, "B", 10)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(50, 7, tr("Date"), "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 7, tr("Score"), "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 7, tr("Percent"), "1", 0, "C", true, 0, "")
		pdf.CellFormat(50, 7, tr("Grade"), "1", 1, "L", true, 0, "")

		pdf.SetFont(family, "", 10)
		for _, r := range u.Results {
			pct := r.Percentage()
			pdf.CellFormat(50, 7, r.Date(), "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%d/%d", r.Score, r.Total), "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%.1f%%", pct), "1", 0, "C", false, 0, "")
			pdf.CellFormat(50, 7, tr(model.GradeBand(pct)), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func setupFont(pdf *gofpdf.Fpdf, fontDir string) (string, func(string) string) {
	regular := filepath.Join(fontDir, "DejaVuSans.ttf")
	bold := filepath.Join(fontDir, "DejaVuSans-Bold.ttf")
	if fontDir != "" && fileExists(regular) && fileExists(bold) {
		pdf.AddUTF8Font("DejaVu", "", regular)
		pdf.AddUTF8Font("DejaVu", "B", bold)
		return "DejaVu", func(s string) string { return s }
	}
	return "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
