package infra

// pdf.go — accounting report generation using go-pdf/fpdf.
// Renders an A4 report with the general summary, the per-product breakdown
// and the most recent ledger entries. Files land in storagePath.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"

	"github.com/go-pdf/fpdf"
)

// GenerateReportePDF writes the accounting report and returns its path.
func GenerateReportePDF(
	resumen *repository.ResumenGeneral,
	porProducto []repository.ResumenProducto,
	entradas []model.Contabilidad,
	storagePath string,
) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_contable_%s.pdf", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Reporte Contable", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Resumen general ──────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Resumen General", "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 9)
	filas := [][2]string{
		{"Ventas registradas", fmt.Sprintf("%d", resumen.TotalVentas)},
		{"Unidades vendidas", fmt.Sprintf("%d", resumen.TotalUnidades)},
		{"Ingresos", "$" + resumen.TotalIngresos.StringFixed(2)},
		{"Costos", "$" + resumen.TotalCostos.StringFixed(2)},
		{"Ganancia neta", "$" + resumen.TotalGanancia.StringFixed(2)},
		{"Margen promedio", resumen.MargenPromedio.StringFixed(2) + " %"},
	}
	for _, fila := range filas {
		pdf.CellFormat(contentW*0.5, 6, fila[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.5, 6, fila[1], "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Por producto ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Por Producto", "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	col := []float64{contentW * 0.34, contentW * 0.11, contentW * 0.11,
		contentW * 0.15, contentW * 0.15, contentW * 0.14}

	pdf.SetFont("Helvetica", "B", 8)
	headers := []string{"Producto", "Ventas", "Unid.", "Ingresos", "Ganancia", "Margen"}
	aligns := []string{"L", "C", "C", "R", "R", "R"}
	for i, hdr := range headers {
		pdf.CellFormat(col[i], 6, hdr, "B", 0, aligns[i], false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, p := range porProducto {
		nombre := p.NombreProducto
		if len(nombre) > 32 {
			nombre = nombre[:31] + "…"
		}
		pdf.CellFormat(col[0], 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col[1], 5, fmt.Sprintf("%d", p.NumVentas), "", 0, "C", false, 0, "")
		pdf.CellFormat(col[2], 5, fmt.Sprintf("%d", p.TotalUnidades), "", 0, "C", false, 0, "")
		pdf.CellFormat(col[3], 5, "$"+p.TotalIngresos.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col[4], 5, "$"+p.TotalGanancia.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col[5], 5, p.MargenPromedio.StringFixed(1)+"%", "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Ultimas entradas ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Ultimas Ventas", "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 8)
	for _, e := range entradas {
		nombre := ""
		if e.ProductoFinal != nil {
			nombre = e.ProductoFinal.Nombre
		}
		linea := fmt.Sprintf("%s  %s x%d  ingreso $%s  ganancia $%s",
			e.FechaVenta.Format("02/01 15:04"), nombre, e.CantidadVendida,
			e.IngresoTotal.StringFixed(2), e.GananciaNeta.StringFixed(2))
		pdf.CellFormat(contentW, 5, linea, "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
