package export

import (
	"bytes"

	"hostel-admin/internal/domain/report"
	"hostel-admin/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary   = "Resumen"
	sheetOccupancy = "Ocupacion"
	sheetIncome    = "Ingresos"
	sheetCompanies = "Empresas"
)

// ExcelExporter writes a dashboard as one workbook with a sheet per section.
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) Export(d report.Dashboard, currency string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, errs.Wrap(err, "failed to name summary sheet")
	}
	for _, name := range []string{sheetOccupancy, sheetIncome, sheetCompanies} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, errs.Wrap(err, "failed to add sheet "+name)
		}
	}

	w := &sheetWriter{f: f}
	w.summary(d, currency)
	w.occupancy(d.Occupancy)
	w.income(d.Financial)
	w.companies(d.TopCompanies)
	if w.err != nil {
		return nil, errs.Wrap(w.err, "failed to fill workbook")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to write workbook")
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first error so the section writers stay linear.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) row(sheet string, rowNo int, values ...interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) summary(d report.Dashboard, currency string) {
	w.row(sheetSummary, 1, "Desde", d.Window.From.String())
	w.row(sheetSummary, 2, "Hasta", d.Window.To.String())
	w.row(sheetSummary, 3, "Habitaciones", d.Occupancy.TotalRooms)
	w.row(sheetSummary, 4, "Ocupacion promedio (%)", d.Occupancy.AverageRate)
	w.row(sheetSummary, 5, "Ingresos ("+currency+")", d.Financial.Total.InexactFloat64())
	w.row(sheetSummary, 6, "Pagos", d.Financial.Count)
	w.row(sheetSummary, 7, "RevPAR ("+currency+")", d.Financial.RevPAR.InexactFloat64())
}

func (w *sheetWriter) occupancy(o report.Occupancy) {
	w.row(sheetOccupancy, 1, "Fecha", "Ocupadas", "Total", "Ocupacion (%)")
	for i, day := range o.Days {
		w.row(sheetOccupancy, i+2, day.Date.String(), day.Occupied, day.Total, day.Rate)
	}

	start := len(o.Days) + 3
	w.row(sheetOccupancy, start, "Tipo", "Habitaciones", "Noches disponibles", "Noches ocupadas", "Ocupacion (%)")
	for i, t := range o.ByRoomType {
		w.row(sheetOccupancy, start+i+1, t.RoomType, t.Rooms, t.AvailableNights, t.OccupiedNights, t.Rate)
	}
}

func (w *sheetWriter) income(fin report.Financial) {
	w.row(sheetIncome, 1, "Fecha", "Monto", "Pagos")
	for i, day := range fin.ByDay {
		w.row(sheetIncome, i+2, day.Date.String(), day.Amount.InexactFloat64(), day.Count)
	}

	next := len(fin.ByDay) + 3
	next = w.buckets(next, "Metodo", fin.ByMethod)
	w.buckets(next+1, "Comprobante", fin.ByDocumentType)
}

func (w *sheetWriter) buckets(start int, title string, buckets []report.Bucket) int {
	w.row(sheetIncome, start, title, "Monto", "Pagos")
	for i, b := range buckets {
		w.row(sheetIncome, start+i+1, b.Key, b.Amount.InexactFloat64(), b.Count)
	}
	return start + len(buckets) + 1
}

func (w *sheetWriter) companies(top []report.CompanyRevenue) {
	w.row(sheetCompanies, 1, "Empresa", "Reservas", "Ingresos")
	for i, c := range top {
		w.row(sheetCompanies, i+2, c.Name, c.Reservations, c.Revenue.InexactFloat64())
	}
}
