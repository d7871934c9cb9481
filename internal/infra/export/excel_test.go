//go:build unit

package export

import (
	"bytes"
	"testing"

	"hostel-admin/internal/domain/report"
	"hostel-admin/internal/pkg/dates"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExport(t *testing.T) {
	w, err := dates.ParseWindow("2024-09-01", "2024-09-02")
	require.NoError(t, err)

	d := report.BuildDashboard(w, report.Filter{}, report.Inputs{
		Rooms: []report.RoomInfo{{Code: "D01", RoomType: "dorm", Status: "available"}},
		Payments: []report.PaymentInfo{
			{Amount: decimal.RequireFromString("120.50"), Method: "cash", DocumentType: "receipt", PaidOn: dates.MustParse("2024-09-01")},
		},
	}, 5)

	out, err := NewExcelExporter().Export(d, "PEN")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{sheetSummary, sheetOccupancy, sheetIncome, sheetCompanies}, f.GetSheetList())

	total, err := f.GetCellValue(sheetSummary, "B5")
	require.NoError(t, err)
	assert.Equal(t, "120.5", total)

	day, err := f.GetCellValue(sheetIncome, "A3")
	require.NoError(t, err)
	assert.Equal(t, "2024-09-02", day)
}
