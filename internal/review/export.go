package review

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// DefaultReportFilename is the report name operators expect from the
// original workflow.
const DefaultReportFilename = "manuscripts_report.csv"

// utf8BOM lets spreadsheet applications detect the encoding of the Arabic
// headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// exportHeader is the fixed, localized column order of the report. The
// internal identifier is deliberately excluded.
var exportHeader = []string{
	"رقم المخطوط",
	"العنوان",
	"المرحلة",
	"المستلم",
	"الإدارة",
	"تاريخ دخول المرحلة",
	"SLA (أيام)",
	"أيام في المرحلة",
	"الأيام المتبقية",
	"حالة الالتزام",
}

// WriteCSV serializes the filtered view as UTF-8 CSV with a byte-order
// marker, one row per record in view order.
func WriteCSV(w io.Writer, rows []Row) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write byte-order marker: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Record.Number,
			row.Record.Title,
			row.Record.Stage.Label(),
			row.Record.Assignee,
			row.Record.Department.Label(),
			row.Record.EnteredDate,
			strconv.Itoa(row.Record.SLADays),
			strconv.Itoa(row.Derived.DaysInStage),
			strconv.Itoa(row.Derived.DaysRemaining),
			row.Derived.Status.Label(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %q: %w", row.Record.Number, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
