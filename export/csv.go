package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tsawler/transcripta/model"
)

// utf8BOM is prepended to CSV output so spreadsheet applications
// decode the Chinese headers and subject names correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvHeader is the fixed column order for exported course lists.
var csvHeader = []string{"學年度", "學期", "選課代號", "科目名稱", "學分", "GPA", "來源表格"}

// WriteCSV writes course records as UTF-8 CSV with a byte order mark,
// one row per record in input order.
func WriteCSV(w io.Writer, records []model.CourseRecord) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(recordFields(rec)); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// CSV renders course records to an in-memory CSV document.
func CSV(records []model.CourseRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// recordFields flattens a record into the fixed export column order.
// The source table index is 1-based in exports.
func recordFields(rec model.CourseRecord) []string {
	return []string{
		rec.AcademicYear,
		rec.Semester,
		rec.CourseCode,
		rec.Subject,
		strconv.FormatFloat(rec.Credit, 'f', -1, 64),
		rec.Grade,
		strconv.Itoa(rec.SourceTable + 1),
	}
}
