// Package spreadsheet читает первый лист xlsx/xlsm файла в строки,
// ключи которых переименованы по словарю заголовков.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format, use .xlsx or .xlsm (legacy .xls must be re-saved as .xlsx)")
	ErrEmpty             = errors.New("spreadsheet has no data rows")
	ErrNotNumber         = errors.New("value is not a number")
	ErrNotDate           = errors.New("value is not a date")
)

var supportedExtensions = map[string]struct{}{
	".xlsx": {},
	".xlsm": {},
}

// Mapping заголовок колонки -> имя поля.
type Mapping map[string]string

type Row struct {
	// Number номер строки в файле, заголовок - строка 1.
	Number int
	Values map[string]string
}

func Supported(filename string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Read читает первый лист. Первая строка - заголовки; колонки вне mapping
// игнорируются, полностью пустые строки пропускаются.
func Read(r io.Reader, filename string, mapping Mapping) ([]Row, error) {
	if !Supported(filename) {
		return nil, ErrUnsupportedFormat
	}

	opts := excelize.Options{RawCellValue: true}
	file, err := excelize.OpenReader(r, opts)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmpty
	}

	raw, err := file.GetRows(sheets[0], opts)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(raw) < 2 {
		return nil, ErrEmpty
	}

	columns := make(map[int]string, len(raw[0]))
	for i, title := range raw[0] {
		if field, ok := mapping[strings.TrimSpace(title)]; ok {
			columns[i] = field
		}
	}

	rows := make([]Row, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		values := make(map[string]string, len(columns))
		for col, field := range columns {
			if col < len(cells) {
				if v := strings.TrimSpace(cells[col]); v != "" {
					values[field] = v
				}
			}
		}
		if len(values) == 0 {
			continue
		}
		rows = append(rows, Row{Number: i + 2, Values: values})
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return rows, nil
}

func (r Row) Get(field string) string {
	return r.Values[field]
}

// Missing обязательные поля без значения, в порядке required.
func (r Row) Missing(required []string) []string {
	var missing []string
	for _, field := range required {
		if r.Values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func (r Row) Float(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(r.Values[field], ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("row %d %s=%q: %w", r.Number, field, r.Values[field], ErrNotNumber)
	}
	return v, nil
}

func (r Row) Int(field string) (int64, error) {
	f, err := r.Float(field)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"02.01.2006",
	"2-Jan-2006",
}

// Date понимает серийные даты Excel и распространённые текстовые форматы.
func (r Row) Date(field string) (time.Time, error) {
	v := r.Values[field]

	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("row %d %s=%q: %w", r.Number, field, v, ErrNotDate)
		}
		return t, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("row %d %s=%q: %w", r.Number, field, v, ErrNotDate)
}
