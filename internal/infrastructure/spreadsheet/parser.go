package spreadsheet

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Parser reads uploaded workbooks into rows of column-label → cell value.
// Legacy .xls files go through extrame/xls; everything else (.xlsx, .xlsm,
// CSV-as-xlsx exports) through excelize. Only the first sheet is read.
type Parser struct{}

// NewParser builds the spreadsheet parser.
func NewParser() *Parser {
	return &Parser{}
}

// Rows parses the workbook and maps each data row by the header labels of
// the first row. Cells and headers are trimmed; rows shorter than the header
// row yield empty strings for the missing columns.
func (p *Parser) Rows(filename string, data []byte) ([]map[string]string, error) {
	raw, err := p.cells(filename, data)
	if err != nil {
		return nil, err
	}

	headers := raw[0]
	rows := make([]map[string]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			row[header] = cellValue(cells, i)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (p *Parser) cells(filename string, data []byte) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, err
		}
		if workbook.NumSheets() == 0 {
			return nil, fmt.Errorf("no worksheet found")
		}
		rows := workbook.ReadAllCells(100000)
		if len(rows) == 0 {
			return nil, fmt.Errorf("worksheet is empty")
		}
		return rows, nil
	default:
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("no worksheet found")
		}
		rows, err := file.GetRows(sheetName)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("worksheet is empty")
		}
		return rows, nil
	}
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
