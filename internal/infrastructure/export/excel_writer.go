package export

import (
	"fmt"
	"io"

	"repair_intake/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

// Excel caps sheet names at 31 characters.
const maxSheetName = 31

// ExcelWriter implements interfaces.IReportWriter on top of excelize.
type ExcelWriter struct {
	file   *excelize.File
	sheets int
}

var _ interfaces.IReportWriter = (*ExcelWriter)(nil)

func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{file: excelize.NewFile()}
}

// NewReportWriter matches usecase.ReportWriterFactory.
func NewReportWriter() interfaces.IReportWriter {
	return NewExcelWriter()
}

func (w *ExcelWriter) AddSheet(name string) error {
	name = sheetName(name)
	if w.sheets == 0 {
		// The workbook starts with Sheet1.
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	w.sheets++
	return nil
}

func (w *ExcelWriter) WriteHeader(sheet string, headers []string) error {
	sheet = sheetName(sheet)
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := w.WriteRow(sheet, 1, values); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil || len(headers) == 0 {
		return nil
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return w.file.SetCellStyle(sheet, first, last, style)
}

func (w *ExcelWriter) WriteRow(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.file.SetSheetRow(sheetName(sheet), cell, &values)
}

func (w *ExcelWriter) Save(out io.Writer) error {
	_, err := w.file.WriteTo(out)
	return err
}

func (w *ExcelWriter) Close() error {
	return w.file.Close()
}

func sheetName(name string) string {
	if len(name) > maxSheetName {
		return name[:maxSheetName]
	}
	return name
}
