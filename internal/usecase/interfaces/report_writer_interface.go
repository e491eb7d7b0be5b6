package interfaces

import "io"

// IReportWriter renders tabular reports, one sheet per report.
type IReportWriter interface {
	AddSheet(name string) error
	WriteHeader(sheet string, headers []string) error
	WriteRow(sheet string, row int, values []any) error
	Save(w io.Writer) error
	Close() error
}
