// Package export writes the todo list as a PDF table, an XLSX sheet or a DOCX document.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

// Format identifies an export target.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatDOCX Format = "docx"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Headers are the column titles shared by every format.
var Headers = []string{"Row", "ID", "Title", "Status"}

// Row is one exported line. Number is 1-based and follows list order.
type Row struct {
	Number int
	ID     string
	Title  string
	Status string
}

// Rows numbers items in the order given.
func Rows(items []model.Item) []Row {
	rows := make([]Row, 0, len(items))
	for i, it := range items {
		rows = append(rows, Row{
			Number: i + 1,
			ID:     it.ID,
			Title:  it.Title,
			Status: it.Status(),
		})
	}
	return rows
}

// Exporter renders rows into one document format.
type Exporter interface {
	Format() Format
	FileName() string
	Export(w io.Writer, rows []Row) error
}

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatPDF, FormatXLSX, FormatDOCX}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "docx", "word":
		return FormatDOCX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// For returns the exporter for f.
func For(f Format) (Exporter, error) {
	switch f {
	case FormatPDF:
		return PDF{}, nil
	case FormatXLSX:
		return XLSX{}, nil
	case FormatDOCX:
		return DOCX{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteFile exports items into dir/FileName() and returns the path written.
// An empty dir means the working directory.
func WriteFile(dir string, e Exporter, items []model.Item) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	p := filepath.Join(dir, e.FileName())
	f, err := os.CreateTemp(dir, "."+e.FileName()+"-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if err := e.Export(f, Rows(items)); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("export %s: %w", e.Format(), err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}
	return p, nil
}
