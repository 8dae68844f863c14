package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gomutex/godocx"
)

// DOCX writes a Word document: a heading followed by a bordered table with a
// bold header row.
type DOCX struct{}

const (
	docxHeading = "📝 Todo List"
	// built-in grid style of the default template: borders on every cell
	docxTableStyle = "LightGrid"
)

func (DOCX) Format() Format   { return FormatDOCX }
func (DOCX) FileName() string { return "todos.docx" }

func (DOCX) Export(w io.Writer, rows []Row) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	if _, err := doc.AddHeading(docxHeading, 1); err != nil {
		return fmt.Errorf("add heading: %w", err)
	}

	tbl := doc.AddTable()
	tbl.Style(docxTableStyle)

	hdr := tbl.AddRow()
	for _, h := range Headers {
		hdr.AddCell().AddParagraph("").AddText(h).Bold(true)
	}
	for _, r := range rows {
		row := tbl.AddRow()
		for _, v := range []string{strconv.Itoa(r.Number), r.ID, r.Title, r.Status} {
			row.AddCell().AddParagraph(v)
		}
	}

	if err := doc.Write(w); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
