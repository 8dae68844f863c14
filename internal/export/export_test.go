package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Makepad-fr/tada/internal/model"
)

func sampleItems() []model.Item {
	return []model.Item{
		{ID: "a1", Title: "Buy milk"},
		{ID: "b2", Title: "Fish & <chips>", IsCompleted: true},
		{ID: "c3", Title: "Café crème"},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleItems())

	require.Len(t, rows, 3)
	assert.Equal(t, Row{Number: 1, ID: "a1", Title: "Buy milk", Status: "Pending"}, rows[0])
	assert.Equal(t, Row{Number: 2, ID: "b2", Title: "Fish & <chips>", Status: "Completed"}, rows[1])
	assert.Equal(t, 3, rows[2].Number)
	assert.Empty(t, Rows(nil))
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"pdf":   FormatPDF,
		"XLSX":  FormatXLSX,
		"excel": FormatXLSX,
		"docx":  FormatDOCX,
		"word":  FormatDOCX,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("odt")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFor(t *testing.T) {
	names := map[Format]string{
		FormatPDF:  "todos.pdf",
		FormatXLSX: "todos.xlsx",
		FormatDOCX: "todos.docx",
	}
	for _, f := range Formats() {
		e, err := For(f)
		require.NoError(t, err)
		assert.Equal(t, f, e.Format())
		assert.Equal(t, names[f], e.FileName())
	}

	_, err := For("odt")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPDF_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF{}.Export(&buf, Rows(sampleItems())))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDF_Export_paginates(t *testing.T) {
	items := make([]model.Item, 0, 120)
	for i := range 120 {
		items = append(items, model.Item{ID: fmt.Sprintf("id-%d", i), Title: strings.Repeat("long title ", 10)})
	}

	var small, large bytes.Buffer
	require.NoError(t, PDF{}.Export(&small, Rows(items[:1])))
	require.NoError(t, PDF{}.Export(&large, Rows(items)))

	assert.Equal(t, 1, pageCount(small.Bytes()))
	assert.Greater(t, pageCount(large.Bytes()), 1)
}

// pageCount counts page objects; "/Type /Page" also prefixes the one "/Type /Pages" node.
func pageCount(pdf []byte) int {
	return bytes.Count(pdf, []byte("/Type /Page")) - bytes.Count(pdf, []byte("/Type /Pages"))
}

func TestPDF_Export_empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF{}.Export(&buf, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestXLSX_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSX{}.Export(&buf, Rows(sampleItems())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Todos"}, f.GetSheetList())

	rows, err := f.GetRows("Todos")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Row", "ID", "Title", "Status"}, rows[0])
	assert.Equal(t, []string{"1", "a1", "Buy milk", "Pending"}, rows[1])
	assert.Equal(t, []string{"2", "b2", "Fish & <chips>", "Completed"}, rows[2])
	assert.Equal(t, []string{"3", "c3", "Café crème", "Pending"}, rows[3])
}

func TestDOCX_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DOCX{}.Export(&buf, Rows(sampleItems())))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	files := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		files[f.Name] = string(b)
	}

	require.Contains(t, files, "[Content_Types].xml")
	require.Contains(t, files, "word/document.xml")

	doc := files["word/document.xml"]
	assert.Contains(t, doc, "📝 Todo List")
	assert.Contains(t, doc, "Fish &amp; &lt;chips&gt;")
	assert.Contains(t, doc, "Café crème")
	assert.Contains(t, doc, docxTableStyle)
	for _, h := range Headers {
		assert.Contains(t, doc, h)
	}
	assert.Less(t, strings.Index(doc, "📝 Todo List"), strings.Index(doc, "Fish &amp; &lt;chips&gt;"),
		"heading comes before the table")
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	for _, f := range Formats() {
		e, err := For(f)
		require.NoError(t, err)

		p, err := WriteFile(dir, e, sampleItems())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, e.FileName()), p)

		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "temp files should be cleaned up")
}
