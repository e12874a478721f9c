package engine

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"

	"pokedex/internal/models"
)

// cellPadding is added to every cell so columns never touch.
const cellPadding = 2

var spaces = []byte("                                ")

// Widths computes the display width of every header column. Only the header
// and the given rows are measured, so two different subsets can come out with
// different widths.
func Widths(header models.Record, rows []models.Record) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h) + cellPadding
	}
	for _, row := range rows {
		for i := range widths {
			if i >= len(row) {
				break
			}
			if w := utf8.RuneCountInString(row[i]) + cellPadding; w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render returns the header line followed by one line per row, each cell
// left-justified in its column. There is no separator besides the padding.
func Render(header models.Record, rows []models.Record) string {
	var sb strings.Builder
	_ = RenderTo(&sb, header, rows)
	return sb.String()
}

// RenderTo writes the same table as Render to w.
func RenderTo(w io.Writer, header models.Record, rows []models.Record) error {
	widths := Widths(header, rows)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeLine(buf, header, widths)
	for _, row := range rows {
		writeLine(buf, row, widths)
	}
	_, err := buf.WriteTo(w)
	return err
}

func writeLine(buf *bytebufferpool.ByteBuffer, row models.Record, widths []int) {
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		_, _ = buf.WriteString(cell)
		writePad(buf, w-utf8.RuneCountInString(cell))
	}
	_ = buf.WriteByte('\n')
}

// writePad appends n spaces without allocating.
func writePad(buf *bytebufferpool.ByteBuffer, n int) {
	for n > 0 {
		chunk := min(n, len(spaces))
		_, _ = buf.Write(spaces[:chunk])
		n -= chunk
	}
}
