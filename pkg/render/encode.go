package render

import (
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// EncodeRow concatenates the ANSI cells of a row with no separator.
func EncodeRow(row []Color) string {
	buf := make([]byte, 0, len(row)*maxCellLen)
	for _, c := range row {
		buf = c.AppendANSI(buf)
	}
	return string(buf)
}

// EncodeRows encodes every row in buffer order (index 0 is the visual
// bottom). Rows are encoded in parallel.
func (fb *Framebuffer) EncodeRows() []string {
	rows := make([]string, fb.Height)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := range rows {
		g.Go(func() error {
			rows[y] = EncodeRow(fb.Row(y))
			return nil
		})
	}
	_ = g.Wait()

	return rows
}

// Lines returns the encoded rows in display order, top row first.
func (fb *Framebuffer) Lines() []string {
	rows := fb.EncodeRows()
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// String joins Lines with newlines.
func (fb *Framebuffer) String() string {
	return strings.Join(fb.Lines(), "\n")
}

// WriteTo writes String to w.
func (fb *Framebuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, fb.String())
	return int64(n), err
}

// EncodedLen returns the total byte length of EncodeRows, separators
// excluded.
func (fb *Framebuffer) EncodedLen() int {
	n := 0
	for _, c := range fb.Pixels {
		n += c.EncodedLen()
	}
	return n
}
