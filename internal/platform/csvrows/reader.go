// Package csvrows reads header-keyed CSV uploads such as the quotazioni listone.
package csvrows

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var ErrEmpty = crerr.New("csv has no header row")

// Record is one data row. Row is the 1-based data row number (header excluded).
type Record struct {
	Row    int
	Line   int
	values map[string]string
}

// Get looks a column up case-insensitively, ignoring surrounding spaces in the header.
func (r Record) Get(column string) (string, bool) {
	v, ok := r.values[normalize(column)]
	return v, ok
}

// Values returns the raw row keyed by normalized header.
func (r Record) Values() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

func normalize(column string) string {
	return strings.ToLower(strings.TrimSpace(column))
}

// Read parses the whole input. The delimiter is detected from the header line
// (";" wins over "," when it appears more often). Blank lines are skipped.
func Read(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(3); err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}

	firstLine, err := br.Peek(peekSize(br))
	if err != nil && len(firstLine) == 0 {
		return nil, ErrEmpty
	}

	reader := csv.NewReader(br)
	reader.Comma = detectDelimiter(firstLine)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, crerr.Wrap(err, "read csv header")
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = normalize(h)
	}

	var out []Record
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, crerr.Wrapf(err, "read csv row %d", len(out)+1)
		}
		line, _ := reader.FieldPos(0)

		values := make(map[string]string, len(columns))
		for i, col := range columns {
			if col == "" {
				continue
			}
			if i < len(fields) {
				values[col] = strings.TrimSpace(fields[i])
				continue
			}
			values[col] = ""
		}
		out = append(out, Record{Row: len(out) + 1, Line: line, values: values})
	}

	return out, nil
}

func peekSize(br *bufio.Reader) int {
	if n := br.Buffered(); n > 0 {
		return n
	}
	_, _ = br.Peek(1)
	return br.Buffered()
}

func detectDelimiter(head []byte) rune {
	if idx := bytes.IndexByte(head, '\n'); idx >= 0 {
		head = head[:idx]
	}
	if bytes.Count(head, []byte{';'}) > bytes.Count(head, []byte{','}) {
		return ';'
	}
	return ','
}
