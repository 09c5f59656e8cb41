package backup

import (
	"bytes"
	"io"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

var ErrMalformed = crerr.New("malformed backup")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// AppendTable writes one section: "# name", the header line, one line per row, a blank line.
func AppendTable(buf *bytebufferpool.ByteBuffer, t Table) {
	_, _ = buf.WriteString("# ")
	_, _ = buf.WriteString(t.Name)
	_ = buf.WriteByte('\n')
	_, _ = buf.WriteString(strings.Join(t.Columns, ","))
	_ = buf.WriteByte('\n')
	for _, row := range t.Rows {
		for i, v := range row {
			if i > 0 {
				_ = buf.WriteByte(',')
			}
			appendValue(buf, v)
		}
		_ = buf.WriteByte('\n')
	}
	_ = buf.WriteByte('\n')
}

func appendValue(buf *bytebufferpool.ByteBuffer, v Value) {
	if !v.Quoted {
		_, _ = buf.WriteString(v.Text)
		return
	}
	_ = buf.WriteByte('"')
	_, _ = buf.WriteString(strings.ReplaceAll(v.Text, `"`, `""`))
	_ = buf.WriteByte('"')
}

// Encode writes the snapshot sequentially.
func Encode(w io.Writer, snap Snapshot) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, t := range snap.Tables {
		AppendTable(buf, t)
	}
	if _, err := w.Write(buf.B); err != nil {
		return crerr.Wrap(err, "write backup")
	}
	return nil
}

// Decode parses a backup fully; it never returns a partial snapshot.
func Decode(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, crerr.Wrap(err, "read backup")
	}
	p := &parser{data: bytes.TrimPrefix(data, utf8BOM), line: 1}

	var snap Snapshot
	current := -1
	for !p.eof() {
		if p.atBlankLine() {
			p.skipLine()
			current = -1
			continue
		}
		if p.data[p.pos] == '#' {
			name := sectionName(p.readRawLine())
			if name == "" {
				return Snapshot{}, crerr.Wrapf(ErrMalformed, "line %d: empty table name", p.line-1)
			}
			snap.Tables = append(snap.Tables, Table{Name: name})
			current = len(snap.Tables) - 1
			continue
		}
		if current < 0 {
			return Snapshot{}, crerr.Wrapf(ErrMalformed, "line %d: data outside of a table section", p.line)
		}

		startLine := p.line
		fields, err := p.readRecord()
		if err != nil {
			return Snapshot{}, err
		}
		t := &snap.Tables[current]
		if t.Columns == nil {
			columns, err := headerColumns(fields, startLine)
			if err != nil {
				return Snapshot{}, err
			}
			t.Columns = columns
			continue
		}
		if len(fields) != len(t.Columns) {
			return Snapshot{}, crerr.Wrapf(ErrMalformed, "line %d: table %s expects %d values, got %d", startLine, t.Name, len(t.Columns), len(fields))
		}
		t.Rows = append(t.Rows, fields)
	}

	for _, t := range snap.Tables {
		if t.Columns == nil {
			return Snapshot{}, crerr.Wrapf(ErrMalformed, "table %s has no header", t.Name)
		}
	}
	return snap, nil
}

func sectionName(line string) string {
	name := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	if rest, ok := strings.CutPrefix(name, "TABLE"); ok {
		name = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":"))
	}
	return strings.ToLower(name)
}

func headerColumns(fields []Value, line int) ([]string, error) {
	columns := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		name := strings.TrimSpace(f.Text)
		if name == "" {
			return nil, crerr.Wrapf(ErrMalformed, "line %d: empty column name", line)
		}
		if _, dup := seen[name]; dup {
			return nil, crerr.Wrapf(ErrMalformed, "line %d: duplicate column %s", line, name)
		}
		seen[name] = struct{}{}
		columns = append(columns, name)
	}
	return columns, nil
}

// Validate checks sections and columns against the schema whitelist. Unknown
// tables are reported as skipped; unknown columns are an error.
func Validate(snap Snapshot) (skipped []string, err error) {
	seen := make(map[string]struct{}, len(snap.Tables))
	for _, t := range snap.Tables {
		allowed, ok := TableColumns[t.Name]
		if !ok {
			skipped = append(skipped, t.Name)
			continue
		}
		if _, dup := seen[t.Name]; dup {
			return nil, crerr.Wrapf(ErrMalformed, "table %s appears twice", t.Name)
		}
		seen[t.Name] = struct{}{}
		for _, c := range t.Columns {
			if !contains(allowed, c) {
				return nil, crerr.Wrapf(ErrMalformed, "table %s: unknown column %s", t.Name, c)
			}
		}
	}
	return skipped, nil
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

type parser struct {
	data []byte
	pos  int
	line int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.data)
}

func (p *parser) atBlankLine() bool {
	end := bytes.IndexByte(p.data[p.pos:], '\n')
	if end < 0 {
		end = len(p.data) - p.pos
	}
	return len(bytes.TrimSpace(p.data[p.pos:p.pos+end])) == 0
}

func (p *parser) skipLine() {
	_ = p.readRawLine()
}

func (p *parser) readRawLine() string {
	end := bytes.IndexByte(p.data[p.pos:], '\n')
	var line []byte
	if end < 0 {
		line = p.data[p.pos:]
		p.pos = len(p.data)
	} else {
		line = p.data[p.pos : p.pos+end]
		p.pos += end + 1
	}
	p.line++
	return strings.TrimRight(string(line), "\r")
}

func (p *parser) readRecord() ([]Value, error) {
	var fields []Value
	for {
		v, err := p.readField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, v)
		if p.eof() {
			return fields, nil
		}

		switch c := p.data[p.pos]; c {
		case ',':
			p.pos++
		case '\r':
			p.pos++
			if !p.eof() && p.data[p.pos] == '\n' {
				p.pos++
			}
			p.line++
			return fields, nil
		case '\n':
			p.pos++
			p.line++
			return fields, nil
		default:
			return nil, crerr.Wrapf(ErrMalformed, "line %d: unexpected %q after value", p.line, c)
		}
	}
}

func (p *parser) readField() (Value, error) {
	if p.eof() || p.data[p.pos] != '"' {
		start := p.pos
		for !p.eof() {
			c := p.data[p.pos]
			if c == ',' || c == '\n' || c == '\r' {
				break
			}
			if c == '"' {
				return Value{}, crerr.Wrapf(ErrMalformed, "line %d: bare quote in unquoted value", p.line)
			}
			p.pos++
		}
		return Value{Text: string(p.data[start:p.pos])}, nil
	}

	startLine := p.line
	p.pos++
	var sb strings.Builder
	for {
		if p.eof() {
			return Value{}, crerr.Wrapf(ErrMalformed, "line %d: unterminated quoted value", startLine)
		}
		c := p.data[p.pos]
		if c == '"' {
			if p.pos+1 < len(p.data) && p.data[p.pos+1] == '"' {
				sb.WriteByte('"')
				p.pos += 2
				continue
			}
			p.pos++
			return Value{Text: sb.String(), Quoted: true}, nil
		}
		if c == '\n' {
			p.line++
		}
		sb.WriteByte(c)
		p.pos++
	}
}
