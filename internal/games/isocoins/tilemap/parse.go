package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Mode selects how forgiving the parser is.
type Mode int

const (
	// Strict rejects anything that does not match the declared shape.
	Strict Mode = iota
	// Lenient turns bad digits into tile 0, pads short and missing rows
	// with tile 0 and drops surplus tokens.
	Lenient
)

// String returns the mode name used in configs and logs.
func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

// MaxCells bounds rows*cols of a parsed map.
const MaxCells = 1 << 20

// Options controls parsing.
type Options struct {
	Mode Mode
}

var (
	// ErrEmptyMap is returned for input without a tileset line.
	ErrEmptyMap = errors.New("tilemap: empty map")
	// ErrBadHeader is returned when the "<rows> <cols>" line is unusable.
	ErrBadHeader = errors.New("tilemap: bad size header")
)

// ParseError reports a problem at a specific place in the map text.
type ParseError struct {
	Line   int // 1-based line number
	Column int // 1-based token number, 0 when the whole line is at fault
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("tilemap: line %d, token %d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("tilemap: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseFile opens and parses the map file at path.
func ParseFile(path string, opts Options) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: cannot open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse reads a map from r.
func Parse(r io.Reader, opts Options) (*Map, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	tileset, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("tilemap: read failed: %w", err)
		}
		return nil, ErrEmptyMap
	}
	tileset = strings.TrimSpace(tileset)
	if tileset == "" {
		return nil, &ParseError{Line: lineNo, Msg: "missing tileset name", Err: ErrEmptyMap}
	}

	header, ok := next()
	if !ok {
		return nil, &ParseError{Line: lineNo + 1, Msg: "missing size line", Err: ErrBadHeader}
	}
	rows, cols, err := parseHeader(header, opts.Mode)
	if err != nil {
		return nil, &ParseError{Line: lineNo, Msg: err.Error(), Err: ErrBadHeader}
	}

	m := New(tileset, rows, cols)
	for row := 0; row < rows; row++ {
		line, ok := next()
		if !ok {
			if opts.Mode == Strict {
				return nil, &ParseError{
					Line: lineNo + 1,
					Msg:  fmt.Sprintf("expected %d rows, got %d", rows, row),
				}
			}
			break // Remaining rows keep tile 0
		}
		if err := parseRow(m, row, line, lineNo, opts.Mode); err != nil {
			return nil, err
		}
	}

	if opts.Mode == Strict {
		for {
			line, ok := next()
			if !ok {
				break
			}
			if isBlankOrComment(line) {
				continue
			}
			return nil, &ParseError{
				Line: lineNo,
				Msg:  fmt.Sprintf("unexpected data after %d declared rows", rows),
			}
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tilemap: read failed: %w", err)
	}
	return m, nil
}

func parseHeader(line string, mode Mode) (rows, cols int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || (mode == Strict && len(fields) != 2) {
		return 0, 0, fmt.Errorf("expected \"<rows> <cols>\", got %q", line)
	}
	rows, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row count %q", fields[0])
	}
	cols, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column count %q", fields[1])
	}
	if rows < 0 || cols < 0 {
		return 0, 0, fmt.Errorf("negative size %dx%d", rows, cols)
	}
	if rows == 0 || cols == 0 {
		return 0, 0, fmt.Errorf("empty size %dx%d", rows, cols)
	}
	if rows > MaxCells/cols {
		return 0, 0, fmt.Errorf("size %dx%d exceeds %d cells", rows, cols, MaxCells)
	}
	return rows, cols, nil
}

func parseRow(m *Map, row int, line string, lineNo int, mode Mode) error {
	tokens := rowTokens(line)

	if mode == Strict && len(tokens) != m.Cols() {
		return &ParseError{
			Line: lineNo,
			Msg:  fmt.Sprintf("expected %d tokens, got %d", m.Cols(), len(tokens)),
		}
	}

	for col := 0; col < m.Cols() && col < len(tokens); col++ {
		tile, err := parseToken(tokens[col], mode)
		if err != nil {
			return &ParseError{Line: lineNo, Column: col + 1, Msg: err.Error()}
		}
		m.Set(row, col, tile)
	}
	return nil
}

// rowTokens splits a row line and drops everything from the first comment token on.
func rowTokens(line string) []string {
	fields := strings.Fields(line)
	for i, f := range fields {
		if strings.HasPrefix(f, "/") {
			return fields[:i]
		}
	}
	return fields
}

func isBlankOrComment(line string) bool {
	return len(rowTokens(line)) == 0
}

// parseToken decodes a single cell token such as "3", "4c" or "c".
func parseToken(tok string, mode Mode) (Tile, error) {
	var t Tile
	if strings.HasSuffix(tok, "c") {
		t.HasCoin = true
		tok = strings.TrimSuffix(tok, "c")
	}
	if tok == "" {
		return t, nil
	}

	if mode == Lenient {
		t.Index = leadingInt(tok)
		return t, nil
	}

	idx, err := strconv.Atoi(tok)
	if err != nil || idx < 0 {
		return Tile{}, fmt.Errorf("invalid tile index %q", tok)
	}
	t.Index = idx
	return t, nil
}

// leadingInt parses the leading decimal digits of s, returning 0 when there are none.
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
