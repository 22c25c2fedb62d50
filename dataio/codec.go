package dataio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/meshkit/errs"
)

const maxLineBytes = 16 << 20

// ErrEmptyField is wrapped by a MalformedRowError for a row with two
// adjacent commas, or a leading or trailing comma.
var ErrEmptyField = errors.New("empty field")

// splitFields splits a row on runs of whitespace and on single commas.
// It returns the number of comma-separated parts and false if one of them
// is blank.
func splitFields(text string) ([]string, int, bool) {
	if !strings.Contains(text, ",") {
		return strings.Fields(text), 0, true
	}
	parts := strings.Split(text, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		f := strings.Fields(p)
		if len(f) == 0 {
			return nil, len(parts), false
		}
		fields = append(fields, f...)
	}
	return fields, len(parts), true
}

// Decode parses a numeric table. Every non-comment row must have the
// column count of the first one.
func Decode(r io.Reader) (Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var t Table
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields, parts, ok := splitFields(text)
		if !ok {
			return nil, &MalformedRowError{Line: line, Expected: len(t), Actual: parts, Err: ErrEmptyField}
		}
		if t == nil {
			t = make(Table, len(fields))
		}
		if len(fields) != len(t) {
			return nil, &MalformedRowError{Line: line, Expected: len(t), Actual: len(fields)}
		}

		for c, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &MalformedRowError{Line: line, Expected: len(t), Actual: len(fields), Err: err}
			}
			t[c] = append(t[c], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", errs.ErrIO, err)
	}
	return t, nil
}

// Encode writes t as tab-separated rows. Values use the shortest
// representation that parses back to the same float64.
func Encode(w io.Writer, t Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32*len(t))
	for r := range t.NumRows() {
		buf = buf[:0]
		for c := range t {
			if c > 0 {
				buf = append(buf, '\t')
			}
			buf = strconv.AppendFloat(buf, t[c][r], 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
