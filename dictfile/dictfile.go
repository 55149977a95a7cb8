package dictfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/fst"
)

// Reader streams key/value pairs from tab-separated dictionary text.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// Load parses tab-separated dictionary text and returns a ready-to-use
// frozen transducer.
//
// The format is one pair per line, key and decimal value separated by a
// single tab:
//
//	# surface form <TAB> ordinal
//	car	9
//	cat	5
//
// Values must be non-negative. Lines starting with '#' and blank lines
// are skipped; keys need not arrive in any particular order.
func Load(name string, reader io.Reader) (*fst.MemStore[int64], error) {
	r := NewReader(reader)
	return fst.LoadPairs(name, r)
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(reader)}
}

// Next returns the next pair. It returns io.EOF when exhausted.
func (r *Reader) Next() (string, int64, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if t := strings.TrimSpace(line); t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		key, field, ok := strings.Cut(line, "\t")
		if !ok {
			return "", 0, fmt.Errorf("line %d: missing tab separator", r.line)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return "", 0, fmt.Errorf("line %d: empty key", r.line)
		}
		value, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return "", 0, fmt.Errorf("line %d: bad value: %v", r.line, err)
		}
		if value < 0 {
			return "", 0, fmt.Errorf("line %d: negative value %d", r.line, value)
		}
		return key, value, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", 0, err
	}
	return "", 0, io.EOF
}
