package fst

import (
	"fmt"
	"io"
)

// PairReader yields key/value pairs one-by-one.
// It should return io.EOF when the stream is exhausted.
type PairReader interface {
	Next() (key string, value int64, err error)
}

// LoadPairs builds a frozen integer transducer from a streaming,
// format-agnostic pair source.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package dictfile to parse concrete formats and feed this
// API.
func LoadPairs(name string, reader PairReader) (*MemStore[int64], error) {
	st := NewMemStore[int64](IntOutputs{})
	st.Identifier = fmt.Sprintf("pairs: %s", name)
	for {
		key, value, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := st.InsertString(key, value); err != nil {
			return nil, fmt.Errorf("could not insert key %q: %v", key, err)
		}
	}
	st.Freeze()
	return st, nil
}
