package fst

import (
	"reflect"
	"testing"
)

func TestEncodeStringCodepoints(t *testing.T) {
	syms := EncodeString(nil, "für")
	want := []Label{'f', 'ü', 'r'}
	if !reflect.DeepEqual(syms, want) {
		t.Fatalf("für should encode as %v, is %v", want, syms)
	}
}

func TestEncodeStringAstralPlane(t *testing.T) {
	syms := EncodeString(nil, "a\U0001D11Eb")
	want := []Label{'a', 0x1D11E, 'b'}
	if !reflect.DeepEqual(syms, want) {
		t.Fatalf("astral code point should survive encoding: got %v, want %v", syms, want)
	}
}

func TestEncodeStringMalformed(t *testing.T) {
	syms := EncodeString(nil, string([]byte{'a', 0xC0, 'b'}))
	want := []Label{'a', 0xFFFD, 'b'}
	if !reflect.DeepEqual(syms, want) {
		t.Fatalf("malformed UTF-8 should decode to U+FFFD: got %v, want %v", syms, want)
	}
}

func TestEncodeStringReusesBuffer(t *testing.T) {
	first := EncodeString(make([]Label, 0, 16), "longer")
	second := EncodeString(first, "ab")
	if &first[0] != &second[0] {
		t.Fatalf("expected the backing array to be reused")
	}
	if len(second) != 2 || second[0] != 'a' || second[1] != 'b' {
		t.Fatalf("reused buffer holds wrong symbols: %v", second)
	}
}

func TestEncodeBytesUnsigned(t *testing.T) {
	syms := EncodeBytes(nil, []byte{0x00, 'a', 0xFF})
	want := []Label{0, 97, 255}
	if !reflect.DeepEqual(syms, want) {
		t.Fatalf("bytes should encode unsigned: got %v, want %v", syms, want)
	}
}
