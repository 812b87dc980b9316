// internal/packet/decode_test.go
package packet

import (
	"errors"
	"testing"
)

func TestDecode_Int8Scenario(t *testing.T) {
	// slave=1, type=int8, count=3, values 25 60 99
	p, err := Decode([]byte{0x01, 0x01, 0x03, 0x19, 0x3C, 0x63})
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if p.SlaveAddress != 1 {
		t.Fatalf("slave=%d, want 1", p.SlaveAddress)
	}
	if p.Type != Int8 {
		t.Fatalf("type=%s, want int8", p.Type)
	}
	want := []float64{25, 60, 99}
	if len(p.Values) != len(want) {
		t.Fatalf("got %d values, want %d", len(p.Values), len(want))
	}
	for i := range want {
		if p.Values[i] != want[i] {
			t.Fatalf("values[%d]=%v, want %v", i, p.Values[i], want[i])
		}
	}
}

func TestDecode_ShortInput(t *testing.T) {
	for _, in := range [][]byte{nil, {}, {0x01}, {0x01, 0x01}} {
		if _, err := Decode(in); !errors.Is(err, ErrPayloadSize) {
			t.Fatalf("Decode(%x) err=%v, want ErrPayloadSize", in, err)
		}
	}
}

func TestDecode_UnknownTypeCode(t *testing.T) {
	_, err := Decode([]byte{0x05, 0x09, 0x01, 0x00})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err=%v, want ErrUnknownType", err)
	}
}

func TestDecode_ZeroCount(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x01, 0x00})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err=%v, want ErrInvalidArgument", err)
	}
}

func TestDecode_PayloadSizeExactness(t *testing.T) {
	// float32, count=2: payload must be exactly 8 bytes.
	base := []byte{0x01, 0x02, 0x02}

	tests := []struct {
		name string
		n    int
		ok   bool
	}{
		{"one byte short", 7, false},
		{"exact", 8, true},
		{"one byte long", 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append(append([]byte{}, base...), make([]byte, tt.n)...)
			_, err := Decode(in)
			if tt.ok && err != nil {
				t.Fatalf("Decode err=%v", err)
			}
			if !tt.ok && !errors.Is(err, ErrPayloadSize) {
				t.Fatalf("err=%v, want ErrPayloadSize", err)
			}
		})
	}
}

func TestDecodeHex_Paths(t *testing.T) {
	// Same packet via bytes and via hex text must agree.
	fromHex, err := DecodeHex("01011903071e1c")
	if err != nil {
		t.Fatalf("DecodeHex err=%v", err)
	}
	fromBytes, err := Decode([]byte{0x01, 0x01, 0x03, 0x07, 0x1E, 0x1C})
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if fromHex.SlaveAddress != fromBytes.SlaveAddress || fromHex.Type != fromBytes.Type {
		t.Fatalf("hex and byte paths disagree: %+v vs %+v", fromHex, fromBytes)
	}
	for i := range fromBytes.Values {
		if fromHex.Values[i] != fromBytes.Values[i] {
			t.Fatalf("values[%d]: hex=%v bytes=%v", i, fromHex.Values[i], fromBytes.Values[i])
		}
	}

	// Upper case is accepted.
	if _, err := DecodeHex("0101031 9 3C63"); err == nil {
		t.Fatalf("expected error for hex with separators")
	}
	if _, err := DecodeHex("010103193C63"); err != nil {
		t.Fatalf("upper-case hex err=%v", err)
	}
}

func TestDecodeHex_MalformedHexIsDistinct(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"odd length", "01011"},
		{"non-hex digit", "01zz03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeHex(tt.in)
			if !errors.Is(err, ErrMalformedHex) {
				t.Fatalf("err=%v, want ErrMalformedHex", err)
			}
			if errors.Is(err, ErrPayloadSize) || errors.Is(err, ErrUnknownType) {
				t.Fatalf("malformed hex reported as structural error: %v", err)
			}
		})
	}

	// Structurally bad but well-formed hex must NOT be ErrMalformedHex.
	_, err := DecodeHex("0101")
	if errors.Is(err, ErrMalformedHex) {
		t.Fatalf("short packet reported as malformed hex: %v", err)
	}
}
