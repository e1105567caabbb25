package p2p

import (
	"bytes"
	"errors"
	"testing"
)

func TestWireCodec_KnownEncodings(t *testing.T) {
	longString := []byte("Lorem ipsum dolor sit amet, consectetur adipisicing elit")

	tests := []struct {
		name string
		v    *WireValue
		want []byte
	}{
		{"empty string", WireString(nil), []byte{0x80}},
		{"single low byte", WireString([]byte{0x0f}), []byte{0x0f}},
		{"single high byte", WireString([]byte{0x80}), []byte{0x81, 0x80}},
		{"short string", WireString([]byte("dog")), []byte{0x83, 'd', 'o', 'g'}},
		{"two byte integer", WireUint(0x0400), []byte{0x82, 0x04, 0x00}},
		{"long string", WireString(longString), append([]byte{0xb8, 0x38}, longString...)},
		{"empty list", WireList(), []byte{0xc0}},
		{"string list", WireList(WireString([]byte("cat")), WireString([]byte("dog"))),
			[]byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}},
		{"set theoretic nesting", WireList(WireList(), WireList(WireList()), WireList(WireList(), WireList(WireList()))),
			[]byte{0xc7, 0xc0, 0xc1, 0xc0, 0xc3, 0xc0, 0xc1, 0xc0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := tt.v.Encode()
			if !bytes.Equal(enc, tt.want) {
				t.Errorf("Encode() = %x, want %x", enc, tt.want)
			}

			dec, err := DecodeWire(enc)
			if err != nil {
				t.Fatalf("DecodeWire() err = %v", err)
			}
			if !dec.Equal(tt.v) {
				t.Errorf("DecodeWire() = %v, want %v", dec, tt.v)
			}
		})
	}
}

func TestWireCodec_LongList(t *testing.T) {
	var items []*WireValue
	for i := 0; i < 64; i++ {
		items = append(items, WireString([]byte{byte(i), byte(i)}))
	}
	v := WireList(items...)

	enc := v.Encode()
	// 64 items of 3 encoded bytes each exceeds the 55-byte short form
	if enc[0] != 0xf8 || enc[1] != 192 {
		t.Errorf("long list header = %x %x, want f8 c0", enc[0], enc[1])
	}

	dec, err := DecodeWire(enc)
	if err != nil {
		t.Fatalf("DecodeWire() err = %v", err)
	}
	if !dec.Equal(v) {
		t.Errorf("long list did not round trip")
	}
}

func TestWireCodec_DecodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty input", nil},
		{"non-canonical single byte", []byte{0x81, 0x05}},
		{"truncated string", []byte{0x83, 'd', 'o'}},
		{"truncated long string header", []byte{0xb8}},
		{"long form for short size", append([]byte{0xb8, 0x05}, make([]byte, 5)...)},
		{"length with leading zero", append([]byte{0xb9, 0x00, 0x38}, make([]byte, 56)...)},
		{"truncated list", []byte{0xc3, 0x81}},
		{"truncated list payload", []byte{0xc2, 0x83, 'd'}},
		{"trailing bytes", []byte{0xc0, 0x00}},
		{"truncated long list size", []byte{0xf8, 0x38, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeWire(tt.input); !errors.Is(err, ErrMalformedShape) {
				t.Errorf("DecodeWire(%x) err = %v, want ErrMalformedShape", tt.input, err)
			}
		})
	}
}

func TestWireCodec_DeepRoundTrip(t *testing.T) {
	v := WireList(
		WireUint(1),
		WireString([]byte("transaction payload bytes")),
		WireList(
			WireList(WireString(make([]byte, 32)), WireUint(1024)),
			WireList(WireString(bytes.Repeat([]byte{0xaa}, 32)), WireUint(0)),
		),
		WireString(bytes.Repeat([]byte{0x55}, 300)),
	)

	dec, err := DecodeWire(v.Encode())
	if err != nil {
		t.Fatalf("DecodeWire() err = %v", err)
	}
	if !dec.Equal(v) {
		t.Errorf("deep tree did not round trip")
	}
}
