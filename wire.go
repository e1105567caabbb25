package p2p

import (
	"bytes"
	"fmt"
)

// WireKind distinguishes the two shapes a WireValue can take
type WireKind uint8

const (
	// KindString is a plain byte string leaf
	KindString WireKind = iota
	// KindList is an ordered sequence of nested WireValues
	KindList
)

// WireValue is the universal interchange shape between the transport and the
// codec: a tree in which every node is either a byte string or an ordered
// list of further WireValues. Packets serialize into a WireValue and are
// deserialized from one; the transport is responsible only for carrying the
// encoded bytes.
//
// WireValues are immutable once constructed. Constructors copy their input
// so a decoded tree never aliases the read buffer.
type WireValue struct {
	kind  WireKind
	str   []byte
	items []*WireValue
}

// WireString creates a byte string leaf
func WireString(b []byte) *WireValue {
	return &WireValue{kind: KindString, str: append([]byte(nil), b...)}
}

// WireUint creates a byte string leaf holding the minimal big-endian
// representation of n. Zero encodes as the empty string.
func WireUint(n uint64) *WireValue {
	var b []byte
	for n > 0 {
		b = append([]byte{byte(n)}, b...)
		n >>= 8
	}
	return &WireValue{kind: KindString, str: b}
}

// WireList creates an ordered list of the given values
func WireList(items ...*WireValue) *WireValue {
	return &WireValue{kind: KindList, items: items}
}

// Kind returns the shape of this value
func (w *WireValue) Kind() WireKind {
	return w.kind
}

// Bytes returns the payload of a string leaf. Calling it on a list is a
// shape violation.
func (w *WireValue) Bytes() ([]byte, error) {
	if w.kind != KindString {
		return nil, fmt.Errorf("expected byte string, got list: %w", ErrMalformedShape)
	}
	return append([]byte(nil), w.str...), nil
}

// Uint interprets a string leaf as a big-endian unsigned integer. The
// encoding must be minimal: a leading zero byte or a width beyond 8 bytes is
// rejected. The empty string decodes to zero.
func (w *WireValue) Uint() (uint64, error) {
	if w.kind != KindString {
		return 0, fmt.Errorf("expected integer, got list: %w", ErrMalformedShape)
	}
	if len(w.str) > 8 {
		return 0, fmt.Errorf("integer of %d bytes overflows uint64: %w", len(w.str), ErrMalformedShape)
	}
	if len(w.str) > 0 && w.str[0] == 0 {
		return 0, fmt.Errorf("integer has superfluous leading zero: %w", ErrMalformedShape)
	}
	var n uint64
	for _, b := range w.str {
		n = n<<8 | uint64(b)
	}
	return n, nil
}

// Items returns the elements of a list. Calling it on a string leaf is a
// shape violation, the typical case being a packet decoded from a non-list
// top-level value.
func (w *WireValue) Items() ([]*WireValue, error) {
	if w.kind != KindList {
		return nil, fmt.Errorf("expected list, got byte string: %w", ErrMalformedShape)
	}
	return w.items, nil
}

// Equal reports whether two wire trees are structurally identical
func (w *WireValue) Equal(o *WireValue) bool {
	if w.kind != o.kind {
		return false
	}
	if w.kind == KindString {
		return bytes.Equal(w.str, o.str)
	}
	if len(w.items) != len(o.items) {
		return false
	}
	for i := range w.items {
		if !w.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

func (w *WireValue) String() string {
	if w.kind == KindString {
		return fmt.Sprintf("%x", w.str)
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, it := range w.items {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(it.String())
	}
	buf.WriteByte(']')
	return buf.String()
}
