package p2p

import (
	"bytes"
	"fmt"
)

// Binary encoding of a WireValue tree, the recursive list/string format the
// protocol uses on the wire:
//
//	0x00-0x7f           single byte, encodes itself
//	0x80-0xb7           string of 0-55 bytes, prefix carries the length
//	0xb8-0xbf           string longer than 55 bytes, prefix carries the
//	                    width of the big-endian length that follows
//	0xc0-0xf7           list whose encoded payload is 0-55 bytes
//	0xf8-0xff           longer list, same length-of-length scheme
//
// Decoding enforces the canonical form: a single byte below 0x80 must be
// encoded as itself, the long form may only be used for sizes above 55, and
// length bytes must not carry a leading zero. Input from the network is
// adversarial, so every violation is a decode error rather than a leniency.

// Encode serializes the wire tree to its binary form
func (w *WireValue) Encode() []byte {
	var buf bytes.Buffer
	encodeWire(&buf, w)
	return buf.Bytes()
}

func encodeWire(buf *bytes.Buffer, w *WireValue) {
	if w.kind == KindString {
		if len(w.str) == 1 && w.str[0] < 0x80 {
			buf.WriteByte(w.str[0])
			return
		}
		writeHeader(buf, 0x80, len(w.str))
		buf.Write(w.str)
		return
	}

	var payload bytes.Buffer
	for _, item := range w.items {
		encodeWire(&payload, item)
	}
	writeHeader(buf, 0xc0, payload.Len())
	buf.Write(payload.Bytes())
}

func writeHeader(buf *bytes.Buffer, base byte, size int) {
	if size <= 55 {
		buf.WriteByte(base + byte(size))
		return
	}

	var length []byte
	for s := size; s > 0; s >>= 8 {
		length = append([]byte{byte(s)}, length...)
	}
	buf.WriteByte(base + 55 + byte(len(length)))
	buf.Write(length)
}

// DecodeWire parses a binary encoding back into a WireValue tree. The input
// must contain exactly one value; trailing bytes are a shape violation.
func DecodeWire(data []byte) (*WireValue, error) {
	v, rest, err := decodeWire(data)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%d trailing bytes after value: %w", len(rest), ErrMalformedShape)
	}
	return v, nil
}

func decodeWire(data []byte) (*WireValue, []byte, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("empty input: %w", ErrMalformedShape)
	}

	prefix := data[0]
	switch {
	case prefix < 0x80:
		return WireString(data[:1]), data[1:], nil

	case prefix <= 0xb7:
		size := int(prefix - 0x80)
		if len(data)-1 < size {
			return nil, nil, fmt.Errorf("string of %d bytes truncated: %w", size, ErrMalformedShape)
		}
		if size == 1 && data[1] < 0x80 {
			return nil, nil, fmt.Errorf("single byte below 0x80 must encode itself: %w", ErrMalformedShape)
		}
		return WireString(data[1 : 1+size]), data[1+size:], nil

	case prefix <= 0xbf:
		size, rest, err := decodeLength(int(prefix-0xb7), data[1:])
		if err != nil {
			return nil, nil, err
		}
		return WireString(rest[:size]), rest[size:], nil

	case prefix <= 0xf7:
		size := int(prefix - 0xc0)
		if len(data)-1 < size {
			return nil, nil, fmt.Errorf("list of %d bytes truncated: %w", size, ErrMalformedShape)
		}
		items, err := decodeList(data[1 : 1+size])
		if err != nil {
			return nil, nil, err
		}
		return WireList(items...), data[1+size:], nil

	default:
		size, rest, err := decodeLength(int(prefix-0xf7), data[1:])
		if err != nil {
			return nil, nil, err
		}
		items, err := decodeList(rest[:size])
		if err != nil {
			return nil, nil, err
		}
		return WireList(items...), rest[size:], nil
	}
}

// decodeLength reads a big-endian size of the given width and checks that
// the long form was warranted
func decodeLength(width int, data []byte) (int, []byte, error) {
	if len(data) < width {
		return 0, nil, fmt.Errorf("length of %d bytes truncated: %w", width, ErrMalformedShape)
	}
	if data[0] == 0 {
		return 0, nil, fmt.Errorf("length has superfluous leading zero: %w", ErrMalformedShape)
	}

	var size uint64
	for _, b := range data[:width] {
		size = size<<8 | uint64(b)
	}
	if size <= 55 {
		return 0, nil, fmt.Errorf("size %d must use the short form: %w", size, ErrMalformedShape)
	}
	if size > uint64(len(data)-width) {
		return 0, nil, fmt.Errorf("payload of %d bytes truncated: %w", size, ErrMalformedShape)
	}
	return int(size), data[width:], nil
}

func decodeList(payload []byte) ([]*WireValue, error) {
	var items []*WireValue
	for len(payload) > 0 {
		item, rest, err := decodeWire(payload)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		payload = rest
	}
	return items, nil
}
