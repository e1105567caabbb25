package p2p

import (
	"errors"
	"strings"
	"testing"
)

func TestNewPacket(t *testing.T) {
	for code := range packetPrototypes {
		p, err := NewPacket(code)
		if err != nil {
			t.Errorf("NewPacket(%s) err = %v", code, err)
			continue
		}
		if p.Type() != code {
			t.Errorf("NewPacket(%s).Type() = %s", code, p.Type())
		}
	}

	if _, err := NewPacket(PacketType(0x7f)); err == nil || !strings.Contains(err.Error(), "unknown packet type") {
		t.Errorf("NewPacket(0x7f) err = %v, want unknown packet type", err)
	}
}

func TestDeserializePacket(t *testing.T) {
	hash := Hash([]byte("block"))
	sent := &NewBlockHashesPacket{Announcements: []BlockAnnouncement{{Hash: hash, Number: 77}}}

	p, err := DeserializePacket(TypeNewBlockHashes, sent.Serialize())
	if err != nil {
		t.Fatalf("DeserializePacket() err = %v", err)
	}

	decoded, ok := p.(*NewBlockHashesPacket)
	if !ok {
		t.Fatalf("DeserializePacket() returned %T", p)
	}
	if len(decoded.Announcements) != 1 || decoded.Announcements[0].Hash != hash {
		t.Errorf("DeserializePacket() = %+v", decoded)
	}
}

func TestDeserializePacket_Errors(t *testing.T) {
	if _, err := DeserializePacket(PacketType(0x7f), WireList()); err == nil {
		t.Errorf("unknown type must surface an error")
	}

	if _, err := DeserializePacket(TypeNewBlockHashes, WireString([]byte("garbage"))); !errors.Is(err, ErrMalformedShape) {
		t.Errorf("err = %v, want ErrMalformedShape", err)
	}

	over := &NewBlockHashesPacket{Announcements: testAnnouncements(MaxListElements + 1)}
	if _, err := DeserializePacket(TypeNewBlockHashes, over.Serialize()); !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("err = %v, want ErrLimitExceeded", err)
	}
}

func TestPacketType_String(t *testing.T) {
	tests := []struct {
		t    PacketType
		want string
	}{
		{TypeStatus, "Status"},
		{TypeNewBlockHashes, "NewBlockHashes"},
		{TypeTransactions, "Transactions"},
		{PacketType(0x42), "Unknown(0x42)"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("PacketType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}
