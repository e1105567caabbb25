package p2p

import "testing"

func TestNewNetworkID(t *testing.T) {
	// first four bytes of the Keccak-256 digest of the name
	if id := NewNetworkID("MainNet"); id != NetworkID(0xfb05e012) {
		t.Errorf("NewNetworkID(MainNet) = %x", uint32(id))
	}

	if NewNetworkID("custom") != NewNetworkID("custom") {
		t.Errorf("network id derivation must be deterministic")
	}
	if NewNetworkID("custom") == NewNetworkID("other") {
		t.Errorf("distinct names must map to distinct ids")
	}
}

func TestNetworkID_String(t *testing.T) {
	tests := []struct {
		id   NetworkID
		want string
	}{
		{MainNet, "MainNet"},
		{TestNet, "TestNet"},
		{LocalNet, "LocalNet"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
