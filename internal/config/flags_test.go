package config

import "testing"

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{"localhost with port", "localhost:8080", false, "localhost:8080"},
		{"ip with port", "127.0.0.1:9090", false, "127.0.0.1:9090"},
		{"missing port", "localhost", true, ""},
		{"bad port", "localhost:abc", true, ""},
		{"zero port", "localhost:0", true, ""},
		{"bad host", "not-an-ip:8080", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, a.String())
			}
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	if got := a.String(); got != "" {
		t.Errorf("expected empty string for zero NetAddress, got %q", got)
	}
}
