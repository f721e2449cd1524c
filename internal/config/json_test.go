package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"string form", `"1h30m"`, 90 * time.Minute},
		{"numeric nanoseconds", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			if err := json.Unmarshal([]byte(tt.input), &d); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if time.Duration(d) != tt.want {
				t.Errorf("expected %v, got %v", tt.want, time.Duration(d))
			}
		})
	}
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	if err := json.Unmarshal([]byte(`"not-a-duration"`), &d); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestParseJSON_FullFile(t *testing.T) {
	content := `{
		"app": {"token_sign_key": "key", "token_issuer": "qr-notes", "token_duration": "1h"},
		"storage": {"db": {"dsn": "postgres://localhost/notes"}},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"client": {"server_url": "http://localhost:8080", "request_timeout": "15s"}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := parseJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.TokenSignKey != "key" || cfg.App.TokenIssuer != "qr-notes" {
		t.Errorf("unexpected app config: %+v", cfg.App)
	}
	if cfg.App.TokenDuration != time.Hour {
		t.Errorf("expected 1h token duration, got %v", cfg.App.TokenDuration)
	}
	if cfg.Server.HTTPAddress != "localhost:8080" || cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Client.ServerURL != "http://localhost:8080" || cfg.Client.RequestTimeout != 15*time.Second {
		t.Errorf("unexpected client config: %+v", cfg.Client)
	}
}

func TestParseJSON_MissingFile(t *testing.T) {
	if _, err := parseJSON("/nonexistent/config.json"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
