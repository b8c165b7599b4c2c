package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid https config",
			config: Config{
				ServiceURI: "https://api.example.com/finance",
				LogLevel:   "info",
			},
			wantErr: false,
		},
		{
			name: "valid http config with debug level",
			config: Config{
				ServiceURI: "http://localhost:8080",
				LogLevel:   "debug",
			},
			wantErr: false,
		},
		{
			name:        "missing service URI",
			config:      Config{LogLevel: "info"},
			wantErr:     true,
			errorString: "EASYFIN_SERVICE_URI is required",
		},
		{
			name: "invalid scheme",
			config: Config{
				ServiceURI: "ftp://api.example.com",
				LogLevel:   "info",
			},
			wantErr:     true,
			errorString: "invalid service URI scheme 'ftp'",
		},
		{
			name: "invalid log level",
			config: Config{
				ServiceURI: "https://api.example.com",
				LogLevel:   "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("EASYFIN_SERVICE_URI", "https://api.example.com")
	t.Setenv("EASYFIN_USERNAME", "bob")
	t.Setenv("EASYFIN_LOG_BODIES", "true")

	cfg := Load()
	if cfg.ServiceURI != "https://api.example.com" {
		t.Errorf("ServiceURI = %q", cfg.ServiceURI)
	}
	if cfg.Username != "bob" {
		t.Errorf("Username = %q", cfg.Username)
	}
	if !cfg.LogBodies {
		t.Error("LogBodies = false, want true")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel default = %q, want info", cfg.LogLevel)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
