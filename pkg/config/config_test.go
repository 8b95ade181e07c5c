package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Dicklesworthstone/compactview/pkg/host"
	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "compactview.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Config
		wantErr  string
	}{
		{
			name:     "empty file",
			input:    "",
			expected: Default(),
		},
		{
			name:  "all fields",
			input: "threshold: 100\ndebounce: 250ms\norientation: true\nlog_level: debug\n",
			expected: Config{
				Threshold:   100,
				Debounce:    Duration(250 * time.Millisecond),
				Orientation: true,
				LogLevel:    "debug",
			},
		},
		{
			name:  "partial keeps defaults",
			input: "threshold: 80\n",
			expected: Config{
				Threshold: 80,
				Debounce:  Duration(viewport.DefaultDebounceDelay),
				LogLevel:  "info",
			},
		},
		{
			name:  "zero debounce and negative threshold accepted",
			input: "threshold: -5\ndebounce: 0s\n",
			expected: Config{
				Threshold: -5,
				LogLevel:  "info",
			},
		},
		{
			name:    "unknown key",
			input:   "breakpoints: [1, 2]\n",
			wantErr: "field breakpoints not found",
		},
		{
			name:    "bad duration",
			input:   "debounce: soon\n",
			wantErr: "invalid duration",
		},
		{
			name:  "negative debounce treated as zero",
			input: "debounce: -1s\n",
			expected: Config{
				Threshold: viewport.DefaultThreshold,
				LogLevel:  "info",
			},
		},
		{
			name:    "bad log level",
			input:   "log_level: loud\n",
			wantErr: "unknown log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "threshold: 120\norientation: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Threshold != 120 || !cfg.Orientation {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestOptions_ConfigureClassifier(t *testing.T) {
	cfg := Config{Threshold: 100, Debounce: Duration(50 * time.Millisecond), Orientation: true}

	c := viewport.New(host.NewMemory(120, 40), cfg.Options()...)
	defer c.Close()

	if c.Threshold() != 100 {
		t.Errorf("Expected threshold 100, got %d", c.Threshold())
	}
	if c.Delay() != 50*time.Millisecond {
		t.Errorf("Expected delay 50ms, got %v", c.Delay())
	}
	if c.Mode() != viewport.ModeOrientation {
		t.Errorf("Expected orientation mode, got %v", c.Mode())
	}
	if !c.Compact() {
		t.Error("Expected 120x40 compact at 100 in orientation mode")
	}
}
