package cli

import (
	"os"
	"path/filepath"
	"testing"

	arberrors "github.com/matzehuels/arbor/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr arberrors.Code
	}{
		{
			name:    "FullFile",
			content: "indent = 4\ncolor = false\nformat = \"png\"\n",
			want:    Config{Indent: 4, Color: false, Format: "png"},
		},
		{
			name:    "PartialFileKeepsDefaults",
			content: "indent = 3\n",
			want:    Config{Indent: 3, Color: true, Format: "svg"},
		},
		{
			name:    "BadTOML",
			content: "indent = = 4\n",
			wantErr: arberrors.ErrCodeInvalidFormat,
		},
		{
			name:    "BadIndent",
			content: "indent = 0\n",
			wantErr: arberrors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			got, err := loadConfig(path)

			if tt.wantErr != "" {
				if !arberrors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want code %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if got != tt.want {
				t.Errorf("config = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !arberrors.Is(err, arberrors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Indent != 2 || !cfg.Color || cfg.Format != "svg" {
		t.Errorf("defaults = %+v", cfg)
	}
}
