package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/texpack/texpack/internal/fsops"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Manifest
		wantErr bool
	}{
		{
			name:    "publish with dependencies",
			content: `{"publish": true, "dependencies": ["../../common/base.cls", "logo.png"]}`,
			want:    Manifest{Publish: true, Dependencies: []string{"../../common/base.cls", "logo.png"}},
		},
		{
			name:    "publish absent defaults to false",
			content: `{"dependencies": ["a.tex"]}`,
			want:    Manifest{Dependencies: []string{"a.tex"}},
		},
		{
			name:    "dependencies absent defaults to empty",
			content: `{"publish": false}`,
			want:    Manifest{},
		},
		{
			name: "jsonc comments tolerated",
			content: `{
				// shared boilerplate
				"publish": true,
				"dependencies": [
					"../../common/base.cls", /* the class */
				],
			}`,
			want: Manifest{Publish: true, Dependencies: []string{"../../common/base.cls"}},
		},
		{
			name:    "malformed record",
			content: `{"publish": yes}`,
			wantErr: true,
		},
	}

	fs := fsops.NewRealFS()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "manifest.json")
			writeFile(t, path, tt.content)

			got, err := Load(fs, path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Publish != tt.want.Publish {
				t.Errorf("Publish = %v, want %v", got.Publish, tt.want.Publish)
			}
			if !reflect.DeepEqual(got.Dependencies, tt.want.Dependencies) {
				t.Errorf("Dependencies = %v, want %v", got.Dependencies, tt.want.Dependencies)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fs := fsops.NewRealFS()
	if _, err := Load(fs, filepath.Join(t.TempDir(), "manifest.json")); err == nil {
		t.Error("expected error for missing manifest, got nil")
	}
}

func TestLoadLenient_MalformedDegradesToEmpty(t *testing.T) {
	fs := fsops.NewRealFS()
	path := filepath.Join(t.TempDir(), "manifest.json")
	writeFile(t, path, "{not json")

	m, warning := LoadLenient(fs, path)
	if warning == "" {
		t.Error("expected a warning for malformed manifest")
	}
	if m.Publish || len(m.Dependencies) != 0 {
		t.Errorf("malformed manifest should degrade to empty, got %+v", m)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "templates", "invoice", "manifest.json"), "{}")
	writeFile(t, filepath.Join(root, "templates", "invoice", "invoice.tex"), "")
	writeFile(t, filepath.Join(root, "common", "base", "manifest.json"), "{}")
	// Directories that must be skipped
	writeFile(t, filepath.Join(root, ".git", "manifest.json"), "{}")
	writeFile(t, filepath.Join(root, "releases", "old", "manifest.json"), "{}")

	dirs, err := Discover(root, "manifest.json", []string{".git", "releases"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := map[string]bool{
		filepath.Join(root, "templates", "invoice"): true,
		filepath.Join(root, "common", "base"):       true,
	}
	if len(dirs) != len(want) {
		t.Fatalf("Discover found %d dirs %v, want %d", len(dirs), dirs, len(want))
	}
	for _, dir := range dirs {
		if !want[dir] {
			t.Errorf("unexpected manifest directory %s", dir)
		}
	}
}

func TestExists(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()

	if Exists(fs, dir, "manifest.json") {
		t.Error("Exists = true for directory without manifest")
	}
	writeFile(t, filepath.Join(dir, "manifest.json"), "{}")
	if !Exists(fs, dir, "manifest.json") {
		t.Error("Exists = false for directory with manifest")
	}
}
