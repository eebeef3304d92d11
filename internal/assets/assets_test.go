package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/highlight"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "plain", nil},
		{"hyphen", "my-style", nil},
		{"underscore and digits", "style_2", nil},
		{"empty", "", ErrInvalidAssetName},
		{"forward slash", "a/b", ErrInvalidAssetName},
		{"backslash", `a\b`, ErrInvalidAssetName},
		{"traversal", "../secret", ErrInvalidAssetName},
		{"extension", "default.css", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateAssetName(tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("styles are listed", func(t *testing.T) {
		t.Parallel()
		got := strings.Join(loader.Styles(), ",")
		if got != "default,plain" {
			t.Errorf("Styles() = %q, want %q", got, "default,plain")
		}
	})

	t.Run("default style loads", func(t *testing.T) {
		t.Parallel()
		css, err := loader.LoadStyle(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if !strings.Contains(css, ".parse-error") {
			t.Error("default style has no rule for error fragments")
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()
		if _, err := loader.LoadStyle("nope"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()
		if _, err := loader.LoadStyle("../default"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func writeStyle(t *testing.T, dir, name, content string) {
	t.Helper()
	stylesDir := filepath.Join(dir, "styles")
	if err := os.MkdirAll(stylesDir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stylesDir, name+".css"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.css")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"missing", filepath.Join(t.TempDir(), "missing")},
		{"regular file", file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewFilesystemLoader(tt.path); !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("NewFilesystemLoader(%q) error = %v, want ErrInvalidBasePath", tt.path, err)
			}
		})
	}
}

func TestAssetResolver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "default", "body { color: red; }")
	writeStyle(t, dir, "custom", "p { margin: 0; }")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	if !resolver.HasCustomLoader() {
		t.Fatal("custom loader not configured")
	}

	tests := []struct {
		name    string
		style   string
		want    string
		wantErr error
	}{
		{"custom overrides embedded", "default", "body { color: red; }", nil},
		{"custom only", "custom", "p { margin: 0; }", nil},
		{"embedded fallback", "plain", "Georgia", nil},
		{"missing everywhere", "missing", "", ErrStyleNotFound},
		{"invalid name not retried", "a.b", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolver.LoadStyle(tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("LoadStyle(%q) = %q, want it to contain %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestAssetResolver_ResolveStyle(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "mine.css")
	if err := os.WriteFile(path, []byte("h1 { color: teal; }"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := resolver.ResolveStyle(path)
	if err != nil || got != "h1 { color: teal; }" {
		t.Errorf("ResolveStyle(path) = %q, %v", got, err)
	}

	if _, err := resolver.ResolveStyle(filepath.Join(t.TempDir(), "none.css")); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("ResolveStyle(missing) error = %v, want ErrStyleNotFound", err)
	}

	if got, err := resolver.ResolveStyle("plain"); err != nil || !strings.Contains(got, "Georgia") {
		t.Errorf("ResolveStyle(name) = %q, %v", got, err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := filepath.Join(t.TempDir(), "secret.css")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(outside, filepath.Join(base, "styles", "evil.css")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}
	if _, err := loader.LoadStyle("evil"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle() error = %v, want ErrPathTraversal", err)
	}
}

func TestCodeCSS(t *testing.T) {
	t.Parallel()

	css, err := CodeCSS(DefaultCodeStyleName)
	if err != nil {
		t.Fatalf("CodeCSS() error = %v", err)
	}
	for _, class := range []string{highlight.ClassKeyword, highlight.ClassComment, highlight.ClassLiteral} {
		if !strings.Contains(css, "."+class+" {") {
			t.Errorf("CodeCSS() has no rule for %s:\n%s", class, css)
		}
	}

	if _, err := CodeCSS("no-such-style"); !errors.Is(err, ErrCodeStyleNotFound) {
		t.Errorf("CodeCSS(unknown) error = %v, want ErrCodeStyleNotFound", err)
	}

	names := CodeStyles()
	found := false
	for _, n := range names {
		found = found || n == DefaultCodeStyleName
	}
	if !found {
		t.Errorf("CodeStyles() does not list %q", DefaultCodeStyleName)
	}
}
