package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/texpack/texpack/internal/fsops"
)

func TestRewrite(t *testing.T) {
	rw := New("common")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "input directive",
			in:   `\input{../../common/fonts/custom.sty}`,
			want: `\input{common/fonts/custom.sty}`,
		},
		{
			name: "documentclass directive",
			in:   `\documentclass{../common/base/article-base}`,
			want: `\documentclass{common/base/article-base}`,
		},
		{
			name: "include directive",
			in:   `\include{../../../common/chapters/legal}`,
			want: `\include{common/chapters/legal}`,
		},
		{
			name: "subimport directory and file pair",
			in:   `\subimport{../../common/sections/}{intro}`,
			want: `\subimport{common/sections/}{intro}`,
		},
		{
			name: "graphicspath entries",
			in:   `\graphicspath{{../../common/img/}{./img/}}`,
			want: `\graphicspath{{common/img/}{./img/}}`,
		},
		{
			name: "ascent without shared root untouched",
			in:   `\input{../figures/plot.tex}`,
			want: `\input{../figures/plot.tex}`,
		},
		{
			name: "release-local path untouched",
			in:   `\input{common/fonts/custom.sty}`,
			want: `\input{common/fonts/custom.sty}`,
		},
		{
			name: "shared-root-like directory name not stripped",
			in:   `\input{../mycommon/fonts/custom.sty}`,
			want: `\input{../mycommon/fonts/custom.sty}`,
		},
		{
			name: "directive with whitespace before brace",
			in:   `\documentclass {../../common/base}`,
			want: `\documentclass {common/base}`,
		},
		{
			name: "ascent through an intermediate directory",
			in:   `\input{../../shared/common/fonts/custom.sty}`,
			want: `\input{common/fonts/custom.sty}`,
		},
		{
			name: "multiple directives in one document",
			in: `\documentclass{../../common/base/report-base}
\input{../../common/fonts/custom.sty}
\input{header.tex}`,
			want: `\documentclass{common/base/report-base}
\input{common/fonts/custom.sty}
\input{header.tex}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(rw.Rewrite([]byte(tt.in)))
			if got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	rw := New("common")

	in := `\documentclass{../../common/base/report-base}
\graphicspath{{../../common/img/}{./img/}}
\input{../../common/fonts/custom.sty}
`
	once := rw.Rewrite([]byte(in))
	twice := rw.Rewrite(once)
	if string(once) != string(twice) {
		t.Errorf("rewrite not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestRewrite_CustomSharedRoot(t *testing.T) {
	rw := New("shared")

	in := `\input{../../shared/fonts/custom.sty}`
	want := `\input{shared/fonts/custom.sty}`
	if got := string(rw.Rewrite([]byte(in))); got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewriteFile(t *testing.T) {
	fs := fsops.NewRealFS()
	rw := New("common")

	path := filepath.Join(t.TempDir(), "invoice.tex")
	in := `\input{../../common/fonts/custom.sty}` + "\n"
	if err := os.WriteFile(path, []byte(in), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if err := rw.RewriteFile(fs, path); err != nil {
		t.Fatalf("RewriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	want := `\input{common/fonts/custom.sty}` + "\n"
	if string(got) != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestRewriteFile_Missing(t *testing.T) {
	fs := fsops.NewRealFS()
	rw := New("common")

	if err := rw.RewriteFile(fs, filepath.Join(t.TempDir(), "missing.tex")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
