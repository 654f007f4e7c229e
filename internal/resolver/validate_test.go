package resolver

import (
	"errors"
	"testing"
)

func TestValidateDeclaration(t *testing.T) {
	tests := []struct {
		name    string
		decl    string
		wantErr bool
	}{
		{
			name:    "relative ascent to shared root",
			decl:    "../../../common/fonts/custom.sty",
			wantErr: false,
		},
		{
			name:    "co-located file",
			decl:    "logo.png",
			wantErr: false,
		},
		{
			name:    "sibling directory",
			decl:    "../styles/mystyle",
			wantErr: false,
		},
		{
			name:    "absolute path",
			decl:    "/abs/path/file.tex",
			wantErr: true,
		},
		{
			name:    "backslash absolute path",
			decl:    `\share\file.tex`,
			wantErr: true,
		},
		{
			name:    "drive-letter path",
			decl:    `C:/templates/file.tex`,
			wantErr: true,
		},
		{
			name:    "shared root aliased from project root",
			decl:    "common/foo.tex",
			wantErr: true,
		},
		{
			name:    "shared root aliased with dot prefix",
			decl:    "./common/foo.tex",
			wantErr: true,
		},
		{
			name:    "bare shared root name",
			decl:    "common",
			wantErr: true,
		},
		{
			name:    "directory merely named like the root deeper in",
			decl:    "assets/common/foo.tex",
			wantErr: false,
		},
		{
			name:    "prefix-similar directory",
			decl:    "commonplace/foo.tex",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeclaration(tt.decl, "/repo/templates/invoice", "common")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDeclaration(%q) error = %v, wantErr %v", tt.decl, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDeclaration) {
				t.Errorf("error %v should match ErrInvalidDeclaration", err)
			}
		})
	}
}

func TestValidationError_Context(t *testing.T) {
	err := ValidateDeclaration("/abs/file.tex", "/repo/templates/invoice", "common")
	if err == nil {
		t.Fatal("expected error for absolute path")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if verr.Declaration != "/abs/file.tex" {
		t.Errorf("Declaration = %q, want the offending string", verr.Declaration)
	}
	if verr.ManifestDir != "/repo/templates/invoice" {
		t.Errorf("ManifestDir = %q, want the declaring manifest location", verr.ManifestDir)
	}
}
