package cli

import (
	"testing"

	"github.com/LGimbel/boggle-solver/pkg/errors"
)

func TestValidatePathFormat(t *testing.T) {
	for _, format := range []string{formatDOT, formatSVG, formatPNG} {
		if err := validatePathFormat(format); err != nil {
			t.Errorf("validatePathFormat(%q) error = %v", format, err)
		}
	}
}

func TestValidatePathFormatUnsupported(t *testing.T) {
	err := validatePathFormat("pdf")
	if err == nil {
		t.Fatal("validatePathFormat(\"pdf\") should fail")
	}
	if errors.GetCode(err) != errors.ErrCodeUnsupported {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupported)
	}
}
