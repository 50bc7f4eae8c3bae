package types

import (
	"strings"
	"testing"
)

func TestUnknownROMError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *UnknownROMError
		contains []string
	}{
		{
			name: "with digest",
			err: &UnknownROMError{
				Path:   "roms/mystery.bin",
				Reason: "digest not in catalog",
				Size:   65536,
				SHA1:   "da39a3ee5e6b4b0d3255bfef95601890afd80709",
			},
			contains: []string{"roms/mystery.bin", "digest not in catalog", "65536", "da39a3ee"},
		},
		{
			name: "without digest",
			err: &UnknownROMError{
				Path:   "roms/huge.bin",
				Reason: "larger than 2097152 bytes",
			},
			contains: []string{"roms/huge.bin", "larger than 2097152 bytes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestDuplicateROMError_Error(t *testing.T) {
	err := &DuplicateROMError{
		Path:     "roms/second.rom",
		Existing: "roms/first.rom",
	}

	msg := err.Error()
	if !strings.Contains(msg, "roms/second.rom") {
		t.Errorf("error should contain rejected path, got: %s", msg)
	}
	if !strings.Contains(msg, "roms/first.rom") {
		t.Errorf("error should contain existing path, got: %s", msg)
	}
}
