package types

import "fmt"

// UnknownROMError is returned when a file cannot be identified as any
// known ROM image.
type UnknownROMError struct {
	Path   string
	Reason string
	Size   int64
	SHA1   string
}

func (e *UnknownROMError) Error() string {
	if e.SHA1 != "" {
		return fmt.Sprintf("%s: not a known ROM image: %s (size %d, sha1 %s)",
			e.Path, e.Reason, e.Size, e.SHA1)
	}
	return fmt.Sprintf("%s: not a known ROM image: %s", e.Path, e.Reason)
}

// DuplicateROMError is returned when a ROM resolves to a hardware-variant
// slot that is already filled; the first-seen image is kept.
type DuplicateROMError struct {
	Path     string
	Existing string
}

func (e *DuplicateROMError) Error() string {
	return fmt.Sprintf("%s: slot already filled by %s", e.Path, e.Existing)
}
