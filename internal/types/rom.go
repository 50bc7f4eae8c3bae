// Package types provides core data structures for ROM image discovery.
//
// This package defines the ROMType, Descriptor, Slot, and Set types that
// represent identified ROM images and the fixed hardware-variant slots
// they are classified into.
package types

// ROMType distinguishes the two kinds of ROM image a sound module carries.
type ROMType int

const (
	// TypeUnknown represents an unidentified or unsupported image.
	TypeUnknown ROMType = iota
	// TypeControl represents a control (firmware) ROM image.
	TypeControl
	// TypePCM represents a PCM (sample data) ROM image.
	TypePCM
)

// String returns a human-readable name for the ROM type.
func (t ROMType) String() string {
	switch t {
	case TypeControl:
		return "Control"
	case TypePCM:
		return "PCM"
	default:
		return "Unknown"
	}
}

// Descriptor describes one identified ROM image.
//
// ShortName is the fixed-layout identity string the classifier inspects
// (for example "ctrl_mt32_1_07" or "pcm_cm32l"). Its layout is a versioned
// contract with the catalog; consumers must bounds-check before indexing
// into it.
type Descriptor struct {
	// ShortName is the catalog identity string, fixed layout.
	ShortName string

	// FullName is a human-readable description of the image.
	FullName string

	// Type is the image kind (control or PCM).
	Type ROMType

	// Size is the image size in bytes.
	Size int64

	// SHA1 is the lowercase hex digest of the image contents.
	SHA1 string

	// Path is where the image was found, empty if identified from a
	// bare stream.
	Path string
}

// String returns "shortname (Full Name)" for logs and tooling.
func (d *Descriptor) String() string {
	if d.FullName == "" {
		return d.ShortName
	}
	return d.ShortName + " (" + d.FullName + ")"
}
