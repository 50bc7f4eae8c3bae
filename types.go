package romset

import (
	"github.com/mt32kit/romset/internal/romfile"
	"github.com/mt32kit/romset/internal/types"
)

// ROMType is an alias to types.ROMType; it distinguishes control ROMs
// from PCM ROMs.
type ROMType = types.ROMType

// Descriptor is an alias to types.Descriptor; it describes one
// identified ROM image.
type Descriptor = types.Descriptor

// Slot is an alias to types.Slot; a fixed location holding at most one
// descriptor of a specific hardware variant.
type Slot = types.Slot

// Set is an alias to types.Set; a named control+PCM pairing requirement.
type Set = types.Set

// ROMDefinition is an alias to romfile.Entry; one known-ROM catalog
// entry, usable with WithROMDefinitions.
type ROMDefinition = romfile.Entry

// Re-export all ROM type constants.
const (
	TypeUnknown = types.TypeUnknown
	TypeControl = types.TypeControl
	TypePCM     = types.TypePCM
)

// Re-export all slot constants.
const (
	SlotMT32OldControl = types.SlotMT32OldControl
	SlotMT32NewControl = types.SlotMT32NewControl
	SlotCM32LControl   = types.SlotCM32LControl
	SlotMT32PCM        = types.SlotMT32PCM
	SlotCM32LPCM       = types.SlotCM32LPCM
	SlotCount          = types.SlotCount
)

// Re-export all set constants.
const (
	SetAny     = types.SetAny
	SetMT32Old = types.SetMT32Old
	SetMT32New = types.SetMT32New
	SetCM32L   = types.SetCM32L
)
