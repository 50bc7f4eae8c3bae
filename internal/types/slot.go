package types

// Slot is a fixed storage location for at most one ROM descriptor of a
// specific hardware variant. The five slots cover the control ROM
// generations and the two PCM banks of the MT-32 family.
type Slot int

const (
	// SlotMT32OldControl holds a first-generation MT-32 control ROM
	// (v1.x or the Blue Ridge modification).
	SlotMT32OldControl Slot = iota
	// SlotMT32NewControl holds a second-generation MT-32 control ROM (v2.x).
	SlotMT32NewControl
	// SlotCM32LControl holds a CM-32L/LAPC-I control ROM.
	SlotCM32LControl
	// SlotMT32PCM holds the MT-32 PCM bank.
	SlotMT32PCM
	// SlotCM32LPCM holds the CM-32L PCM bank.
	SlotCM32LPCM

	// SlotCount is the number of slots; valid slots are 0..SlotCount-1.
	SlotCount
)

// String returns a human-readable name for the slot.
func (s Slot) String() string {
	switch s {
	case SlotMT32OldControl:
		return "MT-32 old control"
	case SlotMT32NewControl:
		return "MT-32 new control"
	case SlotCM32LControl:
		return "CM-32L control"
	case SlotMT32PCM:
		return "MT-32 PCM"
	case SlotCM32LPCM:
		return "CM-32L PCM"
	default:
		return "invalid slot"
	}
}

// Set names a control+PCM pairing requirement for one emulated hardware
// variant. A set is complete when both of its slots are populated; SetAny
// is complete when any control slot and any PCM slot are populated.
type Set int

const (
	// SetAny matches any complete control/PCM pairing.
	SetAny Set = iota
	// SetMT32Old requires the old MT-32 control ROM and the MT-32 PCM bank.
	SetMT32Old
	// SetMT32New requires the new MT-32 control ROM and the MT-32 PCM bank.
	SetMT32New
	// SetCM32L requires the CM-32L control ROM and the CM-32L PCM bank.
	SetCM32L
)

// String returns a human-readable name for the set.
func (s Set) String() string {
	switch s {
	case SetAny:
		return "any"
	case SetMT32Old:
		return "MT-32 (old)"
	case SetMT32New:
		return "MT-32 (new)"
	case SetCM32L:
		return "CM-32L"
	default:
		return "invalid set"
	}
}
