package romset

// Identity-string positions inspected by the classifier. The catalog's
// short-name layout is a versioned contract: control names carry the
// generation discriminant at index 10 ("ctrl_mt32_1_07"), PCM names the
// model discriminant at index 4 ("pcm_mt32").
const (
	controlVariantIndex = 10
	pcmVariantIndex     = 4
)

// classifySlot maps an identified descriptor to its hardware-variant
// slot. Descriptors of unknown type, or whose identity string is shorter
// than the discriminant position, are rejected rather than indexed out
// of bounds.
func classifySlot(d *Descriptor) (Slot, bool) {
	switch d.Type {
	case TypeControl:
		if len(d.ShortName) <= controlVariantIndex {
			return 0, false
		}
		switch d.ShortName[controlVariantIndex] {
		case '1', 'b':
			// First-generation MT-32, including the Blue Ridge mod.
			return SlotMT32OldControl, true
		case '2':
			return SlotMT32NewControl, true
		default:
			return SlotCM32LControl, true
		}

	case TypePCM:
		if len(d.ShortName) <= pcmVariantIndex {
			return 0, false
		}
		if d.ShortName[pcmVariantIndex] == 'm' {
			return SlotMT32PCM, true
		}
		return SlotCM32LPCM, true
	}

	return 0, false
}
