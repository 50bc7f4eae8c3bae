package romset

// HaveSet reports whether the requested set is complete. SetAny is
// complete when at least one control slot and at least one PCM slot are
// populated; the named sets require their exact pairing. Pure query, no
// side effects.
func (m *Manager) HaveSet(set Set) bool {
	switch set {
	case SetAny:
		return (m.slots[SlotMT32OldControl] != nil ||
			m.slots[SlotMT32NewControl] != nil ||
			m.slots[SlotCM32LControl] != nil) &&
			(m.slots[SlotMT32PCM] != nil || m.slots[SlotCM32LPCM] != nil)

	case SetMT32Old:
		return m.slots[SlotMT32OldControl] != nil && m.slots[SlotMT32PCM] != nil

	case SetMT32New:
		return m.slots[SlotMT32NewControl] != nil && m.slots[SlotMT32PCM] != nil

	case SetCM32L:
		return m.slots[SlotCM32LControl] != nil && m.slots[SlotCM32LPCM] != nil
	}

	return false
}

// GetSet returns the two members of a complete set, or (nil, nil, false)
// when HaveSet(set) is false.
//
// For SetAny the control image is chosen by precedence: old MT-32, then
// new MT-32, then CM-32L. The PCM image keeps the pairing coherent: the
// CM-32L PCM bank is returned only when the chosen control is the CM-32L
// control and the bank is present; otherwise the MT-32 PCM bank.
func (m *Manager) GetSet(set Set) (control, pcm *Descriptor, ok bool) {
	if !m.HaveSet(set) {
		return nil, nil, false
	}

	switch set {
	case SetAny:
		switch {
		case m.slots[SlotMT32OldControl] != nil:
			control = m.slots[SlotMT32OldControl]
		case m.slots[SlotMT32NewControl] != nil:
			control = m.slots[SlotMT32NewControl]
		default:
			control = m.slots[SlotCM32LControl]
		}

		if control == m.slots[SlotCM32LControl] && m.slots[SlotCM32LPCM] != nil {
			pcm = m.slots[SlotCM32LPCM]
		} else {
			pcm = m.slots[SlotMT32PCM]
		}

	case SetMT32Old:
		control = m.slots[SlotMT32OldControl]
		pcm = m.slots[SlotMT32PCM]

	case SetMT32New:
		control = m.slots[SlotMT32NewControl]
		pcm = m.slots[SlotMT32PCM]

	case SetCM32L:
		control = m.slots[SlotCM32LControl]
		pcm = m.slots[SlotCM32LPCM]
	}

	return control, pcm, true
}
