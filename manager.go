package romset

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
)

// Manager discovers ROM images on a volume and holds the classified
// results: at most one descriptor per hardware-variant slot, first
// successful classification wins.
//
// Manager is not safe for concurrent use. The expected lifecycle is
// New, Scan once at startup, queries, then Close.
type Manager struct {
	fsys          fs.FS
	romDir        string
	legacyControl string
	legacyPCM     string
	validator     Validator
	logger        *slog.Logger

	slots [SlotCount]*Descriptor
}

// New returns a Manager with empty slots.
func New(opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Manager{
		fsys:          cfg.fsys,
		romDir:        cfg.romDir,
		legacyControl: cfg.legacyControl,
		legacyPCM:     cfg.legacyPCM,
		validator:     cfg.resolveValidator(),
		logger:        cfg.logger,
	}
}

// Scan discovers ROM images and populates the slots.
//
// Every regular, non-hidden entry in the ROM directory is fed through
// the open, identify, classify, store pipeline; individual failures are
// logged and skipped. If the pass leaves no complete set (per SetAny),
// the legacy flat layout is tried: the two fixed filenames at the volume
// root, both of which must succeed.
//
// Returns ErrNoROMSet when neither path yields a complete set. Any
// other condition, including an unreadable ROM directory, is non-fatal.
func (m *Manager) Scan() error {
	entries, err := fs.ReadDir(m.fsys, m.romDir)
	if err != nil {
		// Treated like an empty directory; the legacy fallback below
		// may still succeed.
		m.logger.Warn("cannot read ROM directory", "dir", m.romDir, "error", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		m.checkROM(path.Join(m.romDir, entry.Name()))
	}

	if !m.HaveSet(SetAny) {
		if !(m.checkROM(m.legacyControl) && m.checkROM(m.legacyPCM)) {
			return ErrNoROMSet
		}
	}

	return nil
}

// checkROM runs one path through the open, identify, classify, store
// pipeline. The opened file is closed on every exit path. Reports
// whether the file ended up stored in a slot.
func (m *Manager) checkROM(name string) bool {
	f, err := m.fsys.Open(name)
	if err != nil {
		m.logger.Warn("cannot open ROM candidate", "path", name, "error", err)
		return false
	}
	defer f.Close()

	desc, err := m.validator.Validate(f, name)
	if err != nil {
		m.logger.Warn("not a usable ROM image", "path", name, "error", err)
		return false
	}

	slot, ok := classifySlot(desc)
	if !ok {
		m.logger.Warn("unrecognized ROM variant", "path", name, "rom", desc.ShortName)
		return false
	}

	if err := m.store(slot, desc); err != nil {
		m.logger.Warn("ROM discarded", "path", name, "slot", slot.String(), "error", err)
		return false
	}

	m.logger.Info("ROM registered", "slot", slot.String(), "rom", desc.ShortName, "path", name)
	return true
}

// store places a descriptor into a slot. A populated slot is never
// overwritten; the second descriptor is rejected with a
// *DuplicateROMError and the caller discards it.
func (m *Manager) store(slot Slot, desc *Descriptor) error {
	if slot < 0 || slot >= SlotCount {
		return fmt.Errorf("invalid slot %d", int(slot))
	}
	if existing := m.slots[slot]; existing != nil {
		return &DuplicateROMError{Path: desc.Path, Existing: existing.Path}
	}
	m.slots[slot] = desc
	return nil
}

// ROM returns the descriptor held by a slot, nil if the slot is empty
// or invalid.
func (m *Manager) ROM(slot Slot) *Descriptor {
	if slot < 0 || slot >= SlotCount {
		return nil
	}
	return m.slots[slot]
}

// Close releases all slots. The Manager may be scanned again afterwards,
// starting from empty.
func (m *Manager) Close() {
	for slot := range m.slots {
		m.slots[slot] = nil
	}
}
