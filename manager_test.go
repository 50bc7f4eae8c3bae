package romset

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

// quietLogger discards scan noise in tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ctrlDesc builds a control descriptor with the given identity.
func ctrlDesc(shortName, path string) *Descriptor {
	return &Descriptor{ShortName: shortName, Type: TypeControl, Path: path}
}

// pcmDesc builds a PCM descriptor with the given identity.
func pcmDesc(shortName, path string) *Descriptor {
	return &Descriptor{ShortName: shortName, Type: TypePCM, Path: path}
}

func TestStore_FirstWins(t *testing.T) {
	slots := []Slot{
		SlotMT32OldControl,
		SlotMT32NewControl,
		SlotCM32LControl,
		SlotMT32PCM,
		SlotCM32LPCM,
	}

	for _, slot := range slots {
		t.Run(slot.String(), func(t *testing.T) {
			m := New(WithLogger(quietLogger()))

			first := &Descriptor{ShortName: "first", Path: "roms/first.rom"}
			if err := m.store(slot, first); err != nil {
				t.Fatalf("first store failed: %v", err)
			}

			second := &Descriptor{ShortName: "second", Path: "roms/second.rom"}
			err := m.store(slot, second)

			var dupErr *DuplicateROMError
			if !errors.As(err, &dupErr) {
				t.Fatalf("second store: expected *DuplicateROMError, got %v", err)
			}
			if dupErr.Existing != "roms/first.rom" {
				t.Errorf("Existing = %q, want %q", dupErr.Existing, "roms/first.rom")
			}

			if m.ROM(slot) != first {
				t.Error("original descriptor was not left intact")
			}
		})
	}
}

func TestStore_InvalidSlot(t *testing.T) {
	m := New(WithLogger(quietLogger()))

	if err := m.store(SlotCount, &Descriptor{}); err == nil {
		t.Error("store(SlotCount) should fail")
	}
	if err := m.store(Slot(-1), &Descriptor{}); err == nil {
		t.Error("store(-1) should fail")
	}
}

func TestROM_InvalidSlot(t *testing.T) {
	m := New(WithLogger(quietLogger()))
	if m.ROM(SlotCount) != nil {
		t.Error("ROM(SlotCount) should be nil")
	}
	if m.ROM(Slot(-1)) != nil {
		t.Error("ROM(-1) should be nil")
	}
}

func TestClose_ReleasesAllSlots(t *testing.T) {
	m := New(WithLogger(quietLogger()))

	if err := m.store(SlotMT32OldControl, ctrlDesc("ctrl_mt32_1_07", "a")); err != nil {
		t.Fatal(err)
	}
	if err := m.store(SlotMT32PCM, pcmDesc("pcm_mt32", "b")); err != nil {
		t.Fatal(err)
	}

	m.Close()

	for slot := Slot(0); slot < SlotCount; slot++ {
		if m.ROM(slot) != nil {
			t.Errorf("slot %v still populated after Close", slot)
		}
	}
	if m.HaveSet(SetAny) {
		t.Error("HaveSet(SetAny) = true after Close")
	}

	// Slots are reusable after teardown.
	if err := m.store(SlotMT32OldControl, ctrlDesc("ctrl_mt32_1_07", "c")); err != nil {
		t.Errorf("store after Close failed: %v", err)
	}
}
