package romset

import (
	"errors"

	"github.com/mt32kit/romset/internal/types"
)

// ErrNoROMSet is returned by Scan when neither the directory scan nor
// the legacy fallback yields a complete ROM set. Emulation cannot start
// without at least one usable control+PCM pairing.
var ErrNoROMSet = errors.New("no complete ROM set found")

// UnknownROMError is an alias to types.UnknownROMError; a file that
// could not be identified as any known ROM image.
type UnknownROMError = types.UnknownROMError

// DuplicateROMError is an alias to types.DuplicateROMError; a ROM whose
// hardware-variant slot is already filled.
type DuplicateROMError = types.DuplicateROMError
