package romfile

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/mt32kit/romset/internal/types"
)

// MaxROMSize caps how much of a candidate file is hashed. The largest
// known image is the 1 MiB CM-32L PCM bank; anything past this bound is
// not a ROM image for this hardware.
const MaxROMSize = 2 << 20

// Identifier is the default content validator. It hashes a stream and
// resolves the digest against a catalog.
type Identifier struct {
	catalog *Catalog
}

// NewIdentifier returns an Identifier backed by the given catalog.
// A nil catalog means Builtin().
func NewIdentifier(catalog *Catalog) *Identifier {
	if catalog == nil {
		catalog = Builtin()
	}
	return &Identifier{catalog: catalog}
}

// Catalog returns the catalog backing this identifier.
func (i *Identifier) Catalog() *Catalog {
	return i.catalog
}

// Validate reads the stream to the end and identifies it as a known ROM
// image. path is used only for error reporting and the descriptor's Path
// field.
//
// Streams longer than MaxROMSize, of a size no known image has, or with
// an unrecognized digest produce an *types.UnknownROMError.
func (i *Identifier) Validate(r io.Reader, path string) (*types.Descriptor, error) {
	h := sha1.New()
	n, err := io.Copy(h, io.LimitReader(r, MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if n > MaxROMSize {
		return nil, &types.UnknownROMError{
			Path:   path,
			Reason: fmt.Sprintf("larger than %d bytes", int64(MaxROMSize)),
		}
	}
	if !i.catalog.PlausibleSize(n) {
		return nil, &types.UnknownROMError{
			Path:   path,
			Reason: "no known image has this size",
			Size:   n,
		}
	}

	digest := hex.EncodeToString(h.Sum(nil))
	entry, ok := i.catalog.Lookup(digest)
	if !ok {
		return nil, &types.UnknownROMError{
			Path:   path,
			Reason: "digest not in catalog",
			Size:   n,
			SHA1:   digest,
		}
	}

	return &types.Descriptor{
		ShortName: entry.ShortName,
		FullName:  entry.FullName,
		Type:      entry.Type,
		Size:      n,
		SHA1:      digest,
		Path:      path,
	}, nil
}
