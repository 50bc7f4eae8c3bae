// Package romfile identifies ROM image files by content.
//
// Identification follows the emulator's known-ROM model: an image is
// recognized by the SHA-1 digest of its contents, looked up in a catalog
// of known control and PCM ROMs. There is no magic number to sniff; the
// digest is the signature.
package romfile

import (
	"sort"

	"github.com/mt32kit/romset/internal/types"
)

// Entry describes one known ROM image.
type Entry struct {
	// ShortName is the fixed-layout identity string ("ctrl_mt32_1_07").
	ShortName string
	// FullName is a human-readable description.
	FullName string
	// Type is the image kind.
	Type types.ROMType
	// Size is the exact image size in bytes.
	Size int64
	// SHA1 is the lowercase hex digest of the image.
	SHA1 string
}

// Catalog is a set of known ROM images keyed by digest.
type Catalog struct {
	bySHA1 map[string]Entry
	sizes  map[int64]struct{}
}

// NewCatalog builds a catalog from the given entries.
func NewCatalog(entries ...Entry) *Catalog {
	c := &Catalog{
		bySHA1: make(map[string]Entry, len(entries)),
		sizes:  make(map[int64]struct{}, len(entries)),
	}
	for _, e := range entries {
		c.Add(e)
	}
	return c
}

// Add inserts or replaces an entry. Replacement by digest allows callers
// to override built-in metadata.
func (c *Catalog) Add(e Entry) {
	c.bySHA1[e.SHA1] = e
	c.sizes[e.Size] = struct{}{}
}

// Lookup returns the entry for a digest.
func (c *Catalog) Lookup(sha1hex string) (Entry, bool) {
	e, ok := c.bySHA1[sha1hex]
	return e, ok
}

// PlausibleSize reports whether any known image has exactly this size.
// Useful as a cheap pre-check before hashing.
func (c *Catalog) PlausibleSize(size int64) bool {
	_, ok := c.sizes[size]
	return ok
}

// Entries returns all entries sorted by short name.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.bySHA1))
	for _, e := range c.bySHA1 {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ShortName < out[j].ShortName })
	return out
}

// Builtin returns the catalog of ROM images the emulator core knows about.
//
// Digests and sizes mirror the upstream emulator's known-ROM list. Control
// ROM short names carry the version discriminant at index 10, PCM short
// names at index 4; the classifier depends on that layout.
func Builtin() *Catalog {
	return NewCatalog(
		Entry{"ctrl_mt32_1_04", "MT-32 Control v1.04", types.TypeControl, 65536, "9cd4858014c4e8a9dff96053f784bfaac1092a2e"},
		Entry{"ctrl_mt32_1_05", "MT-32 Control v1.05", types.TypeControl, 65536, "57a09d80d2f7ca5b9734edbe9645e6e700f83701"},
		Entry{"ctrl_mt32_1_06", "MT-32 Control v1.06", types.TypeControl, 65536, "7c51c4e214d302c7324229b747fbb7036cc91106"},
		Entry{"ctrl_mt32_1_07", "MT-32 Control v1.07", types.TypeControl, 65536, "b083518fffb7f66b03c23b7eb4f868e62dc5a987"},
		Entry{"ctrl_mt32_bluer", "MT-32 Control Blue Ridge", types.TypeControl, 65536, "7b8c2a5ddb42fd0732e2f22b3340dcf5360edf92"},
		Entry{"ctrl_mt32_2_04", "MT-32 Control v2.04", types.TypeControl, 131072, "2c16432b6c73dd2a3947cba950a0f4c19d6180eb"},
		Entry{"ctrl_cm32l_1_00", "CM-32L/LAPC-I Control v1.00", types.TypeControl, 65536, "73683d585cd6948cc19547942ca0e14a0319456d"},
		Entry{"ctrl_cm32l_1_02", "CM-32L/LAPC-I Control v1.02", types.TypeControl, 65536, "a439fbb390da38cada95a7cbb1d6ca199cd66ef8"},
		Entry{"pcm_mt32", "MT-32 PCM", types.TypePCM, 524288, "f6b1eebc4b2d200ec6d3d21d51325d5b48c60252"},
		Entry{"pcm_cm32l", "CM-32L/CM-64/LAPC-I PCM", types.TypePCM, 1048576, "289cc298ad532b702461bfc738009d9ebe8025ea"},
	)
}
