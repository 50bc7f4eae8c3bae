package romset

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/mt32kit/romset/internal/romfile"
)

// Default discovery locations. The legacy filenames predate directory
// based discovery and are only tried when the directory scan yields no
// complete set.
const (
	DefaultROMDir            = "roms"
	DefaultLegacyControlName = "MT32_CONTROL.ROM"
	DefaultLegacyPCMName     = "MT32_PCM.ROM"
)

// Option configures a Manager or the Identify helpers.
//
// Options use the functional options pattern:
//
//	m := romset.New(
//	    romset.WithFS(os.DirFS("/media/usb0")),
//	    romset.WithLogger(logger),
//	)
type Option func(*config)

// config holds resolved configuration.
type config struct {
	fsys          fs.FS
	romDir        string
	legacyControl string
	legacyPCM     string
	validator     Validator
	logger        *slog.Logger
	definitions   []ROMDefinition
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		fsys:          os.DirFS("."),
		romDir:        DefaultROMDir,
		legacyControl: DefaultLegacyControlName,
		legacyPCM:     DefaultLegacyPCMName,
		logger:        slog.Default(),
	}
}

// resolveValidator returns the configured validator, building the
// default digest identifier (built-in catalog plus any extra
// definitions) when none was set.
func (c *config) resolveValidator() Validator {
	if c.validator != nil {
		return c.validator
	}
	catalog := romfile.Builtin()
	for _, def := range c.definitions {
		catalog.Add(def)
	}
	return romfile.NewIdentifier(catalog)
}

// WithFS sets the volume to discover ROMs on. The ROM directory and the
// legacy filenames are resolved against its root.
//
// Defaults to os.DirFS("."), the process working directory.
func WithFS(fsys fs.FS) Option {
	return func(c *config) {
		c.fsys = fsys
	}
}

// WithROMDir sets the directory scanned for ROM images, relative to the
// volume root. Defaults to DefaultROMDir.
func WithROMDir(dir string) Option {
	return func(c *config) {
		c.romDir = dir
	}
}

// WithLegacyROMNames sets the two fixed filenames tried at the volume
// root when the directory scan finds no complete set.
func WithLegacyROMNames(control, pcm string) Option {
	return func(c *config) {
		c.legacyControl = control
		c.legacyPCM = pcm
	}
}

// WithLogger sets the logger for per-file warnings during scanning.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithValidator replaces the content identification step entirely.
// WithROMDefinitions has no effect when a validator is set.
func WithValidator(v Validator) Option {
	return func(c *config) {
		c.validator = v
	}
}

// WithROMDefinitions extends the built-in known-ROM catalog. Definitions
// with a digest already in the catalog replace the built-in entry.
//
//	m := romset.New(romset.WithROMDefinitions(romset.ROMDefinition{
//	    ShortName: "ctrl_mt32_1_07",
//	    FullName:  "MT-32 Control v1.07 (patched)",
//	    Type:      romset.TypeControl,
//	    Size:      65536,
//	    SHA1:      "…",
//	}))
func WithROMDefinitions(defs ...ROMDefinition) Option {
	return func(c *config) {
		c.definitions = append(c.definitions, defs...)
	}
}
