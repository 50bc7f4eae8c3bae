// Package romset discovers and classifies ROM images for MT-32 family
// sound-module emulation.
//
// A Manager scans a storage volume for candidate ROM files, identifies
// each by content, classifies it into one of five fixed hardware-variant
// slots, and answers queries for complete control+PCM ROM sets.
//
// # Quick Start
//
//	m := romset.New()
//	if err := m.Scan(); err != nil {
//		log.Fatal(err)
//	}
//	defer m.Close()
//
//	control, pcm, _ := m.GetSet(romset.SetAny)
//	fmt.Printf("%s + %s\n", control, pcm)
//
// # Discovery
//
// Scan enumerates the "roms" directory on the volume, feeding every
// regular, non-hidden entry through an open, identify, classify, store
// pipeline. Files that fail to open, are not recognized ROM images, or
// would fill an already-occupied slot are logged and skipped; the scan
// never aborts on a single bad file. If no complete set results, Scan
// falls back to the legacy flat layout of exactly two files at the volume
// root, MT32_CONTROL.ROM and MT32_PCM.ROM.
//
// # Identification
//
// ROM images carry no magic bytes; they are recognized by the SHA-1
// digest of their contents against a catalog of known images. The
// catalog can be extended with WithROMDefinitions, or the whole
// identification step replaced with WithValidator.
//
// # Sets
//
// A Set names a control+PCM pairing for one hardware variant. HaveSet
// reports completeness; GetSet returns the pair. For SetAny the control
// image is chosen by precedence (old MT-32, then new MT-32, then CM-32L)
// and the PCM image keeps the pairing coherent: the CM-32L PCM bank is
// selected only when the CM-32L control was chosen and the bank exists.
//
// # Concurrency
//
// Manager is not safe for concurrent use; Scan runs once, synchronously,
// typically at startup. IdentifyMany is the concurrent entry point for
// batch identification of individual files.
package romset
