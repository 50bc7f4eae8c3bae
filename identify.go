package romset

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Validator turns a byte stream into a ROM descriptor, or reports that
// the stream is not a known ROM image. path is for error reporting and
// the descriptor's Path field.
//
// The default validator identifies images by content digest against the
// built-in catalog; replace it with WithValidator.
type Validator interface {
	Validate(r io.Reader, path string) (*Descriptor, error)
}

// Identify identifies a single ROM file on the OS filesystem.
//
//	desc, err := romset.Identify("roms/MT32_CONTROL.ROM")
//	if err != nil {
//		return err
//	}
//	fmt.Println(desc)
func Identify(path string, opts ...Option) (*Descriptor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return cfg.resolveValidator().Validate(f, path)
}

// IdentifyMany identifies multiple ROM files concurrently, using up to
// runtime.NumCPU() goroutines. Results are returned in the same order as
// the input paths.
//
// If any file fails to identify, IdentifyMany returns that error and no
// results.
func IdentifyMany(ctx context.Context, paths []string, opts ...Option) ([]*Descriptor, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Descriptor, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			desc, err := Identify(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = desc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
