package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// IconStore persists a finished icon under the given file name.
type IconStore interface {
	Save(name string, img image.Image) error
}

// DirStore writes PNG files into an existing directory. It does not create Dir.
type DirStore struct {
	Dir string
}

func (s DirStore) Save(name string, img image.Image) (err error) {
	p := filepath.Join(s.Dir, name)
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("create %s: %w", p, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", p, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", p, err)
	}
	return nil
}
