// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"

	// Decoders for the formats a loader accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrResourceNotFound is matched by every *ResourceNotFoundError.
var ErrResourceNotFound = errors.New("raster: resource not found")

// ResourceNotFoundError reports a raster resource that could not be
// loaded, either because it does not exist or because it did not decode.
type ResourceNotFoundError struct {
	Path string
	Err  error
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("raster: cannot load %q: %v", e.Path, e.Err)
}

func (e *ResourceNotFoundError) Unwrap() error { return e.Err }

// Is reports whether target is ErrResourceNotFound.
func (e *ResourceNotFoundError) Is(target error) bool {
	return target == ErrResourceNotFound
}

// Loader resolves a resource path to a raster.
type Loader interface {
	Load(path string) (*Raster, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (*Raster, error)

// Load calls fn(path).
func (fn LoaderFunc) Load(path string) (*Raster, error) { return fn(path) }

// FileLoader loads rasters from the file system. Relative paths are
// resolved against Root when it is set.
type FileLoader struct {
	Root string
}

// Load implements Loader.
func (l FileLoader) Load(path string) (*Raster, error) {
	full := path
	if l.Root != "" && !filepath.IsAbs(path) {
		full = filepath.Join(l.Root, path)
	}
	img, err := imgio.Open(full)
	if err != nil {
		return nil, &ResourceNotFoundError{Path: path, Err: err}
	}
	return newWithPath(img, path), nil
}

// FSLoader loads rasters from an fs.FS, such as an embed.FS.
type FSLoader struct {
	FS fs.FS
}

// Load implements Loader.
func (l FSLoader) Load(path string) (*Raster, error) {
	f, err := l.FS.Open(path)
	if err != nil {
		return nil, &ResourceNotFoundError{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &ResourceNotFoundError{Path: path, Err: err}
	}
	return newWithPath(img, path), nil
}
