// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package resource loads and caches the textures a breakout game draws with,
// and watches level files for hot reload.
package resource

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"  // registers BMP with image.Decode
	_ "golang.org/x/image/webp" // registers WebP with image.Decode

	"github.com/gogpu/breakout"
)

// ErrUnsupportedFormat is returned for files that are not a known image type.
var ErrUnsupportedFormat = errors.New("resource: unsupported image format")

// imageExts lists the extensions LoadDir picks up. gg decodes PNG and JPEG
// itself and hands the rest to image.Decode, where WebP and BMP are registered.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
}

// Texture is a decoded sprite image.
type Texture struct {
	name string
	img  *gg.ImageBuf
}

// Name returns the name the texture was registered under.
func (t *Texture) Name() string { return t.name }

// Size returns the image dimensions in pixels.
func (t *Texture) Size() (width, height int) { return t.img.Bounds() }

// Image returns the pixels for drawing.
func (t *Texture) Image() *gg.ImageBuf { return t.img }

// Manager is a named texture registry. It implements breakout.Resources.
// Manager is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	textures map[string]*Texture
	warned   map[string]bool
}

var _ breakout.Resources = (*Manager)(nil)

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{
		textures: make(map[string]*Texture),
		warned:   make(map[string]bool),
	}
}

// LoadTexture decodes the image at path and registers it as name,
// replacing any texture of the same name.
func (m *Manager) LoadTexture(name, path string) (*Texture, error) {
	if !imageExts[strings.ToLower(filepath.Ext(path))] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	buf, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("resource: load %s: %w", name, err)
	}

	t := &Texture{name: name, img: buf}
	m.mu.Lock()
	m.textures[name] = t
	delete(m.warned, name)
	m.mu.Unlock()

	breakout.Logger().Debug("texture loaded", "name", name, "path", path)
	return t, nil
}

// AddTexture registers an already decoded image as name.
func (m *Manager) AddTexture(name string, img image.Image) *Texture {
	t := &Texture{name: name, img: gg.ImageBufFromImage(img)}
	m.mu.Lock()
	m.textures[name] = t
	delete(m.warned, name)
	m.mu.Unlock()
	return t
}

// LoadDir registers every image file in dir under its base name without
// extension, so "paddle.png" becomes "paddle". Subdirectories and other files
// are skipped. It returns the number of textures loaded; failures are joined
// into the error and do not stop the scan.
func (m *Manager) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("resource: read dir: %w", err)
	}

	var errs []error
	n := 0
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() {
			continue
		}
		if !imageExts[strings.ToLower(ext)] {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if _, err := m.LoadTexture(name, filepath.Join(dir, e.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

// Texture returns the texture registered as name. A missing texture returns
// nil, which renderers draw as a flat quad; the first miss per name is logged.
func (m *Manager) Texture(name string) breakout.Texture {
	m.mu.RLock()
	t, ok := m.textures[name]
	m.mu.RUnlock()
	if ok {
		return t
	}

	m.mu.Lock()
	first := !m.warned[name]
	m.warned[name] = true
	m.mu.Unlock()
	if first {
		breakout.Logger().Warn("texture not found, drawing flat quad", "name", name)
	}
	return nil
}

// Has reports whether a texture is registered as name.
func (m *Manager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.textures[name]
	return ok
}

// Names returns the registered texture names in no particular order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.textures))
	for name := range m.textures {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered textures.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.textures)
}
