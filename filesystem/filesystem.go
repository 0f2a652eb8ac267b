// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Writable state (config, cache, logs) goes through API, which can be swapped
// for an in-memory backend in tests. Bundled assets go through Assets.
package filesystem

import (
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing and CI environments.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Assets wraps a bundled fs.FS (usually an embed.FS) as a read-only afero filesystem rooted at dir.
func Assets(bundle fs.FS, dir string) afero.Fs {
	ro := afero.NewReadOnlyFs(afero.FromIOFS{FS: bundle})
	if dir == "" || dir == "." {
		return ro
	}
	return afero.NewBasePathFs(ro, dir)
}

// HTTP exposes an afero filesystem as an http.FileSystem.
func HTTP(fsys afero.Fs) http.FileSystem {
	return afero.NewHttpFs(fsys)
}

// GacheFs lets gache caches (recent identifiers, release checks) live on the active backend.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
