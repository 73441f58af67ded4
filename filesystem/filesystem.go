// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Library files, scripts, logs and the shell history are all read and written through it,
// so tests can swap in an in-memory backend.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs installs a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// ReadFile reads a whole file from the active backend.
func ReadFile(path string) ([]byte, error) {
	return backend.ReadFile(path)
}
