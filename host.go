package typedpath

import (
	"fmt"

	"github.com/chipsenkbeil/typed-path/internal/fspath"
)

// CurrentDirFunc provides the directory which relative paths are resolved against.
type CurrentDirFunc func() ([]byte, error)

// HostCurrentDir is the CurrentDirFunc backed by the process' working directory. Its result is
// only meaningful under the Native encoding.
func HostCurrentDir() ([]byte, error) {
	wd, err := fspath.Getwd()
	if err != nil {
		return nil, err
	}
	return []byte(wd), nil
}

func callCurrentDir(fn CurrentDirFunc) ([]byte, error) {
	cwd, err := fn()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCurrentDirUnavailable, err)
	}
	return cwd, nil
}

// CurrentDir returns the process' working directory as a native path.
func CurrentDir() (NativePathBuf, error) {
	cwd, err := callCurrentDir(HostCurrentDir)
	if err != nil {
		return NativePathBuf{}, err
	}
	return NativePathBuf{inner: cwd}, nil
}

// Utf8CurrentDir returns the process' working directory as a native UTF-8 path.
func Utf8CurrentDir() (Utf8NativePathBuf, error) {
	cwd, err := callCurrentDir(HostCurrentDir)
	if err != nil {
		return Utf8NativePathBuf{}, err
	}
	if _, err := Utf8PathFromBytes[Native](cwd); err != nil {
		return Utf8NativePathBuf{}, err
	}
	return Utf8NativePathBuf{inner: cwd}, nil
}

// FromHost wraps a path handed out by the host. The conversion is lossless since the host's
// syntax is the native one.
func FromHost(p fspath.Local) Utf8NativePathBuf {
	return NewUtf8PathBuf[Native](p)
}

// ToHost returns a path in the form the host's filesystem functions expect.
func ToHost(p Utf8NativePath) fspath.Local {
	return fspath.Local(p)
}
