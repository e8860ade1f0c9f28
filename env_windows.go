//go:build windows

package wtf8

import (
	"errors"

	"golang.org/x/sys/windows"
)

// LookupEnv retrieves the value of the environment variable named by key
// without losing unpaired surrogates, which os.LookupEnv replaces with U+FFFD.
func LookupEnv(key string) (*Buf, bool) {
	keyp, err := windows.UTF16PtrFromString(key)
	if err != nil {
		return nil, false
	}
	n := uint32(100)
	for {
		b := make([]uint16, n)
		n, err = windows.GetEnvironmentVariable(keyp, &b[0], uint32(len(b)))
		if n == 0 && errors.Is(err, windows.ERROR_ENVVAR_NOT_FOUND) {
			return nil, false
		}
		if n <= uint32(len(b)) {
			return FromWide(b[:n]), true
		}
		// n is the required size including the terminating NUL
	}
}

// Setenv sets the environment variable named by key to value, surrogates
// included.
func Setenv(key string, value Wtf8) error {
	keyp, err := windows.UTF16PtrFromString(key)
	if err != nil {
		return err
	}
	wide := value.AppendWide(make([]uint16, 0, value.Len()+1))
	for _, cu := range wide {
		if cu == 0 {
			return windows.ERROR_INVALID_PARAMETER
		}
	}
	wide = append(wide, 0)
	return windows.SetEnvironmentVariable(keyp, &wide[0])
}
