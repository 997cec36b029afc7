package flagvalue

import (
	"flag"
	"io"
	"os"
)

// FileSwitch is a flag accepted as both "-x" and "-x=file".
// Without a value it selects a fallback writer;
// with a value it opens the named file.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the recorded file name, or '-' if none was given.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the recorded file name, or '-' if none was given.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks the flag as valid without a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set records the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	if v == "true" {
		v = "-"
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether the flag was given at all.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination this flag selects:
// io.Discard if the flag was absent, fallback if it was given bare,
// or the named file.
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nopClose, nil
	case "-":
		return fallback, nopClose, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
}

func nopClose() error { return nil }
