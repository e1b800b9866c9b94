package util

import (
	"github.com/pkg/errors"
	"io"
	"os"
)

// StdStream is the file name which stands for stdin / stdout
const StdStream = "-"

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// OpenInput opens the named file for reading. An empty name or "-" returns stdin, which will
// not be closed by Close.
func OpenInput(name string) (io.ReadCloser, error) {
	if name == "" || name == StdStream {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

// OpenOutput creates (or truncates) the named file. An empty name or "-" returns stdout, which
// will not be closed by Close.
func OpenOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == StdStream {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

// ReadInput reads the named file (or stdin) completely.
func ReadInput(name string) ([]byte, error) {
	r, err := OpenInput(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read %v", name)
	}
	return data, nil
}
