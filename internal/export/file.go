package export

import (
	"io"
	"os"
)

// writeFile creates path, hands it to write and closes it on every path.
// The first failure wins; a failed write removes the partial file.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &Error{Op: "close", Path: path, Err: cerr}
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := write(f); err != nil {
		return &Error{Op: "write", Path: path, Err: err}
	}
	return nil
}
