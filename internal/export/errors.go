package export

import (
	"fmt"

	"github.com/san-kum/lorenzq/internal/dynamo"
)

// Error reports a failed export step. It matches dynamo.ErrExport.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{dynamo.ErrExport, e.Err}
}
