// Package errdefer helps with cleanup operations that run at function
// exit but can themselves fail, like closing an output file.
package errdefer

import (
	"errors"
	"io"
)

// Close closes the given Closer, joining its error, if any,
// into *err. Call it in a defer with a named error return.
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}
