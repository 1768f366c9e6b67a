package internal

// Validation walks every vertex and edge of both polygons. Rather than
// threading errors through all of it, we panic with a clipError, and the
// strict API recovers it into an ordinary error.

type clipError struct {
	err error
}

// Panic with an error, usually a wrapped sentinel.
func throw(err error) {
	panic(clipError{err})
}

// Convert a recovered clipError back into an error. Any other panic is
// re-raised.
func HandleClipPanicRecover(r interface{}) error {
	if r != nil {
		if clipErr, ok := r.(clipError); ok {
			return clipErr.err
		}
		panic(r)
	}
	return nil
}
