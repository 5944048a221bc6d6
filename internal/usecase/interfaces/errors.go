package interfaces

import "errors"

// ErrVersionMismatch is returned by conditional updates when the stored
// version differs from the expected one.
var ErrVersionMismatch = errors.New("version mismatch")
