package wave

import "github.com/pkg/errors"

// ErrOOM is returned by Set when a new triple cannot be allocated. The
// wave is left exactly as it was before the call.
var ErrOOM = errors.New("wave: out of memory")
