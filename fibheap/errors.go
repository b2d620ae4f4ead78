package fibheap

import "errors"

// ErrIncreasedKey is returned by DecreaseKey when the requested key is
// greater than the handle's current key. Decrease-key with a larger
// key is a caller bug, not a structural failure; it is reported
// rather than silently ignored or panicking.
var ErrIncreasedKey = errors.New("fibheap: decrease-key requires a key not greater than the current key")
