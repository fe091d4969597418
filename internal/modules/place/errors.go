package place

import "errors"

// ErrAlreadyLinked is returned by LinkAmenity when the amenity was already
// attached; the link itself is left as is.
var ErrAlreadyLinked = errors.New("amenity already linked")
