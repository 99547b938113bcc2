package represent

import "errors"

// ErrNotBuilt indicates a representation was requested from a Bundle that
// was built without it.
var ErrNotBuilt = errors.New("represent: representation not built")
