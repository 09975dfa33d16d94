package dataset

import "errors"

// ErrBadHeader is returned when a dataset file is empty or its header
// row does not match the expected column layout.
var ErrBadHeader = errors.New("unexpected csv header")
