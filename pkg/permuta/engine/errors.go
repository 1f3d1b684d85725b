package engine

import "errors"

// ErrMissingAxisTable indicates the input contains no table named "ID".
// It is the only fatal classification failure; callers branch on it with
// errors.Is. Everything else degrades to partial or empty output.
var ErrMissingAxisTable = errors.New(`missing required "ID" table`)
