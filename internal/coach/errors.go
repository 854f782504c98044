package coach

import "errors"

// ErrEmptyInput indicates the caller submitted blank text. It is rejected
// before any AI call is made, so it is distinguishable from AI-layer errors.
var ErrEmptyInput = errors.New("input text is empty")
