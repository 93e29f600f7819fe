package extraction

import "errors"

// ErrEmptyText is returned when the input text is empty or whitespace-only.
// Callers should surface this distinctly rather than persisting a blank
// receipt, since it usually means the OCR step produced nothing.
var ErrEmptyText = errors.New("extraction: empty input text")
