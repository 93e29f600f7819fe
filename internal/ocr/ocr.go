// Package ocr is the boundary to the external text-recognition engine. The
// engine is a black box that turns a receipt image into a text string; this
// package provides the Recognizer interface and an HTTP client for a
// recognition sidecar service.
package ocr

import "context"

// Recognizer produces raw text from a receipt image.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, contentType string) (string, error)
}
