package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client is an HTTP client for a text-recognition sidecar service (a small
// HTTP wrapper around tesseract or an equivalent engine).
type Client struct {
	baseURL     string
	httpClient  *http.Client
	RetryConfig RetryConfig
}

// NewClient creates a recognition service client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // OCR on large images is slow
		},
		RetryConfig: DefaultRetryConfig,
	}
}

// recognizeResponse is the sidecar's response body.
type recognizeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// healthResponse is the sidecar's health check body.
type healthResponse struct {
	Status string `json:"status"`
	Engine string `json:"engine"`
}

// Recognize sends an image to the recognition service and returns the raw
// text. Transient failures are retried with exponential backoff.
func (c *Client) Recognize(ctx context.Context, image []byte, contentType string) (string, error) {
	return withRetry(ctx, c.RetryConfig, func(ctx context.Context) (string, error) {
		return c.recognize(ctx, image, contentType)
	})
}

func (c *Client) recognize(ctx context.Context, image []byte, contentType string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "receipt")
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return "", fmt.Errorf("write file data: %w", err)
	}
	if err := writer.WriteField("content_type", contentType); err != nil {
		return "", fmt.Errorf("write content_type: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recognize", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", classifyHTTPError(resp.StatusCode, string(body))
	}

	var result recognizeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if result.Error != "" {
		return "", &Error{
			Code:    ErrInvalidImage,
			Message: result.Error,
		}
	}
	return result.Text, nil
}

// Health checks whether the recognition service is reachable and ready.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("health check failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// classifyTransportError converts network errors to structured Errors.
func classifyTransportError(err error) *Error {
	return &Error{
		Code:      ErrServiceUnavailable,
		Message:   "recognition service request failed",
		Retryable: true,
		Cause:     err,
	}
}

// classifyHTTPError converts HTTP errors to structured Errors.
func classifyHTTPError(statusCode int, body string) *Error {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return &Error{
			Code:      ErrRateLimited,
			Message:   "recognition service rate limited",
			Retryable: true,
		}
	case statusCode >= 500:
		return &Error{
			Code:      ErrServiceUnavailable,
			Message:   fmt.Sprintf("recognition service error (HTTP %d): %s", statusCode, body),
			Retryable: true,
		}
	default:
		return &Error{
			Code:      ErrInvalidImage,
			Message:   fmt.Sprintf("recognition rejected the image (HTTP %d): %s", statusCode, body),
			Retryable: false,
		}
	}
}
