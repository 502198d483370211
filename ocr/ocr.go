//go:build ocr

// Package ocr recognizes text in extracted chart images so their
// content can populate chart descriptions in the document model.
//
// This package wraps the Tesseract OCR engine via gosseract. It
// requires Tesseract to be installed on the system. On macOS, install
// via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Available reports whether OCR support was compiled in.
func Available() bool { return true }

// Client wraps Tesseract for OCR operations and implements the
// pipeline's OCR provider contract.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. The client should be closed when no
// longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Recognize performs OCR on the image at imagePath and returns the
// recognized text with surrounding whitespace trimmed. It checks ctx
// before starting; Tesseract itself is not interruptible mid-call.
func (c *Client) Recognize(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to set image %s: %w", imagePath, err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed for %s: %w", imagePath, err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition. Multiple
// languages can be specified as a "+" separated string (e.g.
// "eng+fra"). Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}
