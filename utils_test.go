package discord

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestImageData(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)

	data, err := ImageData(png)
	if err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	if !strings.HasPrefix(data, "data:image/png;base64,") {
		t.Fatalf("unexpected data uri prefix: %s", data)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(data, "data:image/png;base64,"))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}

	if string(decoded) != string(png) {
		t.Fatal("decoded payload does not match input")
	}
}

func TestImageDataGIF(t *testing.T) {
	gif := append([]byte("GIF89a"), make([]byte, 16)...)

	data, err := ImageData(gif)
	if err != nil {
		t.Fatalf("failed to encode gif: %v", err)
	}

	if !strings.HasPrefix(data, "data:image/gif;base64,") {
		t.Fatalf("unexpected data uri prefix: %s", data)
	}
}

func TestImageDataRejectsUnknownTypes(t *testing.T) {
	if _, err := ImageData([]byte("definitely not an image")); !errors.Is(err, ErrUnsupportedImageType) {
		t.Fatalf("expected ErrUnsupportedImageType, got %v", err)
	}
}
