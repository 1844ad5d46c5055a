package discord

import (
	"encoding/base64"
	"net/http"
)

// utils.go contains helpers shared by entity operations.

// ImageData converts raw image bytes into the base64 data URI Discord expects
// for icon, avatar and cover image upload fields.
func ImageData(data []byte) (string, error) {
	mime := http.DetectContentType(data)

	switch mime {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		return "", ErrUnsupportedImageType
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
