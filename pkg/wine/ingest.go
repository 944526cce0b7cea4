package wine

import (
	"encoding/base64"
	"strings"

	"wine-club-be/pkg/llm"

	"github.com/gabriel-vasile/mimetype"
)

const fallbackImageMime = "image/jpeg"

// EncodeImage turns one uploaded payload into the inline form the vision providers accept.
// The content itself is not validated; declaredMime is used only when sniffing finds no image type.
func EncodeImage(payload []byte, declaredMime string) (llm.Image, error) {
	if len(payload) == 0 {
		return llm.Image{}, ErrNoImageProvided
	}

	return llm.Image{
		MimeType: imageMime(payload, declaredMime),
		Data:     payload,
		Base64:   base64.StdEncoding.EncodeToString(payload),
	}, nil
}

func imageMime(payload []byte, declared string) string {
	detected := mimetype.Detect(payload)
	if strings.HasPrefix(detected.String(), "image/") {
		return detected.String()
	}
	declared = strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if strings.HasPrefix(declared, "image/") {
		return declared
	}
	return fallbackImageMime
}
