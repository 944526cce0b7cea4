package wine

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestEncodeImage(t *testing.T) {
	tests := []struct {
		name     string
		payload  []byte
		declared string
		wantMime string
	}{
		{name: "sniffed png wins over declared type", payload: pngHeader, declared: "image/jpeg", wantMime: "image/png"},
		{name: "declared image type used when sniffing fails", payload: []byte("opaque bytes"), declared: "image/webp", wantMime: "image/webp"},
		{name: "declared type parameters dropped", payload: []byte("opaque bytes"), declared: "Image/HEIC; q=1", wantMime: "image/heic"},
		{name: "non image declared type ignored", payload: []byte("opaque bytes"), declared: "application/octet-stream", wantMime: "image/jpeg"},
		{name: "nothing declared", payload: []byte("opaque bytes"), wantMime: "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := EncodeImage(tt.payload, tt.declared)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMime, img.MimeType)
			assert.Equal(t, tt.payload, img.Data)
			assert.Equal(t, base64.StdEncoding.EncodeToString(tt.payload), img.Base64)
			assert.Equal(t, "data:"+tt.wantMime+";base64,"+img.Base64, img.DataURI())
		})
	}
}

func TestEncodeImage_Empty(t *testing.T) {
	_, err := EncodeImage(nil, "image/png")
	assert.ErrorIs(t, err, ErrNoImageProvided)

	_, err = EncodeImage([]byte{}, "")
	assert.ErrorIs(t, err, ErrNoImageProvided)
}
