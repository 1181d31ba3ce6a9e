package fetch

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

// testImage returns a noisy w x h image so JPEG quality has a visible effect on size
func testImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8((x*31 + y*17) % 256),
				G: uint8((x*x + y*7) % 256),
				B: uint8((x*13 ^ y*29) % 256),
				A: 255,
			})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("Failed to encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func encodeGIF(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("Failed to encode gif: %v", err)
	}
	return buf.Bytes()
}

// newImageServer serves:
//
//	/image.png  64x48 png
//	/image.jpg  32x16 jpeg
//	/text       plain text
//	/missing    404 with an html body
//	/missing.png 404 with a png body
func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()
	pngData := encodePNG(t, testImage(64, 48))
	jpgData := encodeJPEG(t, testImage(32, 16))

	mux := http.NewServeMux()
	mux.HandleFunc("/image.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngData)
	})
	mux.HandleFunc("/image.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(jpgData)
	})
	mux.HandleFunc("/text", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("definitely not an image"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<html><body>not found</body></html>", http.StatusNotFound)
	})
	mux.HandleFunc("/missing.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusNotFound)
		w.Write(pngData)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// stubSource returns fixed bytes or a fixed error
type stubSource struct {
	data []byte
	err  error
}

func (s *stubSource) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	return s.data, s.err
}
