package fetch

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDecode_Formats(t *testing.T) {
	src := testImage(20, 10)

	var bmpBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatalf("Failed to encode bmp: %v", err)
	}

	tests := []struct {
		name   string
		data   []byte
		format string
	}{
		{"png", encodePNG(t, src), "png"},
		{"jpeg", encodeJPEG(t, src), "jpeg"},
		{"gif", encodeGIF(t, src), "gif"},
		{"bmp", bmpBuf.Bytes(), "bmp"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			img, format, err := Decode(test.data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if format != test.format {
				t.Errorf("Expected format %s, got %s", test.format, format)
			}
			if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
				t.Errorf("Expected 20x10, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
			}
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	_, _, err := Decode(nil)
	if !errors.Is(err, errEmptyBody) {
		t.Errorf("Expected errEmptyBody, got %v", err)
	}
}

func TestDecode_NotAnImage(t *testing.T) {
	_, _, err := Decode([]byte("<html>hello</html>"))
	if err == nil {
		t.Fatal("Expected error for non-image data, got nil")
	}
}

func TestDecode_Truncated(t *testing.T) {
	data := encodePNG(t, testImage(64, 64))
	_, _, err := Decode(data[:len(data)/2])
	if err == nil {
		t.Fatal("Expected error for truncated png, got nil")
	}
}
