package fetch

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestPipeline(t *testing.T, dir string) *Pipeline {
	t.Helper()
	return NewPipeline(NewHTTPSource(nil), NewFileStore(dir, DefaultFileName, DefaultJPEGQuality))
}

func TestFetchAndStore_ValidImage(t *testing.T) {
	server := newImageServer(t)
	dir := t.TempDir()
	pipeline := newTestPipeline(t, dir)

	result, err := pipeline.FetchAndStore(context.Background(), server.URL+"/image.png")
	if err != nil {
		t.Fatalf("FetchAndStore() error = %v", err)
	}

	if result == nil || result.Image == nil {
		t.Fatal("Expected decoded image, got nil")
	}
	if result.Format != "png" {
		t.Errorf("Expected format png, got %s", result.Format)
	}
	if result.Width != 64 || result.Height != 48 {
		t.Errorf("Expected 64x48, got %dx%d", result.Width, result.Height)
	}

	expectedPath := filepath.Join(dir, DefaultFileName)
	if result.Path != expectedPath || !result.Saved() {
		t.Errorf("Expected saved path %s, got %q", expectedPath, result.Path)
	}

	info, err := os.Stat(expectedPath)
	if err != nil {
		t.Fatalf("Output file missing: %v", err)
	}
	if info.Size() == 0 || info.Size() != result.Size {
		t.Errorf("Expected non-zero size matching result (%d), got %d", result.Size, info.Size())
	}
}

func TestFetchAndStore_UnreachableURL(t *testing.T) {
	server := httptest.NewServer(nil)
	unreachable := server.URL + "/image.jpg"
	server.Close()

	dir := t.TempDir()
	pipeline := newTestPipeline(t, dir)

	result, err := pipeline.FetchAndStore(context.Background(), unreachable)
	if result != nil {
		t.Errorf("Expected nil result, got %+v", result)
	}
	if !errors.Is(err, ErrDownload) {
		t.Errorf("Expected ErrDownload, got %v", err)
	}
	assertNoOutput(t, dir)
}

func TestFetchAndStore_MalformedURL(t *testing.T) {
	dir := t.TempDir()
	pipeline := newTestPipeline(t, dir)

	for _, raw := range []string{"", "not a url", "://missing-scheme", "ftp://example.com/a.jpg"} {
		result, err := pipeline.FetchAndStore(context.Background(), raw)
		if result != nil {
			t.Errorf("FetchAndStore(%q): expected nil result", raw)
		}
		if KindOf(err) != KindDownload {
			t.Errorf("FetchAndStore(%q): expected download error, got %v", raw, err)
		}
	}
	assertNoOutput(t, dir)
}

func TestFetchAndStore_InvalidImageExample(t *testing.T) {
	dir := t.TempDir()
	source := &stubSource{err: errors.New("404 page is not an image")}
	pipeline := NewPipeline(source, NewFileStore(dir, DefaultFileName, DefaultJPEGQuality))

	result, err := pipeline.FetchAndStore(context.Background(), "https://example.com/invalid.jpg")
	if result != nil {
		t.Error("Expected nil result")
	}
	if KindOf(err).String() != "download error" {
		t.Errorf("Expected 'download error', got %q", KindOf(err).String())
	}
	assertNoOutput(t, dir)
}

func TestFetchAndStore_NonImageKeepsPreviousFile(t *testing.T) {
	server := newImageServer(t)
	dir := t.TempDir()
	previous := []byte("previous download")
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), previous, 0o644); err != nil {
		t.Fatalf("Failed to seed previous file: %v", err)
	}

	pipeline := newTestPipeline(t, dir)

	for _, path := range []string{"/text", "/missing"} {
		result, err := pipeline.FetchAndStore(context.Background(), server.URL+path)
		if result != nil {
			t.Errorf("%s: expected nil result", path)
		}
		if !errors.Is(err, ErrDownload) {
			t.Errorf("%s: expected ErrDownload, got %v", path, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, DefaultFileName))
	if err != nil {
		t.Fatalf("Previous file missing: %v", err)
	}
	if !bytes.Equal(data, previous) {
		t.Error("Previous file was modified by a failed download")
	}
}

func TestFetchAndStore_StatusIsNotChecked(t *testing.T) {
	server := newImageServer(t)
	pipeline := newTestPipeline(t, t.TempDir())

	result, err := pipeline.FetchAndStore(context.Background(), server.URL+"/missing.png")
	if err != nil {
		t.Fatalf("Expected image body behind 404 to decode, got %v", err)
	}
	if result.Image == nil {
		t.Error("Expected decoded image")
	}
}

func TestFetchAndStore_OverwritesSamePath(t *testing.T) {
	server := newImageServer(t)
	dir := t.TempDir()
	pipeline := newTestPipeline(t, dir)

	first, err := pipeline.FetchAndStore(context.Background(), server.URL+"/image.png")
	if err != nil {
		t.Fatalf("First FetchAndStore() error = %v", err)
	}
	second, err := pipeline.FetchAndStore(context.Background(), server.URL+"/image.jpg")
	if err != nil {
		t.Fatalf("Second FetchAndStore() error = %v", err)
	}

	if first.Path != second.Path {
		t.Errorf("Expected same output path, got %s and %s", first.Path, second.Path)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected exactly one file, got %d", len(entries))
	}

	saved, format, err := Decode(mustReadFile(t, second.Path))
	if err != nil {
		t.Fatalf("Saved file does not decode: %v", err)
	}
	if format != "jpeg" || saved.Bounds().Dx() != 32 || saved.Bounds().Dy() != 16 {
		t.Errorf("Expected latest 32x16 jpeg, got %s %dx%d", format, saved.Bounds().Dx(), saved.Bounds().Dy())
	}
}

func TestFetchAndStore_SaveFailureStillReturnsImage(t *testing.T) {
	server := newImageServer(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	pipeline := newTestPipeline(t, filepath.Join(blocker, "Pictures"))

	result, err := pipeline.FetchAndStore(context.Background(), server.URL+"/image.png")
	if !errors.Is(err, ErrSave) {
		t.Fatalf("Expected ErrSave, got %v", err)
	}
	if errors.Is(err, ErrDownload) {
		t.Error("Save error must not match ErrDownload")
	}
	if result == nil || result.Image == nil {
		t.Fatal("Expected decoded image despite save failure")
	}
	if result.Saved() {
		t.Errorf("Expected unsaved result, got path %s", result.Path)
	}

	var fe *Error
	if !errors.As(err, &fe) || fe.Path != filepath.Join(blocker, "Pictures", DefaultFileName) {
		t.Errorf("Expected save error to carry output path, got %v", err)
	}
}

func TestRun_StepOrder(t *testing.T) {
	server := newImageServer(t)
	pipeline := newTestPipeline(t, t.TempDir())

	var steps []Step
	record := func(s Step) { steps = append(steps, s) }

	if _, err := pipeline.Run(context.Background(), server.URL+"/image.jpg", record); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := []Step{StepFetch, StepDecode, StepSave}; !reflect.DeepEqual(steps, want) {
		t.Errorf("Expected steps %v, got %v", want, steps)
	}

	steps = nil
	if _, err := pipeline.Run(context.Background(), server.URL+"/text", record); err == nil {
		t.Fatal("Expected decode error")
	}
	if want := []Step{StepFetch, StepDecode}; !reflect.DeepEqual(steps, want) {
		t.Errorf("Expected steps %v, got %v", want, steps)
	}
}

func TestPipeline_SetStore(t *testing.T) {
	server := newImageServer(t)
	pipeline := newTestPipeline(t, t.TempDir())

	otherDir := t.TempDir()
	pipeline.SetStore(NewFileStore(otherDir, "other.jpg", 80))

	result, err := pipeline.FetchAndStore(context.Background(), server.URL+"/image.png")
	if err != nil {
		t.Fatalf("FetchAndStore() error = %v", err)
	}
	if result.Path != filepath.Join(otherDir, "other.jpg") {
		t.Errorf("Expected output in replaced store, got %s", result.Path)
	}
}

func assertNoOutput(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no files in %s, got %d", dir, len(entries))
	}
}

func mustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return data
}
