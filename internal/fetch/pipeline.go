package fetch

import (
	"context"
	"image"
	"log"
	"sync"
)

// Step identifies the pipeline stage that is about to run
type Step int

const (
	StepFetch Step = iota
	StepDecode
	StepSave
)

// String returns the step name
func (s Step) String() string {
	switch s {
	case StepFetch:
		return "fetch"
	case StepDecode:
		return "decode"
	case StepSave:
		return "save"
	default:
		return "unknown"
	}
}

// StepFunc is called before each pipeline step
type StepFunc func(Step)

// Source returns the raw bytes behind a URL
type Source interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Result is the outcome of a run that produced a decoded image
type Result struct {
	URL    string
	Image  image.Image
	Format string
	Width  int
	Height int
	Path   string // saved file, empty when the save step failed
	Size   int64  // saved file size in bytes
}

// Saved reports whether the image was persisted
func (r *Result) Saved() bool {
	return r != nil && r.Path != ""
}

// Pipeline runs fetch, decode and save strictly in sequence
type Pipeline struct {
	mu     sync.RWMutex
	source Source
	store  Store
}

// NewPipeline creates a pipeline reading from source and writing to store
func NewPipeline(source Source, store Store) *Pipeline {
	return &Pipeline{source: source, store: store}
}

// SetStore replaces the store used by subsequent runs
func (p *Pipeline) SetStore(store Store) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.store = store
}

// Store returns the current store
func (p *Pipeline) Store() Store {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.store
}

// FetchAndStore runs the pipeline without step notifications
func (p *Pipeline) FetchAndStore(ctx context.Context, rawURL string) (*Result, error) {
	return p.Run(ctx, rawURL, nil)
}

// Run fetches rawURL, decodes it and saves it.
//
// A fetch or decode failure returns a nil Result and a KindDownload error;
// the output file is not touched. A save failure returns the decoded Result
// with an empty Path together with a KindSave error.
func (p *Pipeline) Run(ctx context.Context, rawURL string, onStep StepFunc) (*Result, error) {
	p.mu.RLock()
	source, store := p.source, p.store
	p.mu.RUnlock()

	notify := func(s Step) {
		if onStep != nil {
			onStep(s)
		}
	}

	notify(StepFetch)
	data, err := source.Fetch(ctx, rawURL)
	if err != nil {
		log.Printf("Fetch failed for %s: %v", rawURL, err)
		return nil, downloadError(rawURL, err)
	}
	log.Printf("Fetched %d bytes from %s", len(data), rawURL)

	notify(StepDecode)
	img, format, err := Decode(data)
	if err != nil {
		log.Printf("Decode failed for %s: %v", rawURL, err)
		return nil, downloadError(rawURL, err)
	}

	bounds := img.Bounds()
	result := &Result{
		URL:    rawURL,
		Image:  img,
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	log.Printf("Decoded %s image %dx%d from %s", format, result.Width, result.Height, rawURL)

	notify(StepSave)
	size, err := store.Save(img)
	if err != nil {
		log.Printf("Save failed for %s: %v", store.Path(), err)
		return result, saveError(rawURL, store.Path(), err)
	}

	result.Path = store.Path()
	result.Size = size
	log.Printf("Saved %s (%d bytes)", result.Path, result.Size)
	return result, nil
}
