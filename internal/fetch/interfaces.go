package fetch

import (
	"context"
	"image"

	"github.com/ytget/img-fetcher/internal/model"
)

// Fetcher runs the fetch-decode-save pipeline for one URL.
type Fetcher interface {
	Run(ctx context.Context, rawURL string, onStep StepFunc) (*Result, error)
}

// Queue defines the interface for the background fetch service.
type Queue interface {
	SetUpdateCallback(func(*model.FetchTask))
	AddTask(url string) (*model.FetchTask, error)
	GetTask(id string) (*model.FetchTask, bool)
	GetTaskStatus(id string) (model.TaskStatus, bool)
	GetAllTasks() []*model.FetchTask
	RemoveTask(id string) error

	// LatestImage returns the task ID and image of the most recent decode
	LatestImage() (string, image.Image)

	// SetMaxParallel sets the maximum number of tasks running at once
	SetMaxParallel(max int)
}

var (
	_ Fetcher = (*Pipeline)(nil)
	_ Queue   = (*Service)(nil)
	_ Source  = (*HTTPSource)(nil)
	_ Store   = (*FileStore)(nil)
)
