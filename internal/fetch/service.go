package fetch

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/img-fetcher/internal/model"
)

// Queue limits
const (
	DefaultMaxParallel = 1
	MaxParallelLimit   = 4
	TaskIDPrefix       = "task-"
)

// Service runs fetch tasks in the background, in submission order
type Service struct {
	tasks       map[string]*model.FetchTask
	order       []string
	tasksMutex  sync.RWMutex
	maxParallel int
	activeCount int
	fetcher     Fetcher
	onUpdate    func(*model.FetchTask) // callback for UI updates

	// single slot for the most recently decoded image; tasks keep only metadata
	latestTaskID string
	latestImage  image.Image
}

// NewService creates a new fetch service
func NewService(fetcher Fetcher, maxParallel int) *Service {
	return &Service{
		tasks:       make(map[string]*model.FetchTask),
		maxParallel: clampParallel(maxParallel),
		fetcher:     fetcher,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.FetchTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetMaxParallel sets the maximum number of tasks running at once
func (s *Service) SetMaxParallel(max int) {
	s.tasksMutex.Lock()
	s.maxParallel = clampParallel(max)
	s.tasksMutex.Unlock()

	s.startPendingTasks()
}

// AddTask queues a fetch of url. Requests for a URL that is already queued
// are not merged; each runs to completion and the last one to finish owns
// the output file.
func (s *Service) AddTask(url string) (*model.FetchTask, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("fetch service has no pipeline")
	}

	task := &model.FetchTask{
		ID:        generateTaskID(),
		URL:       url,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	s.startPendingTasks()

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.FetchTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetTaskStatus returns the current status of a task
func (s *Service) GetTaskStatus(id string) (model.TaskStatus, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return "", false
	}
	return task.Status, true
}

// GetAllTasks returns all tasks in submission order
func (s *Service) GetAllTasks() []*model.FetchTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.FetchTask, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id])
	}
	return tasks
}

// LatestImage returns the image decoded by the most recent finished run and
// the ID of that task. Each run that decodes an image replaces the slot.
func (s *Service) LatestImage() (string, image.Image) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.latestTaskID, s.latestImage
}

// RemoveTask removes a task that is not currently running
func (s *Service) RemoveTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}

	if task.Status.IsActive() {
		return fmt.Errorf("task is active: %s", task.Status)
	}

	delete(s.tasks, id)
	for i, queued := range s.order {
		if queued == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// startPendingTasks starts pending tasks in order while there is capacity
func (s *Service) startPendingTasks() {
	s.tasksMutex.Lock()
	var started []*model.FetchTask
	for _, id := range s.order {
		if s.activeCount >= s.maxParallel {
			break
		}
		task := s.tasks[id]
		if task.Status != model.TaskStatusPending {
			continue
		}
		task.Status = model.TaskStatusDownloading
		s.activeCount++
		started = append(started, task)
	}
	s.tasksMutex.Unlock()

	for _, task := range started {
		s.notifyUpdate(task)
		go s.runTask(task)
	}
}

// runTask runs the pipeline for a task that is already marked downloading
func (s *Service) runTask(task *model.FetchTask) {
	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()

		// Try to start next pending task
		s.startPendingTasks()
	}()

	result, err := s.fetcher.Run(context.Background(), task.URL, func(step Step) {
		if step != StepSave {
			return
		}
		s.tasksMutex.Lock()
		task.Status = model.TaskStatusSaving
		s.tasksMutex.Unlock()
		s.notifyUpdate(task)
	})

	s.tasksMutex.Lock()
	if result != nil {
		if result.Image != nil {
			s.latestTaskID = task.ID
			s.latestImage = result.Image
		}
		task.Format = result.Format
		task.Width = result.Width
		task.Height = result.Height
		task.OutputPath = result.Path
		task.FileSize = result.Size
	}
	switch KindOf(err) {
	case KindNone:
		task.Status = model.TaskStatusCompleted
	case KindSave:
		task.Status = model.TaskStatusSaveFailed
		task.LastError = err.Error()
	default:
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	log.Printf("Task %s finished: status=%s output=%s", task.ID, task.Status, task.OutputPath)
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.FetchTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(task)
	}
}

func clampParallel(n int) int {
	if n < 1 {
		return DefaultMaxParallel
	}
	if n > MaxParallelLimit {
		return MaxParallelLimit
	}
	return n
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
