package model

import (
	"fmt"
	"net/url"
	"path"
	"time"
)

// FetchTask represents a single fetch-decode-save run for one URL
type FetchTask struct {
	ID         string
	URL        string
	Status     TaskStatus
	LastError  string    // last error message if any
	OutputPath string    // path to saved JPEG, empty if not saved
	Format     string    // source format reported by the decoder (jpeg, png, ...)
	Width      int       // decoded width in pixels
	Height     int       // decoded height in pixels
	FileSize   int64     // saved file size in bytes
	StartedAt  time.Time // when the task was created
	FinishedAt time.Time // when the task finished
}

// GetDisplayTitle returns the last URL path segment, or the URL itself
func (ft *FetchTask) GetDisplayTitle() string {
	if ft.URL == "" {
		return ""
	}

	u, err := url.Parse(ft.URL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return ft.URL
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ft.URL
	}
	return name
}

// GetDimensionsString returns "WxH", or "—" when nothing was decoded
func (ft *FetchTask) GetDimensionsString() string {
	if ft.Width <= 0 || ft.Height <= 0 {
		return "—"
	}
	return fmt.Sprintf("%dx%d", ft.Width, ft.Height)
}

// GetSizeString returns the saved file size in human readable form
func (ft *FetchTask) GetSizeString() string {
	if ft.FileSize <= 0 {
		return "—"
	}

	const unit = 1024
	if ft.FileSize < unit {
		return fmt.Sprintf("%d B", ft.FileSize)
	}

	div, exp := int64(unit), 0
	for n := ft.FileSize / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(ft.FileSize)/float64(div), "KMGTPE"[exp])
}
