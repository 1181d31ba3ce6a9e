package ui

import (
	"fmt"
	"image"
	"net/url"
	"strings"

	"github.com/ytget/img-fetcher/internal/fetch"
	"github.com/ytget/img-fetcher/internal/model"
)

// outcome is what the screen needs to present one finished pipeline run
type outcome struct {
	URL       string
	Image     image.Image
	Path      string
	NoticeKey string
}

// outcomeFromResult maps a direct pipeline run to the image and notice to show.
// A save failure still carries the decoded image.
func outcomeFromResult(rawURL string, result *fetch.Result, err error) outcome {
	o := outcome{URL: rawURL}
	if result != nil {
		o.Image = result.Image
		o.Path = result.Path
	}

	switch fetch.KindOf(err) {
	case fetch.KindNone:
		o.NoticeKey = KeyImageSaved
	case fetch.KindSave:
		o.NoticeKey = KeySaveError
	default:
		o.Image = nil
		o.Path = ""
		o.NoticeKey = KeyDownloadError
	}
	return o
}

// outcomeFromTask maps a finished queue task the same way. img is the queue's
// latest image when it belongs to task, nil otherwise.
func outcomeFromTask(task *model.FetchTask, status model.TaskStatus, img image.Image) outcome {
	o := outcome{URL: task.URL}
	switch status {
	case model.TaskStatusCompleted:
		o.Image = img
		o.Path = task.OutputPath
		o.NoticeKey = KeyImageSaved
	case model.TaskStatusSaveFailed:
		o.Image = img
		o.NoticeKey = KeySaveError
	default:
		o.NoticeKey = KeyDownloadError
	}
	return o
}

// statusText returns the short status shown in a task row
func statusText(l *Localization, status model.TaskStatus) string {
	switch status {
	case model.TaskStatusDownloading:
		return l.GetText(KeyDownloading)
	case model.TaskStatusSaving:
		return l.GetText(KeySaving)
	case model.TaskStatusCompleted:
		return l.GetText(KeyImageSaved)
	case model.TaskStatusSaveFailed:
		return l.GetText(KeySaveError)
	case model.TaskStatusError:
		return l.GetText(KeyDownloadError)
	default:
		return status.String()
	}
}

// validateURL flags entries that are not http(s) URLs. It only drives the
// entry's validation hint; the download button still runs the pipeline,
// which reports such input as a download error.
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// cleanURL strips characters that break display or the request line
func cleanURL(input string) string {
	cleaned := strings.ReplaceAll(input, "\n", "")
	cleaned = strings.ReplaceAll(cleaned, "\r", "")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	return strings.TrimSpace(cleaned)
}
