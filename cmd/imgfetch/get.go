package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/ytget/img-fetcher/internal/config"
	"github.com/ytget/img-fetcher/internal/fetch"
	"github.com/ytget/img-fetcher/internal/platform"
)

// Exit codes
const (
	exitOK            = 0
	exitDownloadError = 1
	exitSaveError     = 2
)

// exitError carries the process exit code out of a cobra RunE
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

type getFlags struct {
	dir     string
	name    string
	quality int
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return exitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	// usage errors
	return exitDownloadError
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "imgfetch",
		Short:         "fetch an image by URL and save it as JPEG",
		SilenceUsage: true,
	}
	root.AddCommand(newGetCmd(stdout))
	return root
}

func newGetCmd(stdout io.Writer) *cobra.Command {
	var flags getFlags

	cmd := &cobra.Command{
		Use:   "get URL",
		Short: "download URL, decode it and save it to the pictures directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args[0], flags, stdout)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", "", "output directory (default: the app pictures directory)")
	cmd.Flags().StringVar(&flags.name, "name", fetch.DefaultFileName, "output file name")
	cmd.Flags().IntVar(&flags.quality, "quality", fetch.DefaultJPEGQuality, "JPEG quality (1-100)")

	return cmd
}

func runGet(cmd *cobra.Command, rawURL string, flags getFlags, stdout io.Writer) error {
	dir := flags.dir
	if dir == "" {
		var err error
		dir, err = platform.GetPicturesDir(config.AppID)
		if err != nil {
			return &exitError{code: exitSaveError, err: fmt.Errorf("resolve pictures dir: %w", err)}
		}
	}

	store := fetch.NewFileStore(dir, flags.name, flags.quality)
	pipeline := fetch.NewPipeline(fetch.NewHTTPSource(nil), store)

	result, err := pipeline.FetchAndStore(cmd.Context(), rawURL)
	switch fetch.KindOf(err) {
	case fetch.KindNone:
		fmt.Fprintf(stdout, "image saved: %s\n", result.Path)
		fmt.Fprintf(stdout, "%s %dx%d, %d bytes\n", result.Format, result.Width, result.Height, result.Size)
		return nil
	case fetch.KindSave:
		log.Printf("Save failed: %v", err)
		fmt.Fprintf(stdout, "%s: %s\n", fetch.KindSave, store.Path())
		fmt.Fprintf(stdout, "%s %dx%d decoded\n", result.Format, result.Width, result.Height)
		return &exitError{code: exitSaveError, err: err}
	default:
		log.Printf("Download failed: %v", err)
		fmt.Fprintf(stdout, "%s\n", fetch.KindDownload)
		return &exitError{code: exitDownloadError, err: err}
	}
}
