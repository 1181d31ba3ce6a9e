package fetch

// Package fetch implements the image fetch pipeline: an HTTP GET of a
// user-supplied URL, decoding of the body into an image.Image (via
// github.com/disintegration/imaging), and persisting it as a JPEG to a fixed
// path. It also provides a background task queue that runs the same pipeline
// and propagates task updates to the UI.
