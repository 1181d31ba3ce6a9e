package platform

// Package platform contains OS/platform integration glue: the per-app
// pictures directory, filesystem helpers, OS open/reveal, and the Android
// media scanner hook that makes saved images show up in the gallery.
