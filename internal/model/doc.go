package model

// Package model defines domain data structures used across the app: image
// fetch tasks and their status enum. Structures are designed for direct
// binding in the UI and explicit state transitions.
