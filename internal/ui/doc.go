package ui

// Package ui contains the Fyne-based desktop user interface for the blog page.
// A View owns the page state, maps triggers to state transitions and rebuilds
// its widgets from the render tree after every transition.
