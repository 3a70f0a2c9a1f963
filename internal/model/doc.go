package model

// Package model defines the view state of the blog page: the title list, the
// like counter and the transitions that produce a new state from the current one.
