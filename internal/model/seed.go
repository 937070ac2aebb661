package model

// Path represents a file system path.
type Path string

// DefaultSeed is the input mutated when no seed is configured.
const DefaultSeed = `<html a="value">...</html>`

// DefaultMaxTests caps the number of executed tests per run.
const DefaultMaxTests = 150

// Target is a validated command line and the directory it runs in.
type Target struct {
	Command string
	Dir     Path
}
