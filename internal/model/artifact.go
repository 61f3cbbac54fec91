package model

import "time"

// Headline is a single fetched news title tagged with its rotation category
// and the backend that produced it.
type Headline struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Source   string `json:"source"` // "newsapi", "gnews", or "local"
}

// RunResult holds everything one generation pass produced.
type RunResult struct {
	Date     string   `json:"date"` // YYYY-MM-DD
	Headline Headline `json:"headline"`
	Joke     string   `json:"joke"`
	Reaction string   `json:"reaction"`
}

// ArtifactEvent is emitted when a generated artifact changes on disk.
type ArtifactEvent struct {
	Path string    `json:"path"`
	Op   string    `json:"op"` // "write", "create", "remove", "rename"
	At   time.Time `json:"at"`
}
