package catalog

import "time"

/*
The catalog is a record of what one intake run processed. It is a
primitive for verifying, inventorying and auditing file ingestion:
which files were accepted, how many rows survived, and why a file was
rejected.
*/

// File reports the outcome for a single input file.
type File struct {
	Name      string `json:"name"`
	Rows      int    `json:"rows"`
	Error     string `json:"error,omitempty"`
	Preserved bool   `json:"preserved"`
}

// Catalog represents one intake run.
type Catalog struct {
	RunID     string    `json:"run_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Source    string    `json:"source"`
	Files     []File    `json:"files"`
	NumRows   int       `json:"num_rows"`
	Success   bool      `json:"success"`
}
