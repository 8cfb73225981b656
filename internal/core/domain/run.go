package domain

import "time"

// Run records the outcome of one assembly request. Stored for history and
// troubleshooting; the Deck itself is not persisted.
type Run struct {
	ID               string    `json:"id"`
	SourceFile       string    `json:"source_file"`
	OutputName       string    `json:"output_name"`
	SlideCount       int       `json:"slide_count"`
	FolderCount      int       `json:"folder_count"`
	VideoFolderFound bool      `json:"video_folder_found"`
	CreatedAt        time.Time `json:"created_at"`
}
