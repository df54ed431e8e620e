package domain

import "time"

// EventTypeUploadMerged is the type of the event published once an artifact is committed
const EventTypeUploadMerged = "UploadMerged"

// UploadMergedEvent is published after a successful merge
type UploadMergedEvent struct {
	EventType      string    `json:"event_type"`
	UploadID       UploadID  `json:"upload_id"`
	FileName       string    `json:"file_name"`
	ContentType    string    `json:"content_type"`
	Path           string    `json:"path"`
	ObjectKey      string    `json:"object_key,omitempty"`
	SizeBytes      int64     `json:"size_bytes"`
	ChecksumSHA256 string    `json:"checksum_sha256"`
	MergedAt       time.Time `json:"merged_at"`
}
