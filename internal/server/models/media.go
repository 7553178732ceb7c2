package models

// Media upload states.
const (
	MediaPending  = "pending"
	MediaUploaded = "uploaded"
)

// Media describes an object-storage blob a content author uploads before
// creating the content item that references it.
type Media struct {
	StorageKey   string
	OwnerID      string
	UploadStatus string
}

// MediaUploadTask instructs the client to upload media using a presigned URL.
type MediaUploadTask struct {
	StorageKey string
	URL        string
}
