// server/internal/models/common.go
package models

// MediaPointer references a document stored on S3 (or a compatible service).
type MediaPointer struct {
	ID       string `bson:"id" json:"id"`
	URL      string `bson:"url" json:"url"`
	FileName string `bson:"fileName" json:"fileName"`
	FileType string `bson:"fileType" json:"fileType"` // e.g. "image/png", "application/pdf"
}
