package dto

// ExportQuery selects an export format. Database and Collection apply to
// mongo-script only.
type ExportQuery struct {
	Format     string `form:"format"`
	Database   string `form:"database"`
	Collection string `form:"collection"`
}

// ExportFile is a rendered download
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// AudioFile is a resolved playback handle
type AudioFile struct {
	RecordID int64
	MimeType string
	Data     []byte
}
