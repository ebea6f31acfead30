package playground

import "time"

// FileType is the language/content tag of a playground file.
type FileType string

const (
	FileTypeJavaScript FileType = "javascript"
	FileTypeTypeScript FileType = "typescript"
	FileTypePython     FileType = "python"
	FileTypeCSS        FileType = "css"
	FileTypeHTML       FileType = "html"
	FileTypeJSON       FileType = "json"
	FileTypeMarkdown   FileType = "markdown"
	FileTypePlaintext  FileType = "plaintext"
)

// IsValid reports whether t is a known file type.
func (t FileType) IsValid() bool {
	switch t {
	case FileTypeJavaScript, FileTypeTypeScript, FileTypePython, FileTypeCSS,
		FileTypeHTML, FileTypeJSON, FileTypeMarkdown, FileTypePlaintext:
		return true
	}
	return false
}

// File is a single editable file inside a playground. Order positions the
// file in the editor tab strip.
type File struct {
	ID           string
	PlaygroundID string
	Name         string
	Content      string
	Type         FileType
	Order        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
