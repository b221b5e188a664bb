package hierarchy

import (
	"time"

	"github.com/google/uuid"
)

// Folder is a named container in a user's tree. A nil ParentID means
// the folder sits at the root. Sibling names are not required to be
// unique.
type Folder struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsRoot reports whether the folder sits at the top level.
func (f Folder) IsRoot() bool {
	return f.ParentID == nil
}

// File is a stored file record. No content bytes are kept; the size
// and type describe the simulated upload. A nil FolderID means the
// file sits at the root.
type File struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	SizeBytes   int64      `json:"size_bytes"`
	ContentType string     `json:"content_type"`
	FolderID    *uuid.UUID `json:"folder_id,omitempty"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}
