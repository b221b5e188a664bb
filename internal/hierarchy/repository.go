package hierarchy

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository holds all folders and files across all users as two flat,
// id-indexed collections. Membership in a folder is resolved by
// equality on the parent reference, not by child pointers, and
// listings come back in insertion order. All state is process memory.
type Repository struct {
	mu sync.Mutex

	folders     map[uuid.UUID]Folder
	folderOrder []uuid.UUID
	files       map[uuid.UUID]File
	fileOrder   []uuid.UUID

	now func() time.Time
}

// NewRepository constructs an empty in-memory hierarchy store.
func NewRepository() *Repository {
	return &Repository{
		folders: make(map[uuid.UUID]Folder),
		files:   make(map[uuid.UUID]File),
		now:     time.Now,
	}
}

// CreateFolder records a new folder. Sibling name uniqueness is not
// enforced.
func (r *Repository) CreateFolder(ctx context.Context, userID uuid.UUID, name string, parentID *uuid.UUID) (Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	folder := Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		ParentID:  parentID,
		CreatedAt: r.now().UTC(),
	}

	r.folders[folder.ID] = folder
	r.folderOrder = append(r.folderOrder, folder.ID)
	return folder, nil
}

// FindFolder returns a folder ensuring ownership.
func (r *Repository) FindFolder(ctx context.Context, userID, folderID uuid.UUID) (Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	folder, ok := r.folders[folderID]
	if !ok || folder.UserID != userID {
		return Folder{}, ErrFolderNotFound
	}
	return folder, nil
}

// CreateFile unconditionally records a file. The admission check is
// the caller's responsibility.
func (r *Repository) CreateFile(ctx context.Context, userID uuid.UUID, name string, sizeBytes int64, contentType string, folderID *uuid.UUID) (File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file := File{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		SizeBytes:   sizeBytes,
		ContentType: contentType,
		FolderID:    folderID,
		UploadedAt:  r.now().UTC(),
	}

	r.files[file.ID] = file
	r.fileOrder = append(r.fileOrder, file.ID)
	return file, nil
}

// ListChildren returns the folders and files directly under the given
// parent ("root" when parentID is nil), in insertion order.
func (r *Repository) ListChildren(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID) ([]Folder, []File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	folders := make([]Folder, 0)
	for _, id := range r.folderOrder {
		folder := r.folders[id]
		if folder.UserID == userID && sameParent(folder.ParentID, parentID) {
			folders = append(folders, folder)
		}
	}

	files := make([]File, 0)
	for _, id := range r.fileOrder {
		file := r.files[id]
		if file.UserID == userID && sameParent(file.FolderID, parentID) {
			files = append(files, file)
		}
	}

	return folders, files, nil
}

// DeleteFile removes the file record and returns it so the caller can
// issue the matching usage delta.
func (r *Repository) DeleteFile(ctx context.Context, userID, fileID uuid.UUID) (File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, ok := r.files[fileID]
	if !ok || file.UserID != userID {
		return File{}, ErrFileNotFound
	}

	delete(r.files, fileID)
	r.fileOrder = removeID(r.fileOrder, fileID)
	return file, nil
}

// DeleteFolder removes the folder and, in a single shallow cascade,
// every file whose FolderID equals the deleted folder's id. Files and
// folders nested more than one level deep are left in place, and the
// owner's usage is not reclaimed for the cascaded files; see DESIGN.md.
func (r *Repository) DeleteFolder(ctx context.Context, userID, folderID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	folder, ok := r.folders[folderID]
	if !ok || folder.UserID != userID {
		return ErrFolderNotFound
	}

	delete(r.folders, folderID)
	r.folderOrder = removeID(r.folderOrder, folderID)

	kept := r.fileOrder[:0]
	for _, id := range r.fileOrder {
		file := r.files[id]
		if file.FolderID != nil && *file.FolderID == folderID {
			delete(r.files, id)
			continue
		}
		kept = append(kept, id)
	}
	r.fileOrder = kept

	return nil
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func removeID(ids []uuid.UUID, target uuid.UUID) []uuid.UUID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
