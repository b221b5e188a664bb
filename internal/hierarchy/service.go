package hierarchy

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mycloudhq/mycloud/internal/account"
)

// treeStore abstracts the folder/file persistence layer.
type treeStore interface {
	CreateFolder(ctx context.Context, userID uuid.UUID, name string, parentID *uuid.UUID) (Folder, error)
	FindFolder(ctx context.Context, userID, folderID uuid.UUID) (Folder, error)
	CreateFile(ctx context.Context, userID uuid.UUID, name string, sizeBytes int64, contentType string, folderID *uuid.UUID) (File, error)
	ListChildren(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID) ([]Folder, []File, error)
	DeleteFile(ctx context.Context, userID, fileID uuid.UUID) (File, error)
	DeleteFolder(ctx context.Context, userID, folderID uuid.UUID) error
}

// usageStore is the slice of the account service the hierarchy needs
// to keep usage figures consistent with file mutations.
type usageStore interface {
	ApplyUsageDelta(ctx context.Context, userID uuid.UUID, deltaBytes int64) (account.User, error)
}

// Service orchestrates folder and file operations.
type Service struct {
	repo     treeStore
	accounts usageStore
}

// NewService constructs a hierarchy service.
func NewService(repo treeStore, accounts usageStore) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
	}
}

// ListChildren returns the direct children of the given folder, or of
// the root when parentID is nil, in insertion order.
func (s *Service) ListChildren(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID) ([]Folder, []File, error) {
	if parentID != nil {
		if _, err := s.repo.FindFolder(ctx, userID, *parentID); err != nil {
			return nil, nil, err
		}
	}
	return s.repo.ListChildren(ctx, userID, parentID)
}

// CreateFolder records a new folder under the given parent. Duplicate
// sibling names are allowed.
func (s *Service) CreateFolder(ctx context.Context, userID uuid.UUID, name string, parentID *uuid.UUID) (Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Folder{}, ErrNameRequired
	}

	if parentID != nil {
		if _, err := s.repo.FindFolder(ctx, userID, *parentID); err != nil {
			return Folder{}, err
		}
	}

	return s.repo.CreateFolder(ctx, userID, name, parentID)
}

// CreateFile records a file under the given folder. The quota
// admission check belongs to the caller; this operation records
// unconditionally once the target folder is resolved.
func (s *Service) CreateFile(ctx context.Context, userID uuid.UUID, name string, sizeBytes int64, contentType string, folderID *uuid.UUID) (File, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return File{}, ErrNameRequired
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if folderID != nil {
		if _, err := s.repo.FindFolder(ctx, userID, *folderID); err != nil {
			return File{}, err
		}
	}

	return s.repo.CreateFile(ctx, userID, name, sizeBytes, contentType, folderID)
}

// DeleteFile removes the file and releases its size from the owner's
// usage, returning the refreshed user snapshot.
func (s *Service) DeleteFile(ctx context.Context, userID, fileID uuid.UUID) (File, account.User, error) {
	removed, err := s.repo.DeleteFile(ctx, userID, fileID)
	if err != nil {
		return File{}, account.User{}, err
	}

	user, err := s.accounts.ApplyUsageDelta(ctx, userID, -removed.SizeBytes)
	if err != nil {
		return File{}, account.User{}, err
	}

	return removed, user, nil
}

// DeleteFolder removes the folder and its direct-child files. The
// cascade is shallow and does not release usage for the files it
// removes; deeper descendants keep their records.
func (s *Service) DeleteFolder(ctx context.Context, userID, folderID uuid.UUID) error {
	return s.repo.DeleteFolder(ctx, userID, folderID)
}
