package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mycloudhq/mycloud/internal/account"
	"github.com/mycloudhq/mycloud/internal/hierarchy"
	"github.com/mycloudhq/mycloud/internal/metrics"
)

// accountStore is the slice of the account service uploads rely on.
type accountStore interface {
	Get(ctx context.Context, userID uuid.UUID) (account.User, error)
	ApplyUsageDelta(ctx context.Context, userID uuid.UUID, deltaBytes int64) (account.User, error)
}

// fileStore records completed uploads in the hierarchy.
type fileStore interface {
	CreateFile(ctx context.Context, userID uuid.UUID, name string, sizeBytes int64, contentType string, folderID *uuid.UUID) (hierarchy.File, error)
}

// Service runs the upload admission and simulated transfer flow.
type Service struct {
	accounts     accountStore
	files        fileStore
	tickInterval time.Duration
	tickStep     int
}

// NewService constructs an upload service. tickInterval and tickStep
// control the simulated progress timer.
func NewService(accounts accountStore, files fileStore, tickInterval time.Duration, tickStep int) *Service {
	if tickInterval <= 0 {
		tickInterval = 200 * time.Millisecond
	}
	metrics.InitMetrics()
	return &Service{
		accounts:     accounts,
		files:        files,
		tickInterval: tickInterval,
		tickStep:     tickStep,
	}
}

// Input describes the file selected for upload. No content bytes are
// carried; the size drives quota accounting.
type Input struct {
	Name        string
	SizeBytes   int64
	ContentType string
	FolderID    *uuid.UUID
}

// Result bundles the recorded file with the refreshed owner snapshot.
type Result struct {
	File hierarchy.File
	User account.User
}

// Upload admits, simulates and records a file upload. The admission
// check runs before any progress begins; on rejection no state changes.
// The file record and the usage increment happen together, only at the
// completion transition. Cancelling the context between ticks aborts
// the transfer with no state change.
func (s *Service) Upload(ctx context.Context, userID uuid.UUID, input Input) (Result, error) {
	if input.SizeBytes < 0 {
		return Result{}, ErrInvalidSize
	}

	user, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return Result{}, fmt.Errorf("resolve user: %w", err)
	}

	transfer := NewTransfer(s.tickStep)
	if err := transfer.Begin(user.StorageUsed, user.StorageLimit, input.SizeBytes); err != nil {
		metrics.UploadsRejected.Inc()
		return Result{}, err
	}

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for transfer.State() == StateInProgress {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-ticker.C:
			transfer.Advance()
		}
	}

	file, err := s.files.CreateFile(ctx, userID, input.Name, input.SizeBytes, input.ContentType, input.FolderID)
	if err != nil {
		return Result{}, err
	}

	updated, err := s.accounts.ApplyUsageDelta(ctx, userID, input.SizeBytes)
	if err != nil {
		return Result{}, err
	}

	metrics.UploadsCompleted.Inc()
	return Result{File: file, User: updated}, nil
}
