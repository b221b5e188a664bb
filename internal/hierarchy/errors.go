package hierarchy

import "errors"

var (
	// ErrFolderNotFound indicates the folder does not exist for the user.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrFileNotFound signals that the file could not be located.
	ErrFileNotFound = errors.New("file not found")
	// ErrNameRequired is returned for an empty folder or file name.
	ErrNameRequired = errors.New("name required")
)
