package ports

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file in one operation, creating parent
	// directories if necessary.
	WriteFile(path string, data []byte) error

	// Rename moves oldPath to newPath, replacing newPath if it exists.
	// Used to publish a fully written file under its final name.
	Rename(oldPath, newPath string) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
