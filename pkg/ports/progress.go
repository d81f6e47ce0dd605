package ports

// Progress reports advancement of a long-running stage.
// Implementations must be safe for concurrent use.
type Progress interface {
	// Start begins a new task with the given number of steps.
	Start(total int, description string)

	// Advance marks n more steps as done.
	Advance(n int)

	// Finish completes the current task.
	Finish()
}
