package domain

// ProgressObserver receives each Result as soon as its URL completes.
// Calls arrive from multiple workers; implementations must be safe for
// concurrent use. Events are ordered per worker, not globally.
type ProgressObserver interface {
	Completed(Result)
}
