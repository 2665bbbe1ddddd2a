package errors

// Recorder observes error construction. Implementations should be
// thread-safe; the metrics package provides a Prometheus-backed one.
type Recorder interface {
	// RecordError records that an error with the given code was constructed.
	RecordError(code ErrorCode)
}

// NoOpRecorder is a recorder that does nothing. It is the default, which
// keeps the package free of runtime dependencies.
type NoOpRecorder struct{}

// RecordError does nothing.
func (NoOpRecorder) RecordError(ErrorCode) {}

var recorder Recorder = NoOpRecorder{}

// SetRecorder installs the construction hook. Passing nil restores the
// no-op default. Intended for process start-up, before concurrent use.
func SetRecorder(r Recorder) {
	if r == nil {
		recorder = NoOpRecorder{}
		return
	}
	recorder = r
}
