package outbound

// TaskDispatcher schedules work on the shared worker pool.
type TaskDispatcher interface {
	Submit(task func()) error
}
