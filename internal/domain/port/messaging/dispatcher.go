package messaging

// Dispatcher schedules a payload for asynchronous delivery to a named handler.
//
// Delivery is fire-and-forget: at-most-once, best-effort, no acknowledgment
// and no backpressure to the emitter. An in-flight payload is lost if the
// process terminates before it is handled. Handler failures are logged by the
// handler itself and never reach the emitter.
type Dispatcher interface {
	Emit(handler string, payload any)
}
