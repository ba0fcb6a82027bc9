package actor

import (
	"context"
	"sync"

	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
)

// DefaultQueueSize is the mailbox capacity used when the config does not set one
const DefaultQueueSize = 100

// HandlerFunc processes one payload delivered to a named handler. Failures are
// the handler's own problem: it logs them, the emitter never hears about them.
type HandlerFunc func(ctx context.Context, payload any)

// System is an in-process dispatcher. Each registered handler gets a buffered
// mailbox channel and one goroutine that drains it sequentially, so payloads
// addressed to the same handler are processed in emission order.
//
// Emit never blocks. A payload addressed to an unknown handler, emitted after
// shutdown, or arriving while the mailbox is full is dropped with a warning.
type System struct {
	logger    coreport.Logger
	queueSize int

	mu        sync.Mutex
	mailboxes map[string]chan any
	started   bool
	stopped   bool

	workerWaitGroup sync.WaitGroup
	baseCtx         context.Context
	cancel          context.CancelFunc
}

// NewSystem creates an actor system with the given mailbox capacity
func NewSystem(queueSize int, logger coreport.Logger) *System {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &System{
		logger:    logger,
		queueSize: queueSize,
		mailboxes: make(map[string]chan any),
		baseCtx:   ctx,
		cancel:    cancel,
	}
}

// Register binds a handler function to a name. Registration must happen before
// Start; registering a duplicate name panics because it is a wiring mistake.
func (s *System) Register(name string, handler HandlerFunc) {
	if handler == nil {
		panic("actor handler cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		panic("actor handlers must be registered before Start")
	}
	if _, exists := s.mailboxes[name]; exists {
		panic("actor handler registered twice: " + name)
	}

	mailbox := make(chan any, s.queueSize)
	s.mailboxes[name] = mailbox
	s.workerWaitGroup.Add(1)
	go s.drainMailbox(name, mailbox, handler)
}

// Start marks the system live. Emit drops everything until Start is called so
// that wiring mistakes during startup surface as warnings rather than handler
// calls against half-initialized dependencies.
func (s *System) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true
	s.logger.Info("Actor system started", map[string]any{
		"handlers":   len(s.mailboxes),
		"queue_size": s.queueSize,
	})
}

// Emit schedules a payload for the named handler. It never blocks: when the
// mailbox is full, the handler is unknown, or the system is not running, the
// payload is dropped and a warning logged.
func (s *System) Emit(handler string, payload any) {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		s.logger.Warn("Dropping event, actor system is not running", map[string]any{
			"handler": handler,
		})
		return
	}
	mailbox, ok := s.mailboxes[handler]
	s.mu.Unlock()

	if !ok {
		s.logger.Warn("Dropping event for unknown handler", map[string]any{
			"handler": handler,
		})
		return
	}

	select {
	case mailbox <- payload:
	default:
		s.logger.Warn("Dropping event, handler mailbox is full", map[string]any{
			"handler":    handler,
			"queue_size": s.queueSize,
		})
	}
}

// Shutdown stops accepting new events, drains every mailbox, and waits for the
// workers to finish their in-flight payloads.
func (s *System) Shutdown() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	for name, mailbox := range s.mailboxes {
		s.logger.Debug("Closing handler mailbox", map[string]any{
			"handler": name,
		})
		close(mailbox)
	}
	s.mu.Unlock()

	s.workerWaitGroup.Wait()
	s.cancel()
	s.logger.Info("Actor system shut down", nil)
}

// drainMailbox is the worker goroutine for one handler
func (s *System) drainMailbox(name string, mailbox chan any, handler HandlerFunc) {
	defer s.workerWaitGroup.Done()

	for payload := range mailbox {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("Handler panicked, event lost", map[string]any{
						"handler": name,
						"panic":   r,
					})
				}
			}()
			handler(s.baseCtx, payload)
		}()
	}

	s.logger.Debug("Handler mailbox drained", map[string]any{
		"handler": name,
	})
}
