// Package shutdown coordinates orderly teardown on exit or signal.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"filter-workbench/internal/logger"
)

const componentTimeout = 10 * time.Second

// Closer is anything with resources to release at shutdown.
type Closer interface {
	Close() error
}

// Manager closes registered components in reverse registration order,
// each guarded by a timeout. Shutdown runs at most once.
type Manager struct {
	mu         sync.Mutex
	components []Closer
	names      []string
	log        logger.Logger
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		log:    log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a component to close at shutdown. Later registrations
// close first.
func (m *Manager) Register(name string, component Closer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component)
	m.names = append(m.names, name)
}

// Listen starts a goroutine that turns SIGINT or SIGTERM into a
// Shutdown call.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.log.Info("shutdown", "signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
	}()
}

// Shutdown cancels the manager context and closes every component in
// reverse order. Repeated calls return immediately.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.log.Info("shutdown", "closing components", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		component := m.components[i]
		name := m.names[i]

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			if err := component.Close(); err != nil {
				m.log.Error("shutdown", "component close failed", err, map[string]interface{}{
					"component": name,
				})
			}
		}()

		select {
		case <-closed:
		case <-time.After(componentTimeout):
			m.log.Warning("shutdown", "component close timed out", map[string]interface{}{
				"component": name,
			})
		}
	}
}

// Context is canceled when shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Done is closed when shutdown begins.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
