package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks registered against it so tests can
// invoke OnStart/OnStop directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called when a shutdown is requested.
type ShutdownerStub struct {
	Called chan struct{}
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
