package sketch

import "log/slog"

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default 2D transform stack
//	dc := sketch.NewContext()
//
//	// 3D stack, degree angles
//	dc := sketch.NewContext(
//		sketch.WithRenderer(sketch.NewTransform3D()),
//		sketch.WithAngleMode(sketch.Degrees),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	renderer Renderer
	mode     Mode
	logger   *slog.Logger
}

// defaultOptions returns the default context options: a fresh
// Transform2D, radian angles, no logging.
func defaultOptions() contextOptions {
	return contextOptions{
		renderer: nil, // NewContext creates a Transform2D if nil
		mode:     RadiansMode,
	}
}

// WithRenderer injects the renderer backing the Context. Use this to
// drive a custom backend's transform stack, or [NewTransform3D] for the
// stock 3D one.
func WithRenderer(r Renderer) ContextOption {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithAngleMode sets the initial angle unit mode. It can be changed
// later with [Context.AngleMode].
func WithAngleMode(m Mode) ContextOption {
	return func(o *contextOptions) {
		o.mode = m
	}
}

// WithLogger enables structured logging for the Context. By default a
// Context produces no log output. sketch logs at [slog.LevelDebug] only:
// silently-adjusted arguments such as a dropped z component on a 2D
// renderer.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}
