package stream

import "context"

type optionKey string

const workerOptionKey optionKey = "stream_worker_options"

type workerOptions struct {
	maxLines int
}

// WithLines stores the preferred number of worker lines on the context.
func WithLines(ctx context.Context, maxLines int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxLines: maxLines})
}

// Lines reads the preferred number of worker lines from the context.
func Lines(ctx context.Context, defaultLines int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok && options.maxLines > 0 {
		return options.maxLines
	}
	return defaultLines
}
