package stream

import "context"

type OptionKey string

const BufferOptionKey OptionKey = "stream_buffer_options"

type BufferOptions struct {
	Size int
}

// WithBufferSize sets the capacity of the output channels created by the
// stream operations that receive ctx. Zero means unbuffered.
func WithBufferSize(ctx context.Context, size int) context.Context {
	if size < 0 {
		size = 0
	}
	return context.WithValue(ctx, BufferOptionKey, BufferOptions{Size: size})
}

func BufferSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(BufferOptionKey).(BufferOptions)
	if ok {
		return options.Size
	}
	return defaultSize
}

func newOut[T any](ctx context.Context) chan T {
	return make(chan T, BufferSize(ctx, 0))
}
