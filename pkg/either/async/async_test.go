package async

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/future"
)

func later[T any](v T) *future.Future[T] {
	return future.Go(context.Background(), func(ctx context.Context) (T, error) {
		time.Sleep(2 * time.Millisecond)
		return v, nil
	})
}

func await[T any](t *testing.T, f *future.Future[T]) T {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := f.Await(ctx)
	require.NoError(t, err)
	return v
}

func TestMapAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	double := func(ctx context.Context, x int) *future.Future[int] { return later(x * 2) }

	out := await(t, MapAsync(ctx, either.Right[string](4), double))
	assert.Equal(t, either.Right[string](8), out)

	var invoked atomic.Int32
	touch := func(ctx context.Context, x int) *future.Future[int] {
		invoked.Add(1)
		return later(x)
	}
	f := MapAsync(ctx, either.Left[string, int]("e"), touch)
	assert.True(t, f.IsResolved(), "left must not suspend")
	assert.Equal(t, either.Left[string, int]("e"), await(t, f))
	assert.True(t, await(t, MapAsync(ctx, either.Bottom[string, int](), touch)).IsBottom())
	assert.Zero(t, invoked.Load())
}

func TestMapFutureShapes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := await(t, MapFuture(ctx, later(either.Right[string](2)), strconv.Itoa))
	assert.Equal(t, "2", out.RightValue())

	outAsync := await(t, MapFutureAsync(ctx, later(either.Right[string](3)),
		func(ctx context.Context, x int) *future.Future[string] { return later(strconv.Itoa(x)) }))
	assert.Equal(t, "3", outAsync.RightValue())

	called := false
	left := await(t, MapFuture(ctx, later(either.Left[string, int]("e")), func(x int) string {
		called = true
		return ""
	}))
	assert.Equal(t, "e", left.LeftValue())
	assert.False(t, called)
}

func TestMapPendingShapes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := either.Right[string](later(5))
	out := await(t, MapPending(ctx, e, func(x int) int { return x + 1 }))
	assert.Equal(t, 6, out.RightValue())

	outAsync := await(t, MapPendingAsync(ctx, e, func(ctx context.Context, x int) *future.Future[int] {
		return later(x * 10)
	}))
	assert.Equal(t, 50, outAsync.RightValue())

	called := false
	f := MapPending(ctx, either.Left[string, *future.Future[int]]("e"), func(x int) int {
		called = true
		return x
	})
	assert.True(t, f.IsResolved())
	assert.Equal(t, "e", await(t, f).LeftValue())
	assert.False(t, called)
}

func TestBindShapes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parse := func(s string) either.Either[error, int] {
		n, err := strconv.Atoi(s)
		return either.FromError(n, err)
	}
	parseAsync := func(ctx context.Context, s string) *future.Future[either.Either[error, int]] {
		return later(parse(s))
	}

	assert.Equal(t, 12, await(t, BindAsync(ctx, either.Right[error]("12"), parseAsync)).RightValue())
	assert.True(t, await(t, BindAsync(ctx, either.Right[error]("x"), parseAsync)).IsLeft())
	assert.Equal(t, 7, await(t, BindFuture(ctx, later(either.Right[error]("7")), parse)).RightValue())
	assert.Equal(t, 8, await(t, BindFutureAsync(ctx, later(either.Right[error]("8")), parseAsync)).RightValue())
	assert.Equal(t, 9, await(t, BindPending(ctx, either.Right[error](later("9")), parse)).RightValue())
	assert.Equal(t, 10, await(t, BindPendingAsync(ctx, either.Right[error](later("10")), parseAsync)).RightValue())

	boom := errors.New("boom")
	var invoked atomic.Int32
	spyAsync := func(ctx context.Context, s string) *future.Future[either.Either[error, int]] {
		invoked.Add(1)
		return parseAsync(ctx, s)
	}
	out := await(t, BindAsync(ctx, either.Left[error, string](boom), spyAsync))
	assert.ErrorIs(t, out.LeftValue(), boom)
	out = await(t, BindPendingAsync(ctx, either.Left[error, *future.Future[string]](boom), spyAsync))
	assert.ErrorIs(t, out.LeftValue(), boom)
	out = await(t, BindFutureAsync(ctx, later(either.Left[error, string](boom)), spyAsync))
	assert.ErrorIs(t, out.LeftValue(), boom)
	assert.Zero(t, invoked.Load())
}

func TestFailurePropagates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	failed := future.Failed[either.Either[string, int]](boom)
	_, err := MapFuture(ctx, failed, strconv.Itoa).Await(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = MapPending(ctx, either.Right[string](future.Failed[int](boom)), strconv.Itoa).Await(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = CountAsync(ctx, failed).Await(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestCancellationPropagates(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)
	stuck := future.Go(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	f := MapPending(ctx, either.Right[string](stuck), strconv.Itoa)
	cancel()

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolve_NullPayloadFailsAtAwait(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var nilPtr *int
	f := Resolve(ctx, either.Right[string](future.Completed(nilPtr)))
	<-f.Done()
	assert.Panics(t, func() { _, _ = f.Await(ctx) })
}

func TestMatchAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onLeft := func(l string) string { return "L:" + l }
	onRight := func(r int) string { return "R:" + strconv.Itoa(r) }

	assert.Equal(t, "R:3", await(t, MatchAsync(ctx, either.Right[string](later(3)), onLeft, onRight)))

	f := MatchAsync(ctx, either.Left[string, *future.Future[int]]("x"), onLeft, onRight)
	assert.True(t, f.IsResolved())
	assert.Equal(t, "L:x", await(t, f))

	assert.Equal(t, "R:4", await(t, MatchFuture(ctx, later(either.Right[string](4)), onLeft, onRight)))

	assert.PanicsWithValue(t, either.ErrBottom, func() {
		MatchAsync(ctx, either.Bottom[string, *future.Future[int]](), onLeft, onRight)
	})

	nullResult := MatchAsync(ctx, either.Right[string](later(1)),
		func(string) *int { return nil }, func(int) *int { return nil })
	<-nullResult.Done()
	assert.Panics(t, func() { _, _ = nullResult.Await(ctx) })
}

func TestAggregates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	right := later(either.Right[string](5))
	left := later(either.Left[string, int]("e"))

	assert.Equal(t, 1, await(t, CountAsync(ctx, right)))
	assert.Equal(t, 0, await(t, CountAsync(ctx, left)))
	assert.Equal(t, 5, await(t, SumAsync(ctx, right)))
	assert.Equal(t, 0, await(t, SumAsync(ctx, left)))
	assert.Equal(t, 15, await(t, FoldAsync(ctx, right, 10, func(s, x int) int { return s + x })))
	assert.Equal(t, 10, await(t, FoldAsync(ctx, left, 10, func(s, x int) int { return s + x })))

	var calls atomic.Int32
	pred := func(x int) bool {
		calls.Add(1)
		return x > 3
	}
	assert.True(t, await(t, ForAllAsync(ctx, left, pred)))
	assert.False(t, await(t, ExistsAsync(ctx, left, pred)))
	assert.Zero(t, calls.Load())

	assert.True(t, await(t, ForAllAsync(ctx, right, pred)))
	assert.True(t, await(t, ExistsAsync(ctx, right, pred)))
	assert.Equal(t, int32(2), calls.Load())

	var seen atomic.Int32
	await(t, IterAsync(ctx, right, func(x int) { seen.Store(int32(x)) }))
	assert.Equal(t, int32(5), seen.Load())
}

func TestPendingAggregates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	right := either.Right[string](later(5))
	left := either.Left[string, *future.Future[int]]("e")

	assert.Equal(t, 1, await(t, CountPending(ctx, right)))
	assert.Equal(t, 0, await(t, CountPending(ctx, left)))
	assert.Equal(t, 5, await(t, SumPending(ctx, right)))
	assert.Equal(t, 0, await(t, SumPending(ctx, left)))
	assert.Equal(t, 6, await(t, FoldPending(ctx, right, 1, func(s, x int) int { return s + x })))

	var calls atomic.Int32
	pred := func(x int) bool {
		calls.Add(1)
		return x > 10
	}
	assert.True(t, await(t, ForAllPending(ctx, left, pred)))
	assert.False(t, await(t, ExistsPending(ctx, left, pred)))
	assert.Zero(t, calls.Load())
	assert.False(t, await(t, ForAllPending(ctx, right, pred)))
	assert.False(t, await(t, ExistsPending(ctx, right, pred)))

	var seen atomic.Int32
	await(t, IterPending(ctx, left, func(x int) { seen.Store(int32(x)) }))
	assert.Zero(t, seen.Load())
	await(t, IterPending(ctx, right, func(x int) { seen.Store(int32(x)) }))
	assert.Equal(t, int32(5), seen.Load())
}
