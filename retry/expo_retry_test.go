package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Expo_Do_count(t *testing.T) {
	err := fmt.Errorf("err")
	count := 0

	r := makeExpoRetry()
	err2 := r.Do(context.Background(), 2, "testFnName", func(attempt int) (error, ExitStrategy) {
		assert.Equal(t, count, attempt)
		count++
		return err, Continue
	})

	assert.True(t, errors.Is(err, err2))
	assert.Equal(t, 2, count)
}

func Test_Expo_Do_returns_last_error(t *testing.T) {
	err1 := fmt.Errorf("err1")
	err2 := fmt.Errorf("err2")
	count := 0

	r := makeExpoRetry()
	err3 := r.Do(context.Background(), 2, "testFnName", func(attempt int) (error, ExitStrategy) {
		assert.Equal(t, count, attempt)
		count++
		if count == 1 {
			return err1, Continue
		}
		return err2, Continue
	})

	assert.True(t, errors.Is(err2, err3))
	assert.Equal(t, 2, count)
}

func Test_Expo_Do_early_exit(t *testing.T) {
	err1 := fmt.Errorf("err1")
	err2 := fmt.Errorf("err2")
	count := 0

	r := makeExpoRetry()
	err3 := r.Do(context.Background(), 10, "testFnName", func(attempt int) (error, ExitStrategy) {
		assert.Equal(t, count, attempt)
		count++
		if count == 2 {
			return err1, StopNow
		}
		return err2, Continue
	})

	assert.True(t, errors.Is(err1, err3))
	assert.Equal(t, 2, count)
}

func Test_Expo_Do_0(t *testing.T) {
	count := 0

	r := makeExpoRetry()
	err := r.Do(context.Background(), 0, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		assert.Fail(t, "Should never run")
		return nil, Continue
	})

	assert.Error(t, err)
	assert.Equal(t, 0, count)
}

func Test_Expo_Do_backoff_doubles(t *testing.T) {
	err := fmt.Errorf("err")
	var waits []time.Duration
	last := time.Now()

	r := NewExponentialRetry(
		WithInitialDuration(10 * time.Millisecond),
	).(*expoRetry)

	_ = r.Do(context.Background(), 3, "testFnName", func(attempt int) (error, ExitStrategy) {
		now := time.Now()
		waits = append(waits, now.Sub(last))
		last = now
		return err, Continue
	})

	// waits[0] is the time before the first attempt; waits[1] and
	// waits[2] are the backoff sleeps: 10ms then 20ms.
	assert.Equal(t, 3, len(waits))
	assert.GreaterOrEqual(t, waits[1], 10*time.Millisecond)
	assert.GreaterOrEqual(t, waits[2], 20*time.Millisecond)
	assert.GreaterOrEqual(t, waits[2], waits[1])
}

func Test_Expo_Do_no_sleep_after_last_attempt(t *testing.T) {
	err := fmt.Errorf("err")
	count := 0

	r := NewExponentialRetry(
		WithInitialDuration(time.Hour),
	).(*expoRetry)

	start := time.Now()
	err2 := r.Do(context.Background(), 1, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		return err, Continue
	})

	assert.True(t, errors.Is(err, err2))
	assert.Equal(t, 1, count)
	assert.Less(t, time.Since(start), time.Second)
}

func Test_Expo_Do_ctx_cancel_during_backoff(t *testing.T) {
	err := fmt.Errorf("err")
	count := 0

	ctx, cancel := context.WithCancel(context.Background())

	r := NewExponentialRetry(
		WithInitialDuration(time.Hour),
	).(*expoRetry)

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err2 := r.Do(ctx, 5, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		return err, Continue
	})

	assert.True(t, errors.Is(err2, context.Canceled))
	assert.Equal(t, 1, count)
}

func makeExpoRetry() *expoRetry {
	return NewExponentialRetry(
		WithInitialDuration(0 * time.Millisecond),
	).(*expoRetry)
}
