package inference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCollaborator scripts per-attempt outcomes for retry tests.
type fakeCollaborator struct {
	calls   int
	results []fakeResult
	delay   time.Duration
}

type fakeResult struct {
	skills []string
	err    error
}

func (f *fakeCollaborator) SuggestSkills(ctx context.Context, text string) ([]string, error) {
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	idx := f.calls
	f.calls++
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	return f.results[idx].skills, f.results[idx].err
}

func (f *fakeCollaborator) Close() error { return nil }

func TestSuggestWithRetry_FirstAttemptSucceeds(t *testing.T) {
	fake := &fakeCollaborator{results: []fakeResult{
		{skills: []string{"Go", "Kubernetes"}},
	}}

	skills, err := SuggestWithRetry(context.Background(), fake, "job text", time.Millisecond, time.Second)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes"}, skills)
	assert.Equal(t, 1, fake.calls)
}

func TestSuggestWithRetry_RecoversOnSecondAttempt(t *testing.T) {
	fake := &fakeCollaborator{results: []fakeResult{
		{err: errors.New("transient upstream failure")},
		{skills: []string{"Python"}},
	}}

	skills, err := SuggestWithRetry(context.Background(), fake, "job text", time.Millisecond, time.Second)

	require.NoError(t, err)
	assert.Equal(t, []string{"Python"}, skills)
	assert.Equal(t, 2, fake.calls)
}

func TestSuggestWithRetry_ExhaustedAttempts(t *testing.T) {
	cause := errors.New("upstream down")
	fake := &fakeCollaborator{results: []fakeResult{{err: cause}}}

	_, err := SuggestWithRetry(context.Background(), fake, "job text", time.Millisecond, time.Second)

	var collabErr *CollaboratorError
	require.ErrorAs(t, err, &collabErr)
	assert.Equal(t, MaxAttempts, collabErr.Attempts)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, MaxAttempts, fake.calls)
}

func TestSuggestWithRetry_PerAttemptTimeout(t *testing.T) {
	fake := &fakeCollaborator{
		delay:   50 * time.Millisecond,
		results: []fakeResult{{skills: []string{"Go"}}},
	}

	_, err := SuggestWithRetry(context.Background(), fake, "job text", time.Millisecond, 5*time.Millisecond)

	var collabErr *CollaboratorError
	require.ErrorAs(t, err, &collabErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSuggestWithRetry_CallerCancellationStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := &fakeCollaborator{results: []fakeResult{{err: errors.New("boom")}}}

	_, err := SuggestWithRetry(ctx, fake, "job text", time.Hour, time.Second)

	var collabErr *CollaboratorError
	require.ErrorAs(t, err, &collabErr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, fake.calls)
}
