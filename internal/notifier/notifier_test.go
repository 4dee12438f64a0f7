package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
)

type stubNotifier struct {
	name   string
	err    error
	panics bool
	called int
}

func (s *stubNotifier) Name() string { return s.name }

func (s *stubNotifier) Notify(ctx context.Context, order *domain.Order) error {
	s.called++
	if s.panics {
		panic("boom")
	}
	return s.err
}

func TestDispatcher_AllChannelsRun(t *testing.T) {
	email := &stubNotifier{name: "email"}
	whatsapp := &stubNotifier{name: "whatsapp"}

	d := NewDispatcher(testLogger(), email, whatsapp)
	results := d.Dispatch(context.Background(), testOrder())

	require.Len(t, results, 2)
	assert.Equal(t, 1, email.called)
	assert.Equal(t, 1, whatsapp.called)
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
}

func TestDispatcher_FailureIsolatedFromOtherChannels(t *testing.T) {
	email := &stubNotifier{name: "email", err: errors.New("smtp verify failed")}
	whatsapp := &stubNotifier{name: "whatsapp"}

	d := NewDispatcher(testLogger(), email, whatsapp)
	results := d.Dispatch(context.Background(), testOrder())

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 1, whatsapp.called)
}

func TestDispatcher_SkipRecordedWithoutError(t *testing.T) {
	email := &stubNotifier{name: "email", err: ErrSkipped}
	whatsapp := &stubNotifier{name: "whatsapp"}

	d := NewDispatcher(testLogger(), email, whatsapp)
	results := d.Dispatch(context.Background(), testOrder())

	require.Len(t, results, 2)
	assert.True(t, results[0].Skipped)
	assert.NoError(t, results[0].Err)
	assert.False(t, results[1].Skipped)
	assert.Equal(t, 1, whatsapp.called)
}

func TestDispatcher_PanicCapturedAsError(t *testing.T) {
	bad := &stubNotifier{name: "email", panics: true}
	whatsapp := &stubNotifier{name: "whatsapp"}

	d := NewDispatcher(testLogger(), bad, whatsapp)

	var results []Result
	assert.NotPanics(t, func() {
		results = d.Dispatch(context.Background(), testOrder())
	})

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "panicked")
	assert.NoError(t, results[1].Err)
}

func TestDispatcher_NoChannels(t *testing.T) {
	d := NewDispatcher(testLogger())
	results := d.Dispatch(context.Background(), testOrder())
	assert.Empty(t, results)
}
