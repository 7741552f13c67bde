package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/askyourcrush/askyourcrush-server/internal/config"
	"github.com/askyourcrush/askyourcrush-server/internal/id"
	"github.com/askyourcrush/askyourcrush-server/internal/logger"
	"github.com/askyourcrush/askyourcrush-server/internal/notify"
	"github.com/askyourcrush/askyourcrush-server/internal/store/sqlite"
)

const testPublicURL = "https://askyourcrush.test"

var fixedNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

// sentNotification is one call recorded by fakeDispatcher.
type sentNotification struct {
	Kind    notify.Kind
	To      string
	Payload notify.Payload
	CtxErr  error
}

// fakeDispatcher records notifications and optionally fails them.
type fakeDispatcher struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error

	// onSend runs before each call is recorded.
	onSend func()
}

func (d *fakeDispatcher) Send(ctx context.Context, kind notify.Kind, to string, payload notify.Payload) error {
	if d.onSend != nil {
		d.onSend()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, sentNotification{Kind: kind, To: to, Payload: payload, CtxErr: ctx.Err()})
	return d.err
}

func (d *fakeDispatcher) Sent() []sentNotification {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]sentNotification(nil), d.sent...)
}

// fixedSlugs hands out slugs in order, then falls back to a real generator.
type fixedSlugs struct {
	mu    sync.Mutex
	slugs []string
	next  *id.SlugGenerator
}

func (f *fixedSlugs) Generate() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.slugs) == 0 {
		return f.next.Generate()
	}
	s := f.slugs[0]
	f.slugs = f.slugs[1:]
	return s, nil
}

type testEnv struct {
	svc        *InviteService
	store      *sqlite.Store
	dispatcher *fakeDispatcher
}

func newTestEnv(t *testing.T, slugs ...string) *testEnv {
	t.Helper()

	st, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger.Discard().Logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	dispatcher := &fakeDispatcher{}
	source := &fixedSlugs{slugs: slugs, next: id.NewSlugGenerator(id.DefaultSlugLength)}
	links := config.InviteConfig{PublicURL: testPublicURL, SlugLength: id.DefaultSlugLength}

	svc := NewInviteService(st, dispatcher, source, links, logger.Discard().Logger)
	svc.now = func() time.Time { return fixedNow }

	return &testEnv{svc: svc, store: st, dispatcher: dispatcher}
}

// createInvite is a shortcut for tests that only need a stored invite.
func (e *testEnv) createInvite(t *testing.T, req CreateInviteRequest) string {
	t.Helper()
	if req.Message == "" {
		req.Message = "Will you be my valentine?"
	}
	result, err := e.svc.CreateInvite(context.Background(), req)
	require.NoError(t, err)
	return result.Invite.Slug
}

var errSMTPDown = errors.New("smtp down")
