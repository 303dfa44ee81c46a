package verification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

// memStore is an in-memory content store, verification log and quiz comment
// table with transactional rollback. txMu serializes transactions the way the
// content row lock does in PostgreSQL.
type memStore struct {
	txMu sync.Mutex

	mu         sync.Mutex
	items      map[string]domain.ContentItem
	logs       []domain.VerificationLogEntry
	comments   []domain.AuditComment
	seq        int64
	commentErr error
}

func newMemStore(ids ...string) *memStore {
	s := &memStore{items: make(map[string]domain.ContentItem)}
	for _, id := range ids {
		s.items[id] = domain.ContentItem{ID: id, CreatedAt: time.Now()}
	}
	return s
}

type memSnapshot struct {
	items    map[string]domain.ContentItem
	logs     int
	comments int
	seq      int64
}

func (s *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	snap := memSnapshot{items: make(map[string]domain.ContentItem, len(s.items)), logs: len(s.logs), comments: len(s.comments), seq: s.seq}
	for k, v := range s.items {
		snap.items[k] = v
	}
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.items = snap.items
		s.logs = s.logs[:snap.logs]
		s.comments = s.comments[:snap.comments]
		s.seq = snap.seq
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) GetByID(_ context.Context, id string) (domain.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return domain.ContentItem{}, fmt.Errorf("content_item %s: %w", id, domain.ErrNotFound)
	}
	return item, nil
}

func (s *memStore) GetForUpdate(ctx context.Context, id string) (domain.ContentItem, error) {
	return s.GetByID(ctx, id)
}

func (s *memStore) SetVerified(_ context.Context, id string, verified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return fmt.Errorf("content_item %s: %w", id, domain.ErrNotFound)
	}
	item.Verified = verified
	s.items[id] = item
	return nil
}

func (s *memStore) Append(_ context.Context, e domain.VerificationLogEntry) (domain.VerificationLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	e.Seq = s.seq
	s.logs = append(s.logs, e)
	return e, nil
}

func (s *memStore) History(_ context.Context, contentID string, limit, offset int) ([]domain.VerificationLogEntry, error) {
	all := s.entriesFor(contentID)
	out := make([]domain.VerificationLogEntry, 0)
	for i := offset; i < len(all) && len(out) < limit; i++ {
		out = append(out, all[i])
	}
	return out, nil
}

func (s *memStore) CountByContent(_ context.Context, contentID string) (int, error) {
	return len(s.entriesFor(contentID)), nil
}

func (s *memStore) Latest(_ context.Context, contentID string) (*domain.VerificationLogEntry, error) {
	all := s.entriesFor(contentID)
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

// entriesFor returns entries newest first.
func (s *memStore) entriesFor(contentID string) []domain.VerificationLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.VerificationLogEntry
	for _, e := range s.logs {
		if e.ContentID == contentID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq > out[j].Seq })
	return out
}

func (s *memStore) Create(_ context.Context, c domain.AuditComment) (domain.AuditComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.commentErr != nil {
		return domain.AuditComment{}, s.commentErr
	}
	s.comments = append(s.comments, c)
	return c, nil
}

func (s *memStore) commentsFor(parentID string) []domain.AuditComment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AuditComment
	for _, c := range s.comments {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out
}

type allowList map[string]bool

func (a allowList) CanReview(_ context.Context, actorID string) (bool, error) {
	return a[actorID], nil
}

type countingRecorder struct {
	mu          sync.Mutex
	transitions map[string]int
	retries     map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{transitions: map[string]int{}, retries: map[string]int{}}
}

func (r *countingRecorder) Transition(action, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions[action+"/"+outcome]++
}

func (r *countingRecorder) ConflictRetry(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retries[action]++
}

func (r *countingRecorder) transitionCount(action, outcome string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transitions[action+"/"+outcome]
}

func (r *countingRecorder) retryCount(action string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retries[action]
}

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastRetry() RetryConfig {
	return RetryConfig{MaxRetries: 3, InitialBackoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond}
}

// newMemService wires a Service over store with admin1 and rev1 as reviewers.
func newMemService(store *memStore, rec *countingRecorder) *Service {
	return NewService(
		discardLogger(),
		store, store, store,
		allowList{"admin1": true, "rev1": true},
		store,
		rec,
		clockwork.NewFakeClockAt(testNow),
		fastRetry(),
	)
}
