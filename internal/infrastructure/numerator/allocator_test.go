package numerator

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"juridicol/internal/core/apperror"
	corenum "juridicol/internal/core/numerator"
	"juridicol/internal/infrastructure/storage/postgres"
)

// fakeRunner executes callbacks directly; statement atomicity is provided by
// the store mock itself.
type fakeRunner struct {
	q postgres.Querier
}

func (r *fakeRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *fakeRunner) RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *fakeRunner) GetQuerier(context.Context) postgres.Querier {
	return r.q
}

type fakeRow struct {
	val int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = r.val
		}
	}
	return nil
}

// counterStore simulates the radicado_counters table with per-statement
// atomicity. Optional knobs inject the failure modes of the two-phase
// protocol.
type counterStore struct {
	mu       sync.Mutex
	counters map[corenum.CounterKey]int64

	updates int
	inserts int

	// missUpdates makes the first N updates report a missing row even when
	// the counter exists (simulates the race window before a competing
	// insert becomes visible).
	missUpdates int

	// conflictOnInsert makes inserts fail with a unique violation. When
	// seedOnConflict is set, the conflicting key is materialized as if the
	// competing insert had committed.
	conflictOnInsert bool
	seedOnConflict   bool

	updateErr error
	insertErr error
}

func newCounterStore() *counterStore {
	return &counterStore{counters: make(map[corenum.CounterKey]int64)}
}

func (s *counterStore) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !strings.Contains(sql, "UPDATE radicado_counters") {
		return fakeRow{err: errors.New("unexpected query: " + sql)}
	}
	s.updates++

	if s.updateErr != nil {
		return fakeRow{err: s.updateErr}
	}

	key := corenum.CounterKey{Area: args[0].(string), Period: args[1].(string)}
	if s.missUpdates > 0 {
		s.missUpdates--
		return fakeRow{err: pgx.ErrNoRows}
	}
	if _, ok := s.counters[key]; !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}

	s.counters[key]++
	return fakeRow{val: s.counters[key]}
}

func (s *counterStore) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !strings.Contains(sql, "INSERT INTO radicado_counters") {
		return pgconn.CommandTag{}, errors.New("unexpected exec: " + sql)
	}
	s.inserts++

	if s.insertErr != nil {
		return pgconn.CommandTag{}, s.insertErr
	}

	key := corenum.CounterKey{Area: args[0].(string), Period: args[1].(string)}
	_, exists := s.counters[key]
	if exists || s.conflictOnInsert {
		if s.seedOnConflict && !exists {
			s.counters[key] = 1
		}
		return pgconn.CommandTag{}, &pgconn.PgError{Code: pgUniqueViolation}
	}

	s.counters[key] = 1
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (s *counterStore) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

var testKey = corenum.CounterKey{Area: "PE", Period: "2025-1"}

func TestAllocateNext_ExistingKey(t *testing.T) {
	store := newCounterStore()
	store.counters[testKey] = 41
	alloc := New(&fakeRunner{q: store})

	v, err := alloc.AllocateNext(context.Background(), testKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
	if store.inserts != 0 {
		t.Errorf("expected no insert for existing key, got %d", store.inserts)
	}
}

func TestAllocateNext_FirstAllocation(t *testing.T) {
	store := newCounterStore()
	alloc := New(&fakeRunner{q: store})

	v, err := alloc.AllocateNext(context.Background(), testKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1 {
		t.Errorf("expected 1, got %d", v)
	}
	if store.updates != 1 || store.inserts != 1 {
		t.Errorf("expected one update and one insert, got %d/%d", store.updates, store.inserts)
	}
}

func TestAllocateNext_CreationRaceResolvesOnRetry(t *testing.T) {
	store := newCounterStore()
	store.conflictOnInsert = true
	store.seedOnConflict = true
	alloc := New(&fakeRunner{q: store})

	v, err := alloc.AllocateNext(context.Background(), testKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The competing insert committed value 1; the retried update advances it.
	if v != 2 {
		t.Errorf("expected 2, got %d", v)
	}
	if store.updates != 2 {
		t.Errorf("expected exactly one retried update, got %d updates", store.updates)
	}
}

func TestAllocateNext_RetryExhaustionIsStorageError(t *testing.T) {
	store := newCounterStore()
	store.conflictOnInsert = true // conflict without a visible row
	alloc := New(&fakeRunner{q: store})

	_, err := alloc.AllocateNext(context.Background(), testKey)
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperror.IsStorage(err) {
		t.Errorf("expected storage error, got %v", err)
	}
	if store.updates != 2 {
		t.Errorf("expected exactly one retry, got %d updates", store.updates)
	}
}

func TestAllocateNext_UnexpectedInsertErrorIsFatal(t *testing.T) {
	store := newCounterStore()
	store.insertErr = errors.New("connection reset")
	alloc := New(&fakeRunner{q: store})

	_, err := alloc.AllocateNext(context.Background(), testKey)
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperror.IsStorage(err) {
		t.Errorf("expected storage error, got %v", err)
	}

	// No hidden retry: one failed insert means one preceding update, no more.
	if store.updates != 1 {
		t.Errorf("expected no retry after unexpected error, got %d updates", store.updates)
	}
}

func TestAllocateNext_UnexpectedUpdateErrorIsFatal(t *testing.T) {
	store := newCounterStore()
	store.updateErr = errors.New("statement timeout")
	alloc := New(&fakeRunner{q: store})

	_, err := alloc.AllocateNext(context.Background(), testKey)
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperror.IsStorage(err) {
		t.Errorf("expected storage error, got %v", err)
	}
	if store.inserts != 0 {
		t.Errorf("expected no insert attempt, got %d", store.inserts)
	}
}

func TestAllocateNext_ConcurrentCallersGetDenseSequence(t *testing.T) {
	store := newCounterStore()
	alloc := New(&fakeRunner{q: store})

	const callers = 10
	results := make(chan int64, callers)
	errs := make(chan error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := alloc.AllocateNext(context.Background(), testKey)
			if err != nil {
				errs <- err
				return
			}
			results <- v
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}

	var values []int64
	for v := range results {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	if len(values) != callers {
		t.Fatalf("expected %d values, got %d", callers, len(values))
	}
	for i, v := range values {
		if v != int64(i+1) {
			t.Fatalf("expected dense sequence 1..%d, got %v", callers, values)
		}
	}
}

func TestAllocateNext_KeysAreIndependent(t *testing.T) {
	store := newCounterStore()
	alloc := New(&fakeRunner{q: store})
	ctx := context.Background()

	keyA := corenum.CounterKey{Area: "PE", Period: "2025-1"}
	keyB := corenum.CounterKey{Area: "LA", Period: "2025-1"}
	keyC := corenum.CounterKey{Area: "PE", Period: "2025-2"}

	for i := int64(1); i <= 3; i++ {
		if v, _ := alloc.AllocateNext(ctx, keyA); v != i {
			t.Fatalf("key A: expected %d, got %d", i, v)
		}
	}
	if v, _ := alloc.AllocateNext(ctx, keyB); v != 1 {
		t.Errorf("key B: expected 1, got %d", v)
	}
	if v, _ := alloc.AllocateNext(ctx, keyC); v != 1 {
		t.Errorf("key C: expected 1, got %d", v)
	}
}

func TestNextRadicado_Format(t *testing.T) {
	store := newCounterStore()
	alloc := New(&fakeRunner{q: store})

	at := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	got, err := alloc.NextRadicado(context.Background(), corenum.DefaultConfig("PE"), at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "PE-001-2025-1" {
		t.Errorf("expected PE-001-2025-1, got %s", got)
	}

	// Second semester resets into its own counter.
	at = time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	got, err = alloc.NextRadicado(context.Background(), corenum.DefaultConfig("PE"), at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "PE-001-2025-2" {
		t.Errorf("expected PE-001-2025-2, got %s", got)
	}
}
