package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/deppfellow/employee-service/internal/errs"
	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/deppfellow/employee-service/internal/repository"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/deppfellow/employee-service/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory EmployeeStore.
type memoryStore struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]employee.Employee
	saves   int
	err     error
}

var _ repository.EmployeeStore = (*memoryStore)(nil)

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[int64]employee.Employee)}
}

func (m *memoryStore) Save(_ context.Context, e employee.Employee) (employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return employee.Employee{}, m.err
	}
	m.saves++
	if e.IsNew() {
		m.nextID++
		e.ID = m.nextID
	}
	m.records[e.ID] = e
	return e, nil
}

func (m *memoryStore) FindByID(_ context.Context, id int64) (employee.Employee, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.records[id]
	return e, ok, m.err
}

func (m *memoryStore) FindByEmail(_ context.Context, email string) (employee.Employee, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return employee.Employee{}, false, m.err
	}
	for _, e := range m.records {
		if e.Email == email {
			return e, true, nil
		}
	}
	return employee.Employee{}, false, nil
}

func (m *memoryStore) FindAll(_ context.Context) ([]employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []employee.Employee{}
	for _, e := range m.records {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, m.err
}

func (m *memoryStore) DeleteByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return m.err
}

func (m *memoryStore) FindByNames(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	all, err := m.FindAll(ctx)
	if err != nil {
		return employee.Employee{}, false, err
	}
	for _, e := range all {
		if e.FirstName == firstName && e.LastName == lastName {
			return e, true, nil
		}
	}
	return employee.Employee{}, false, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (r *recordingNotifier) EnqueueWelcomeEmail(_ context.Context, to, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, to)
	return r.err
}

func newTestService(store repository.EmployeeStore, notifier WelcomeNotifier) *EmployeeService {
	logger := zerolog.Nop()
	return NewEmployeeService(store, notifier, &logger)
}

func TestCreate_AssignsIDAndNotifies(t *testing.T) {
	store := newMemoryStore()
	notifier := &recordingNotifier{}
	svc := newTestService(store, notifier)

	saved, err := svc.Create(context.Background(), employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))
	require.NoError(t, err)

	assert.NotZero(t, saved.ID)
	assert.Equal(t, "Ramesh", saved.FirstName)
	assert.Equal(t, "Fadatare", saved.LastName)
	assert.Equal(t, "ramesh@gmail.com", saved.Email)
	assert.Equal(t, []string{"ramesh@gmail.com"}, notifier.sent)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, employee.New("Other", "Person", "ramesh@gmail.com"))
	require.Error(t, err)

	var dupErr *errs.DuplicateResourceError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Employee already exists with given email: ramesh@gmail.com", dupErr.Error())
	assert.Equal(t, 1, store.saves, "the duplicate must never reach Save")
}

func TestCreate_NotifierFailureDoesNotFailCreate(t *testing.T) {
	svc := newTestService(newMemoryStore(), &recordingNotifier{err: errors.New("redis down")})

	saved, err := svc.Create(context.Background(), employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
}

func TestCreate_StoreFailurePropagates(t *testing.T) {
	store := newMemoryStore()
	store.err = errors.New("boom")
	svc := newTestService(store, nil)

	_, err := svc.Create(context.Background(), employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))
	assert.ErrorIs(t, err, store.err)
}

func TestList(t *testing.T) {
	svc := newTestService(newMemoryStore(), nil)
	ctx := context.Background()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = svc.Create(ctx, employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, employee.New("John", "Cena", "cena@gmail.com"))
	require.NoError(t, err)

	all, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetByID(t *testing.T) {
	svc := newTestService(newMemoryStore(), nil)
	ctx := context.Background()

	saved, err := svc.Create(ctx, employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))
	require.NoError(t, err)

	got, found, err := svc.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, got)

	_, found, err = svc.GetByID(ctx, saved.ID+1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdate_KeepsIDAndSkipsEmailCheck(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, employee.New("John", "Cena", "cena@gmail.com"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, second, employee.Patch{FirstName: "Ram", LastName: "Jadhav", Email: "ramesh@gmail.com"})
	require.NoError(t, err, "update does not consult other records' emails")
	assert.Equal(t, second.ID, updated.ID)
	assert.Equal(t, "Ram", updated.FirstName)
	assert.Equal(t, "Jadhav", updated.LastName)
	assert.NotEqual(t, first.ID, updated.ID)
}

func TestDelete_Idempotent(t *testing.T) {
	svc := newTestService(newMemoryStore(), nil)
	ctx := context.Background()

	saved, err := svc.Create(ctx, employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, saved.ID))
	require.NoError(t, svc.Delete(ctx, saved.ID))

	_, found, err := svc.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLookups(t *testing.T) {
	svc := newTestService(newMemoryStore(), nil)
	ctx := context.Background()

	saved, err := svc.Create(ctx, employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))
	require.NoError(t, err)

	got, found, err := svc.FindByEmail(ctx, "ramesh@gmail.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, got)

	got, found, err = svc.FindByNames(ctx, "Ramesh", "Fadatare")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, got)
}

func TestCreate_ConcurrentSameEmailOneWins(t *testing.T) {
	assertConcurrentCreateOneWins(t, testutil.NewSQLiteServer(t))
}

func TestCreate_ConcurrentSameEmailOneWins_Postgres(t *testing.T) {
	assertConcurrentCreateOneWins(t, testutil.NewPostgresServer(t))
}

// assertConcurrentCreateOneWins races creates of one email against the store
// behind s; exactly one succeeds and the rest are duplicate errors.
func assertConcurrentCreateOneWins(t *testing.T, s *server.Server) {
	t.Helper()

	svc := newTestService(repository.NewRepositories(s).Employee, nil)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dupes     int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))

			mu.Lock()
			defer mu.Unlock()
			var dupErr *errs.DuplicateResourceError
			switch {
			case err == nil:
				successes++
			case errors.As(err, &dupErr):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, dupes)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEmployeeLifecycle_SQLite(t *testing.T) {
	assertEmployeeLifecycle(t, testutil.NewSQLiteServer(t))
}

func TestEmployeeLifecycle_Postgres(t *testing.T) {
	assertEmployeeLifecycle(t, testutil.NewPostgresServer(t))
}

func assertEmployeeLifecycle(t *testing.T, s *server.Server) {
	t.Helper()

	svc := newTestService(repository.NewRepositories(s).Employee, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.New("Ramesh", "Fadatare", "ramesh@gmail.com"))
	require.NoError(t, err)

	existing, found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)

	updated, err := svc.Update(ctx, existing, employee.Patch{FirstName: "Ram", LastName: "Jadhav", Email: "ram@gmail.com"})
	require.NoError(t, err)
	assert.Equal(t, employee.Employee{ID: created.ID, FirstName: "Ram", LastName: "Jadhav", Email: "ram@gmail.com"}, updated)

	require.NoError(t, svc.Delete(ctx, created.ID))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
