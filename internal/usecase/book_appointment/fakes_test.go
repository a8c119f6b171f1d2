package book_appointment

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
)

// fakeStore хранилище в памяти: транзакция копит изменения и применяет их при фиксации,
// LockSlot держит мьютекс слота до конца транзакции.
type fakeStore struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	items        []domain.LineItem
	services     map[int64]*domain.Service
	users        map[int64]*domain.User
	slotLocks    map[int64]*sync.Mutex
	nextID       int64
	failItems    bool
}

type txKey struct{}

type fakeTx struct {
	locked       []*sync.Mutex
	appointments []*domain.Appointment
	items        []domain.LineItem
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		services:  make(map[int64]*domain.Service),
		users:     make(map[int64]*domain.User),
		slotLocks: make(map[int64]*sync.Mutex),
	}
}

func (s *fakeStore) addService(id int64, name, price string, active bool) {
	s.services[id] = &domain.Service{
		ID:              id,
		Name:            name,
		Price:           decimal.RequireFromString(price),
		DurationMinutes: 30,
		Active:          active,
	}
}

func (s *fakeStore) addClient(id int64, active bool) {
	s.users[id] = &domain.User{ID: id, Name: "Cliente", Surname: "Prueba", Role: domain.RoleClient, Active: active}
}

func (s *fakeStore) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx := &fakeTx{}
	err := fn(context.WithValue(ctx, txKey{}, tx))

	if err == nil {
		s.mu.Lock()
		s.appointments = append(s.appointments, tx.appointments...)
		s.items = append(s.items, tx.items...)
		s.mu.Unlock()
	}

	for _, l := range tx.locked {
		l.Unlock()
	}
	return err
}

func txFrom(ctx context.Context) *fakeTx {
	tx, _ := ctx.Value(txKey{}).(*fakeTx)
	return tx
}

func (s *fakeStore) LockSlot(ctx context.Context, slot time.Time) error {
	tx := txFrom(ctx)
	if tx == nil {
		return errors.New("not in transaction")
	}

	s.mu.Lock()
	l, ok := s.slotLocks[domain.SlotKey(slot)]
	if !ok {
		l = &sync.Mutex{}
		s.slotLocks[domain.SlotKey(slot)] = l
	}
	s.mu.Unlock()

	l.Lock()
	tx.locked = append(tx.locked, l)
	return nil
}

func (s *fakeStore) CountPendingAtSlot(ctx context.Context, slot time.Time) (int, error) {
	s.mu.Lock()
	count := 0
	for _, a := range s.appointments {
		if a.ScheduledAt.Equal(slot) && a.Status == domain.StatusPending {
			count++
		}
	}
	s.mu.Unlock()

	// окно между проверкой и вставкой
	time.Sleep(time.Millisecond)
	return count, nil
}

func (s *fakeStore) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	s.nextID++
	a.ID = s.nextID
	s.mu.Unlock()

	a.CreatedAt = time.Now()
	stored := *a
	txFrom(ctx).appointments = append(txFrom(ctx).appointments, &stored)
	return a, nil
}

func (s *fakeStore) AddLineItems(ctx context.Context, appointmentID int64, items []domain.LineItem) error {
	if s.failItems {
		return errors.New("insert failed")
	}
	for _, item := range items {
		item.AppointmentID = appointmentID
		txFrom(ctx).items = append(txFrom(ctx).items, item)
	}
	return nil
}

func (s *fakeStore) GetByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		if svc, ok := s.services[id]; ok {
			copied := *svc
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeStore) itemsOf(id int64) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.LineItem, 0)
	for _, item := range s.items {
		if item.AppointmentID == id {
			out = append(out, item)
		}
	}
	return out
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (m *countingMetrics) ObserveBooking(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = make(map[string]int)
	}
	m.outcomes[outcome]++
}
