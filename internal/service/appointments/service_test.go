package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	items        map[int64][]domain.LineItem
	updateErr    error
	lockedIDs    []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[int64]*domain.Appointment),
		items:        make(map[int64][]domain.LineItem),
	}
}

func (f *fakeRepo) add(id, clientID int64, status domain.AppointmentStatus, prices ...string) {
	items := make([]domain.LineItem, 0, len(prices))
	for i, p := range prices {
		items = append(items, domain.LineItem{AppointmentID: id, ServiceID: int64(i + 1), ChargedPrice: decimal.RequireFromString(p)})
	}
	f.items[id] = items
	f.appointments[id] = &domain.Appointment{
		ID:          id,
		ClientID:    clientID,
		ScheduledAt: time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
		Status:      status,
		Total:       domain.SumLineItems(items),
	}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error) {
	f.lockedIDs = append(f.lockedIDs, id)
	return f.GetByID(ctx, id)
}

func (f *fakeRepo) GetView(ctx context.Context, id int64) (*domain.AppointmentView, error) {
	a, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.AppointmentView{Appointment: *a, ClientName: "Ana", ClientSurname: "Perez"}, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentView, error) {
	out := make([]*domain.AppointmentView, 0)
	for _, a := range f.appointments {
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.ClientID != nil && a.ClientID != *filter.ClientID {
			continue
		}
		out = append(out, &domain.AppointmentView{Appointment: *a})
	}
	return out, nil
}

func (f *fakeRepo) LineItems(_ context.Context, id int64) ([]domain.LineItem, error) {
	return f.items[id], nil
}

func (f *fakeRepo) SumLineItems(_ context.Context, id int64) (decimal.Decimal, error) {
	return domain.SumLineItems(f.items[id]), nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	a, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.appointments, id)
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) Summary(_ context.Context, _ domain.AppointmentFilter) ([]domain.StatusSummary, error) {
	byStatus := make(map[domain.AppointmentStatus]*domain.StatusSummary)
	for _, a := range f.appointments {
		s, ok := byStatus[a.Status]
		if !ok {
			s = &domain.StatusSummary{Status: a.Status}
			byStatus[a.Status] = s
		}
		s.Count++
		s.Amount = s.Amount.Add(a.Total)
	}
	out := make([]domain.StatusSummary, 0, len(byStatus))
	for _, st := range domain.AllStatuses {
		if s, ok := byStatus[st]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type transitionCounter map[string]int

func (c transitionCounter) ObserveTransition(status string) { c[status]++ }

func newService(repo *fakeRepo) (*Service, transitionCounter) {
	counter := transitionCounter{}
	return NewService(repo, inlineTx{}, counter, nopLogger{}), counter
}

func TestService_Lifecycle(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, 10, domain.StatusPending, "800.00", "500.00")
	svc, counter := newService(repo)
	ctx := context.Background()

	_, err := svc.Confirm(ctx, 1)
	require.NoError(t, err)

	a, err := svc.Complete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, a.Status)

	total, err := svc.ComputeTotal(ctx, 1)
	require.NoError(t, err)
	assert.True(t, total.Equal(repo.appointments[1].Total))
	assert.True(t, decimal.RequireFromString("1300").Equal(total))

	_, err = svc.Cancel(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StatusCompleted, repo.appointments[1].Status)

	assert.Equal(t, 1, counter[string(domain.StatusConfirmed)])
	assert.Equal(t, 1, counter[string(domain.StatusCompleted)])
	assert.Zero(t, counter[string(domain.StatusCancelled)])
	assert.Equal(t, []int64{1, 1, 1}, repo.lockedIDs)
}

func TestService_PendingCannotBeCompleted(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, 10, domain.StatusPending, "300")
	svc, _ := newService(repo)

	_, err := svc.Complete(context.Background(), 1)

	var te *domain.InvalidTransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, domain.StatusPending, te.From)
	assert.Equal(t, domain.StatusPending, repo.appointments[1].Status)
}

func TestService_TerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
		for _, to := range domain.AllStatuses {
			repo := newFakeRepo()
			repo.add(1, 10, terminal, "100")
			svc, _ := newService(repo)

			_, err := svc.Transition(context.Background(), 1, to)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s -> %s", terminal, to)
		}
	}
}

func TestService_CancelByClient(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, 10, domain.StatusPending, "100")
	repo.add(2, 10, domain.StatusConfirmed, "100")
	repo.add(3, 11, domain.StatusPending, "100")
	svc, _ := newService(repo)
	ctx := context.Background()

	_, err := svc.CancelByClient(ctx, 10, 3)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.CancelByClient(ctx, 10, 2)
	assert.ErrorIs(t, err, ErrCannotCancel)

	a, err := svc.CancelByClient(ctx, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, a.Status)

	_, err = svc.CancelByClient(ctx, 10, 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_TransitionUpdateFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, 10, domain.StatusPending, "100")
	repo.updateErr = errors.New("connection reset")
	svc, counter := newService(repo)

	_, err := svc.Confirm(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, counter)
}

func TestService_VerifyTotal(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, 10, domain.StatusConfirmed, "800.00", "500.00")
	svc, _ := newService(repo)

	check, err := svc.VerifyTotal(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, check.Consistent)

	repo.appointments[1].Total = decimal.RequireFromString("1000")
	check, err = svc.VerifyTotal(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, check.Consistent)
	assert.True(t, decimal.RequireFromString("1300").Equal(check.Computed))
}

func TestService_ListAndDelete(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, 10, domain.StatusPending, "100")
	repo.add(2, 10, domain.StatusConfirmed, "200")
	repo.add(3, 11, domain.StatusPending, "300")
	svc, _ := newService(repo)
	ctx := context.Background()

	pending, err := svc.ListPendingForClient(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(1), pending[0].ID)

	bad := domain.AppointmentStatus("archived")
	_, err = svc.List(ctx, domain.AppointmentFilter{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrAppointmentNotFound)

	_, err = svc.LineItems(ctx, 1)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	summary, err := svc.Summary(ctx, domain.AppointmentFilter{})
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, domain.StatusPending, summary[0].Status)
	assert.True(t, decimal.RequireFromString("300").Equal(summary[0].Amount))
}
