package menus

import (
	"bytes"
	"context"
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/cli/prompt/prompttest"
	"github.com/m04kA/SMC-SalonService/internal/cli/render"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/users"
	"github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-SalonService/internal/usecase/checkout_appointment"
)

var (
	ana  = &domain.User{ID: 1, Name: "Ana", Surname: "Perez", Email: "ana@salon.com", Role: domain.RoleClient, Active: true}
	rosa = &domain.User{ID: 2, Name: "Rosa", Surname: "Lopez", Email: "rosa@salon.com", Role: domain.RoleReceptionist, Active: true}
	root = &domain.User{ID: 3, Name: "Root", Surname: "Admin", Email: "admin@salon.com", Role: domain.RoleAdmin, Active: true}
)

type fakeUsers struct {
	byEmail   map[string]*domain.User
	created   []*users.CreateRequest
	passwords map[int64]string
}

func newFakeUsers(list ...*domain.User) *fakeUsers {
	f := &fakeUsers{byEmail: make(map[string]*domain.User), passwords: make(map[int64]string)}
	for _, u := range list {
		copied := *u
		f.byEmail[u.Email] = &copied
	}
	return f
}

func (f *fakeUsers) Authenticate(_ context.Context, email, password string) (*domain.User, error) {
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok || password != "Secreto1" {
		return nil, users.ErrInvalidCredentials
	}
	return u, nil
}

func (f *fakeUsers) Create(_ context.Context, req *users.CreateRequest) (*domain.User, error) {
	if _, ok := f.byEmail[strings.ToLower(req.Email)]; ok {
		return nil, users.ErrDuplicateEmail
	}
	f.created = append(f.created, req)
	u := &domain.User{ID: int64(100 + len(f.created)), Name: req.Name, Surname: req.Surname, Email: req.Email, Role: req.Role, Active: true}
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsers) Update(_ context.Context, id int64, req *users.UpdateRequest) (*domain.User, error) {
	u, err := f.Get(context.Background(), id)
	if err != nil {
		return nil, err
	}
	u.Name, u.Surname, u.Email, u.Role = req.Name, req.Surname, req.Email, req.Role
	return u, nil
}

func (f *fakeUsers) Deactivate(ctx context.Context, id int64) error {
	u, err := f.Get(ctx, id)
	if err != nil {
		return err
	}
	u.Active = false
	return nil
}

func (f *fakeUsers) ChangePassword(_ context.Context, id int64, password, repeat string) error {
	if password != repeat {
		return users.ErrPasswordMismatch
	}
	f.passwords[id] = password
	return nil
}

func (f *fakeUsers) Get(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, users.ErrUserNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) ListStaff(context.Context, bool) ([]*domain.User, error) {
	return []*domain.User{rosa, root}, nil
}

func (f *fakeUsers) ListClients(context.Context, bool) ([]*domain.User, error) {
	return []*domain.User{ana}, nil
}

func (f *fakeUsers) SearchClients(_ context.Context, fragment string) ([]*domain.User, error) {
	return []*domain.User{ana}, nil
}

type fakeCatalog struct {
	services []*domain.Service
	created  []*catalog.CreateRequest
	updated  []*catalog.UpdateRequest
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{services: []*domain.Service{
		{ID: 1, Name: "Corte", Price: decimal.NewFromInt(800), DurationMinutes: 30, Active: true},
		{ID: 2, Name: "Lavado", Price: decimal.NewFromInt(500), DurationMinutes: 15, Active: true},
	}}
}

func (f *fakeCatalog) Create(_ context.Context, req *catalog.CreateRequest) (*domain.Service, error) {
	f.created = append(f.created, req)
	return &domain.Service{ID: 10, Name: req.Name}, nil
}

func (f *fakeCatalog) Update(ctx context.Context, id int64, req *catalog.UpdateRequest) (*domain.Service, error) {
	svc, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f.updated = append(f.updated, req)
	return svc, nil
}

func (f *fakeCatalog) Deactivate(ctx context.Context, id int64) error {
	svc, err := f.Get(ctx, id)
	if err != nil {
		return err
	}
	svc.Active = false
	return nil
}

func (f *fakeCatalog) Get(_ context.Context, id int64) (*domain.Service, error) {
	for _, svc := range f.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return nil, catalog.ErrServiceNotFound
}

func (f *fakeCatalog) List(context.Context, bool) ([]*domain.Service, error) {
	return f.services, nil
}

type fakeAppointments struct {
	views     map[int64]*domain.AppointmentView
	cancelled []int64
	confirmed []int64
	deleted   []int64
	filters   []domain.AppointmentFilter
}

func newFakeAppointments(views ...*domain.AppointmentView) *fakeAppointments {
	f := &fakeAppointments{views: make(map[int64]*domain.AppointmentView)}
	for _, v := range views {
		f.views[v.ID] = v
	}
	return f
}

func (f *fakeAppointments) Get(_ context.Context, id int64) (*domain.AppointmentView, error) {
	v, ok := f.views[id]
	if !ok {
		return nil, appointments.ErrAppointmentNotFound
	}
	return v, nil
}

func (f *fakeAppointments) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentView, error) {
	f.filters = append(f.filters, filter)
	out := make([]*domain.AppointmentView, 0)
	for _, v := range f.views {
		if filter.Status != nil && v.Status != *filter.Status {
			continue
		}
		if filter.ClientID != nil && v.ClientID != *filter.ClientID {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeAppointments) ListPendingForClient(ctx context.Context, clientID int64) ([]*domain.AppointmentView, error) {
	status := domain.StatusPending
	return f.List(ctx, domain.AppointmentFilter{Status: &status, ClientID: &clientID})
}

func (f *fakeAppointments) ListForClient(ctx context.Context, clientID int64) ([]*domain.AppointmentView, error) {
	return f.List(ctx, domain.AppointmentFilter{ClientID: &clientID})
}

func (f *fakeAppointments) LineItems(context.Context, int64) ([]domain.LineItem, error) {
	return []domain.LineItem{{ServiceName: "Corte", ChargedPrice: decimal.NewFromInt(800)}}, nil
}

func (f *fakeAppointments) transition(id int64, to domain.AppointmentStatus) (*domain.Appointment, error) {
	v, ok := f.views[id]
	if !ok {
		return nil, appointments.ErrAppointmentNotFound
	}
	if err := v.TransitionTo(to); err != nil {
		return nil, err
	}
	a := v.Appointment
	return &a, nil
}

func (f *fakeAppointments) Confirm(_ context.Context, id int64) (*domain.Appointment, error) {
	f.confirmed = append(f.confirmed, id)
	return f.transition(id, domain.StatusConfirmed)
}

func (f *fakeAppointments) Cancel(_ context.Context, id int64) (*domain.Appointment, error) {
	f.cancelled = append(f.cancelled, id)
	return f.transition(id, domain.StatusCancelled)
}

func (f *fakeAppointments) CancelByClient(_ context.Context, clientID, id int64) (*domain.Appointment, error) {
	if v, ok := f.views[id]; ok && v.ClientID != clientID {
		return nil, appointments.ErrAccessDenied
	}
	f.cancelled = append(f.cancelled, id)
	return f.transition(id, domain.StatusCancelled)
}

func (f *fakeAppointments) Delete(_ context.Context, id int64) error {
	if _, ok := f.views[id]; !ok {
		return appointments.ErrAppointmentNotFound
	}
	delete(f.views, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAppointments) Summary(context.Context, domain.AppointmentFilter) ([]domain.StatusSummary, error) {
	return []domain.StatusSummary{{Status: domain.StatusPending, Count: 1, Amount: decimal.NewFromInt(800)}}, nil
}

type fakeBooking struct {
	requests []*book_appointment.Request
	err      error
}

func (f *fakeBooking) CheckAvailability(context.Context, time.Time) (bool, error) {
	return f.err == nil, nil
}

func (f *fakeBooking) Execute(_ context.Context, req *book_appointment.Request) (*book_appointment.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, req)
	return &book_appointment.Response{
		ID:          55,
		ClientID:    req.ClientID,
		ScheduledAt: req.ScheduledAt,
		Status:      domain.StatusPending,
		Total:       decimal.NewFromInt(1300),
		Items: []domain.LineItem{
			{ServiceName: "Corte", ChargedPrice: decimal.NewFromInt(800)},
			{ServiceName: "Lavado", ChargedPrice: decimal.NewFromInt(500)},
		},
	}, nil
}

var (
	tomorrow = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
)

type fakeSlots struct{}

func (fakeSlots) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for _, d := range []time.Time{tomorrow, saturday} {
			if !yield(d) {
				return
			}
		}
	}
}

func (fakeSlots) Hours(_ context.Context, date time.Time) ([]time.Time, error) {
	if date.Equal(saturday) {
		return nil, nil
	}
	return []time.Time{date.Add(9 * time.Hour), date.Add(10 * time.Hour)}, nil
}

type fakeCheckout struct {
	executed []int64
	err      error
}

func (f *fakeCheckout) Execute(_ context.Context, id int64) (*checkout_appointment.Response, error) {
	f.executed = append(f.executed, id)
	if f.err != nil {
		return &checkout_appointment.Response{}, f.err
	}
	return &checkout_appointment.Response{
		Appointment: &domain.AppointmentView{Appointment: domain.Appointment{ID: id, Total: decimal.NewFromInt(800)}},
		ReceiptPath: "recibos/Ticket_7_Perez.pdf",
	}, nil
}

func (f *fakeCheckout) Reprint(_ context.Context, id int64) (*checkout_appointment.Response, error) {
	return &checkout_appointment.Response{ReceiptPath: "recibos/Ticket_7_Perez.pdf"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type harness struct {
	app          *App
	out          *bytes.Buffer
	prompt       *prompttest.Scripted
	users        *fakeUsers
	catalog      *fakeCatalog
	appointments *fakeAppointments
	booking      *fakeBooking
	checkout     *fakeCheckout
}

func newHarness(script *prompttest.Scripted, views ...*domain.AppointmentView) *harness {
	h := &harness{
		out:          &bytes.Buffer{},
		prompt:       script,
		users:        newFakeUsers(ana, rosa, root),
		catalog:      newFakeCatalog(),
		appointments: newFakeAppointments(views...),
		booking:      &fakeBooking{},
		checkout:     &fakeCheckout{},
	}

	h.app = NewApp(Deps{
		Users:        h.users,
		Catalog:      h.catalog,
		Appointments: h.appointments,
		Booking:      h.booking,
		Slots:        fakeSlots{},
		Checkout:     h.checkout,
		Prompt:       script,
		Console:      render.NewConsole(h.out, render.NewFormatter(time.UTC, "es", "$"), true),
		Logger:       nopLogger{},
		Location:     time.UTC,
		Now:          func() time.Time { return time.Date(2026, 10, 15, 11, 0, 0, 0, time.UTC) },
	})

	return h
}

func appointmentView(id int64, client *domain.User, status domain.AppointmentStatus) *domain.AppointmentView {
	return &domain.AppointmentView{
		Appointment: domain.Appointment{
			ID:          id,
			ClientID:    client.ID,
			ScheduledAt: tomorrow.Add(9 * time.Hour),
			Status:      status,
			Total:       decimal.NewFromInt(800),
		},
		ClientName:    client.Name,
		ClientSurname: client.Surname,
		ClientEmail:   client.Email,
		Services:      "Corte",
	}
}
