package menus

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/cli/prompt"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Deps зависимости терминального приложения
type Deps struct {
	Users        UserService
	Catalog      CatalogService
	Appointments AppointmentService
	Booking      BookingUseCase
	Slots        SlotsUseCase
	Checkout     CheckoutUseCase

	Prompt  prompt.Prompter
	Console Console
	Logger  Logger

	// SessionLogger возвращает логгер с идентификатором сессии; по умолчанию Logger
	SessionLogger func(sessionID string) Logger

	Location *time.Location
	Now      func() time.Time
}

// App терминальное приложение: вход, меню по роли, выход
type App struct {
	users        UserService
	catalog      CatalogService
	appointments AppointmentService
	booking      BookingUseCase
	slots        SlotsUseCase
	checkout     CheckoutUseCase

	prompt  prompt.Prompter
	console Console
	logger  Logger

	sessionLogger func(sessionID string) Logger
	location      *time.Location
	now           func() time.Time
}

// Session вошедший пользователь
type Session struct {
	ID   string
	User *domain.User
	log  Logger
}

// NewApp создает приложение
func NewApp(d Deps) *App {
	a := &App{
		users:         d.Users,
		catalog:       d.Catalog,
		appointments:  d.Appointments,
		booking:       d.Booking,
		slots:         d.Slots,
		checkout:      d.Checkout,
		prompt:        d.Prompt,
		console:       d.Console,
		logger:        d.Logger,
		sessionLogger: d.SessionLogger,
		location:      d.Location,
		now:           d.Now,
	}

	if a.sessionLogger == nil {
		a.sessionLogger = func(string) Logger { return a.logger }
	}
	if a.location == nil {
		a.location = time.Local
	}
	if a.now == nil {
		a.now = time.Now
	}

	return a
}

// Run главный цикл: вход, меню роли, снова вход, пока пользователь не выйдет.
// Возвращает ошибку только если терминал перестал отвечать.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Terminal app started")

	for {
		if ctx.Err() != nil {
			return nil
		}

		a.console.Title(titleWelcome)
		choice, err := a.prompt.Select(msgChooseOption, []string{optLogin, optExit}, 0)
		if errors.Is(err, prompt.ErrCancelled) || (err == nil && choice == 1) {
			a.console.Info(msgGoodbye)
			return nil
		}
		if err != nil {
			return err
		}

		user, err := a.login(ctx)
		if errors.Is(err, prompt.ErrCancelled) {
			a.console.Info(msgGoodbye)
			return nil
		}
		if errors.Is(err, prompt.ErrTerminal) {
			return err
		}
		if err != nil {
			a.console.Error(a.describe(err))
			continue
		}

		if err := a.serve(ctx, user); err != nil {
			return err
		}
	}
}

func (a *App) login(ctx context.Context) (*domain.User, error) {
	email, err := a.prompt.Input(msgEmail, "")
	if err != nil {
		return nil, err
	}

	password, err := a.prompt.Secret(msgPassword)
	if err != nil {
		return nil, err
	}

	user, err := a.users.Authenticate(ctx, email, password)
	if err != nil {
		a.logger.Warn("Login failed for email=%s: %v", email, err)
		return nil, err
	}

	return user, nil
}

// serve ведет одну сессию пользователя до выхода из меню
func (a *App) serve(ctx context.Context, user *domain.User) error {
	id := uuid.NewString()
	s := &Session{ID: id, User: user, log: a.sessionLogger(id)}

	menu, err := a.Route(user.Role)
	if err != nil {
		s.log.Warn("Session: user id=%d has role %q without menu", user.ID, user.Role)
		a.console.Error(msgUnknownRole)
		return nil
	}

	s.log.Info("Session started: user id=%d role=%s", user.ID, user.Role)
	a.console.Success(msgSignedIn, user.FullName(), a.console.Formatter().Role(user.Role))

	if err := menu(ctx, s); err != nil {
		s.log.Error("Session aborted: %v", err)
		return err
	}

	s.log.Info("Session closed: user id=%d", user.ID)
	a.console.Info(msgSignedOut)
	return nil
}

// action пункт меню
type action struct {
	label string
	run   func(ctx context.Context, s *Session) error
}

// loop показывает меню, пока пользователь не выберет exitLabel или не прервет ввод.
// Ошибки действий сообщаются пользователю, меню продолжает работу.
func (a *App) loop(ctx context.Context, s *Session, title, exitLabel string, actions []action) error {
	labels := make([]string, 0, len(actions)+1)
	for _, act := range actions {
		labels = append(labels, act.label)
	}
	labels = append(labels, exitLabel)

	for {
		if ctx.Err() != nil {
			return nil
		}

		a.console.Title(title)
		choice, err := a.prompt.Select(msgChooseOption, labels, 0)
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == len(actions) {
			return nil
		}

		act := actions[choice]
		s.log.Info("Menu: %s", act.label)
		if err := act.run(ctx, s); err != nil {
			if errors.Is(err, prompt.ErrTerminal) {
				return err
			}
			a.report(s, act.label, err)
		}
	}
}
