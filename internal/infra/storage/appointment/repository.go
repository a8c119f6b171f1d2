package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий турно (таблицы turno и turno_servicio).
// fecha_hora хранится как TIMESTAMP без зоны: пишем и читаем настенное время в loc.
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает репозиторий; nil loc означает time.Local
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{db: db, loc: loc}
}

var viewColumns = []string{
	"t.id",
	"t.cliente_id",
	"t.fecha_hora",
	"t.estado",
	"t.total",
	"t.created_at",
	"t.updated_at",
	"u.nombre",
	"u.apellido",
	"u.email",
	"COALESCE(string_agg(s.nombre, ', ' ORDER BY s.nombre), '')",
}

// LockSlot берет транзакционную advisory-блокировку на слот.
// Все бронирования одного слота выстраиваются в очередь до конца транзакции.
func (r *Repository) LockSlot(ctx context.Context, slot time.Time) error {
	tx, ok := dbmetrics.TxFromContext(ctx)
	if !ok {
		return ErrNotInTransaction
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", domain.SlotKey(slot)); err != nil {
		return fmt.Errorf("%w: LockSlot - execute: %v", ErrExecQuery, err)
	}
	return nil
}

// CountPendingAtSlot считает турно в статусе pendiente ровно на указанный слот
func (r *Repository) CountPendingAtSlot(ctx context.Context, slot time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(id)").
		From("turno").
		Where(squirrel.Eq{"fecha_hora": r.toStorage(slot)}).
		Where(squirrel.Eq{"estado": domain.StatusPending}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountPendingAtSlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountPendingAtSlot - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// ListSaturatedSlots возвращает слоты в [from, to), где pendiente-турно не меньше capacity
func (r *Repository) ListSaturatedSlots(ctx context.Context, from, to time.Time, capacity int) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("fecha_hora").
		From("turno").
		Where(squirrel.Eq{"estado": domain.StatusPending}).
		Where(squirrel.GtOrEq{"fecha_hora": r.toStorage(from)}).
		Where(squirrel.Lt{"fecha_hora": r.toStorage(to)}).
		GroupBy("fecha_hora").
		Having("COUNT(id) >= ?", capacity).
		OrderBy("fecha_hora ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSaturatedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSaturatedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]time.Time, 0)
	for rows.Next() {
		var slot time.Time
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: ListSaturatedSlots - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, r.fromStorage(slot))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSaturatedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Create сохраняет турно и заполняет ID и служебные даты
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turno").
		Columns("cliente_id", "fecha_hora", "estado", "total").
		Values(a.ClientID, r.toStorage(a.ScheduledAt), a.Status, a.Total).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// AddLineItems сохраняет строки турно одной вставкой
func (r *Repository) AddLineItems(ctx context.Context, appointmentID int64, items []domain.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("turno_servicio").
		Columns("turno_id", "servicio_id", "precio_cobrado")
	for _, item := range items {
		builder = builder.Values(appointmentID, item.ServiceID, item.ChargedPrice)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddLineItems - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddLineItems - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает турно по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate получает турно по ID с блокировкой строки (внутри транзакции)
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.get(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) get(ctx context.Context, id int64, forUpdate bool) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "cliente_id", "fecha_hora", "estado", "total", "created_at", "updated_at").
		From("turno").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Appointment
	var scheduledAt time.Time
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.ClientID,
		&scheduledAt,
		&a.Status,
		&a.Total,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	a.ScheduledAt = r.fromStorage(scheduledAt)
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// GetView получает турно вместе с клиентом и перечнем услуг
func (r *Repository) GetView(ctx context.Context, id int64) (*domain.AppointmentView, error) {
	views, err := r.list(ctx, r.viewQuery().Where(squirrel.Eq{"t.id": id}))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrAppointmentNotFound
	}
	return views[0], nil
}

// List получает турно по фильтру, отсортированные по дате и времени
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentView, error) {
	return r.list(ctx, r.applyFilter(r.viewQuery(), filter, "t."))
}

func (r *Repository) viewQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(viewColumns...).
		From("turno t").
		Join("usuario u ON u.id = t.cliente_id").
		LeftJoin("turno_servicio ts ON ts.turno_id = t.id").
		LeftJoin("servicio s ON s.id = ts.servicio_id").
		GroupBy("t.id", "u.id").
		OrderBy("t.fecha_hora ASC", "t.id ASC")
}

func (r *Repository) applyFilter(builder squirrel.SelectBuilder, filter domain.AppointmentFilter, prefix string) squirrel.SelectBuilder {
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{prefix + "estado": *filter.Status})
	}
	if filter.ClientID != nil {
		builder = builder.Where(squirrel.Eq{prefix + "cliente_id": *filter.ClientID})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{prefix + "fecha_hora": r.toStorage(*filter.From)})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{prefix + "fecha_hora": r.toStorage(*filter.To)})
	}
	return builder
}

func (r *Repository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.AppointmentView, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	views := make([]*domain.AppointmentView, 0)
	for rows.Next() {
		var v domain.AppointmentView
		var scheduledAt time.Time
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&v.ID,
			&v.ClientID,
			&scheduledAt,
			&v.Status,
			&v.Total,
			&createdAt,
			&updatedAt,
			&v.ClientName,
			&v.ClientSurname,
			&v.ClientEmail,
			&v.Services,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan appointment: %v", ErrScanRow, err)
		}

		v.ScheduledAt = r.fromStorage(scheduledAt)
		v.CreatedAt = createdAt.Time
		v.UpdatedAt = updatedAt.Time
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return views, nil
}

// LineItems получает строки турно с названиями услуг
func (r *Repository) LineItems(ctx context.Context, appointmentID int64) ([]domain.LineItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("ts.turno_id", "ts.servicio_id", "s.nombre", "ts.precio_cobrado").
		From("turno_servicio ts").
		Join("servicio s ON s.id = ts.servicio_id").
		Where(squirrel.Eq{"ts.turno_id": appointmentID}).
		OrderBy("s.nombre ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LineItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LineItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.AppointmentID, &item.ServiceID, &item.ServiceName, &item.ChargedPrice); err != nil {
			return nil, fmt.Errorf("%w: LineItems - scan item: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LineItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// SumLineItems суммирует precio_cobrado по строкам турно
func (r *Repository) SumLineItems(ctx context.Context, appointmentID int64) (decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(precio_cobrado), 0)").
		From("turno_servicio").
		Where(squirrel.Eq{"turno_id": appointmentID}).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumLineItems - build select query: %v", ErrBuildQuery, err)
	}

	var sum decimal.Decimal
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumLineItems - scan sum: %v", ErrScanRow, err)
	}
	return sum, nil
}

// UpdateStatus обновляет статус турно
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turno").
		Set("estado", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "UpdateStatus", query, args)
}

// Delete удаляет турно; строки turno_servicio удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("turno").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "Delete", query, args)
}

// Summary считает количество и сумму турно по статусам
func (r *Repository) Summary(ctx context.Context, filter domain.AppointmentFilter) ([]domain.StatusSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("estado", "COUNT(id)", "COALESCE(SUM(total), 0)").
		From("turno").
		GroupBy("estado").
		OrderBy("estado ASC")

	query, args, err := r.applyFilter(builder, filter, "").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Summary - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Summary - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	summary := make([]domain.StatusSummary, 0, len(domain.AllStatuses))
	for rows.Next() {
		var s domain.StatusSummary
		if err := rows.Scan(&s.Status, &s.Count, &s.Amount); err != nil {
			return nil, fmt.Errorf("%w: Summary - scan row: %v", ErrScanRow, err)
		}
		summary = append(summary, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Summary - rows error: %v", ErrScanRow, err)
	}

	return summary, nil
}

func (r *Repository) execAffecting(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *Repository) toStorage(t time.Time) string {
	return t.In(r.loc).Format(domain.StorageTimeLayout)
}

func (r *Repository) fromStorage(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), r.loc)
}
