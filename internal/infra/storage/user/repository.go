package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// likeEscaper экранирует спецсимволы LIKE (escape-символ по умолчанию в Postgres: \)
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository репозиторий пользователей (таблица usuario)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var userColumns = []string{
	"id",
	"nombre",
	"apellido",
	"email",
	"password_hash",
	"rol",
	"activo",
	"created_at",
}

// Create сохраняет пользователя; повтор email (без учета регистра) дает ErrDuplicateEmail
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("usuario").
		Columns("nombre", "apellido", "email", "password_hash", "rol", "activo").
		Values(u.Name, u.Surname, u.Email, u.PasswordHash, u.Role, u.Active).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &createdAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	u.CreatedAt = createdAt.Time

	return u, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail получает пользователя по email без учета регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Expr("LOWER(email) = LOWER(?)", strings.TrimSpace(email)))
}

func (r *Repository) getOne(ctx context.Context, op string, pred squirrel.Sqlizer) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("usuario").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}
	return u, nil
}

// List получает пользователей по фильтру, отсортированных по фамилии и имени
func (r *Repository) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	builder := psqlbuilder.Select(userColumns...).
		From("usuario").
		OrderBy("apellido ASC", "nombre ASC")

	if filter.Role != nil {
		builder = builder.Where(squirrel.Eq{"rol": *filter.Role})
	}
	if filter.StaffOnly {
		builder = builder.Where(squirrel.Eq{"rol": []string{string(domain.RoleAdmin), string(domain.RoleReceptionist)}})
	}
	if filter.ActiveOnly {
		builder = builder.Where(squirrel.Eq{"activo": true})
	}

	return r.list(ctx, "List", builder)
}

// SearchByName ищет пользователей роли role по фрагменту имени или фамилии
func (r *Repository) SearchByName(ctx context.Context, fragment string, role domain.Role) ([]*domain.User, error) {
	pattern := "%" + likeEscaper.Replace(strings.TrimSpace(fragment)) + "%"

	builder := psqlbuilder.Select(userColumns...).
		From("usuario").
		Where(squirrel.Eq{"rol": role}).
		Where(squirrel.Or{
			squirrel.ILike{"nombre": pattern},
			squirrel.ILike{"apellido": pattern},
		}).
		OrderBy("apellido ASC", "nombre ASC")

	return r.list(ctx, "SearchByName", builder)
}

// Update перезаписывает профиль пользователя (без пароля)
func (r *Repository) Update(ctx context.Context, u *domain.User) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("usuario").
		Set("nombre", u.Name).
		Set("apellido", u.Surname).
		Set("email", u.Email).
		Set("rol", u.Role).
		Set("activo", u.Active).
		Where(squirrel.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "Update", query, args)
}

// UpdatePassword сохраняет новый хеш пароля
func (r *Repository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("usuario").
		Set("password_hash", hash).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "UpdatePassword", query, args)
}

// SetActive включает или выключает учетную запись
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("usuario").
		Set("activo", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "SetActive", query, args)
}

// CountByRole считает активных пользователей роли
func (r *Repository) CountByRole(ctx context.Context, role domain.Role) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(id)").
		From("usuario").
		Where(squirrel.Eq{"rol": role}).
		Where(squirrel.Eq{"activo": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByRole - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByRole - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return users, nil
}

func (r *Repository) execAffecting(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var createdAt sql.NullTime

	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Surname,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Active,
		&createdAt,
	); err != nil {
		return nil, err
	}
	u.CreatedAt = createdAt.Time

	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
