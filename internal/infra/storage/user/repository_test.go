package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
)

var columns = []string{"id", "nombre", "apellido", "email", "password_hash", "rol", "activo", "created_at"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRepository(dbmetrics.Wrap(sqlDB, nil)), mock
}

func TestRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO usuario`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "usuario_email_uidx"})

	_, err := repo.Create(context.Background(), &domain.User{
		Name: "Ana", Surname: "Perez", Email: "ana@salon.com", Role: domain.RoleClient, Active: true,
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO usuario \(nombre,apellido,email,password_hash,rol,activo\) VALUES (.+) RETURNING id, created_at`).
		WithArgs("Ana", "Perez", "ana@salon.com", "hash", "cliente", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	u, err := repo.Create(context.Background(), &domain.User{
		Name: "Ana", Surname: "Perez", Email: "ana@salon.com", PasswordHash: "hash", Role: domain.RoleClient, Active: true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByEmail(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM usuario WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WithArgs("Ana@Salon.com").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(3), "Ana", "Perez", "ana@salon.com", "hash", "recepcionista", true, nil))

	u, err := repo.GetByEmail(context.Background(), " Ana@Salon.com ")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleReceptionist, u.Role)
	assert.Equal(t, "hash", u.PasswordHash)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM usuario WHERE id = \$1`).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_List_Staff(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM usuario WHERE rol IN \(\$1,\$2\) AND activo = \$3 ORDER BY apellido ASC, nombre ASC`).
		WithArgs("admin", "recepcionista", true).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Root", "Admin", "admin@salon.com", "h", "admin", true, nil))

	users, err := repo.List(context.Background(), domain.UserFilter{StaffOnly: true, ActiveOnly: true})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
}

func TestRepository_SearchByName(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM usuario WHERE rol = \$1 AND \(nombre ILIKE \$2 OR apellido ILIKE \$3\)`).
		WithArgs("cliente", "%per%", "%per%").
		WillReturnRows(sqlmock.NewRows(columns))

	users, err := repo.SearchByName(context.Background(), "per", domain.RoleClient)

	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchByName_EscapesWildcards(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM usuario WHERE rol = \$1 AND \(nombre ILIKE \$2 OR apellido ILIKE \$3\)`).
		WithArgs("cliente", `%\_a\%b\\%`, `%\_a\%b\\%`).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.SearchByName(context.Background(), `_a%b\`, domain.RoleClient)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePassword_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE usuario SET password_hash = \$1 WHERE id = \$2`).
		WithArgs("newhash", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdatePassword(context.Background(), 8, "newhash"), ErrUserNotFound)
}
