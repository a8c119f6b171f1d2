package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
)

var columns = []string{"id", "nombre", "descripcion", "precio", "duracion_estimada", "activo", "created_at", "updated_at"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRepository(dbmetrics.Wrap(sqlDB, nil)), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO servicio \(nombre,descripcion,precio,duracion_estimada,activo\)`).
		WithArgs("Corte", nil, "800", 30, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	s, err := repo.Create(context.Background(), &domain.Service{
		Name:            "Corte",
		Price:           decimal.RequireFromString("800"),
		DurationMinutes: 30,
		Active:          true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), s.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDs(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM servicio WHERE id IN \(\$1,\$2\) ORDER BY id ASC`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Corte", nil, "800.00", 30, true, nil, nil).
			AddRow(int64(2), "Color", "Tintura completa", "500.00", 90, false, nil, nil))

	services, err := repo.GetByIDs(context.Background(), []int64{1, 2})

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Nil(t, services[0].Description)
	require.NotNil(t, services[1].Description)
	assert.Equal(t, "Tintura completa", *services[1].Description)
	assert.False(t, services[1].Active)
	assert.True(t, decimal.RequireFromString("500").Equal(services[1].Price))
}

func TestRepository_GetByIDs_Empty(t *testing.T) {
	repo, mock := newRepo(t)

	services, err := repo.GetByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, services)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_ActiveOnly(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM servicio WHERE activo = \$1 ORDER BY nombre ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(columns))

	services, err := repo.List(context.Background(), true)

	require.NoError(t, err)
	assert.Empty(t, services)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM servicio WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRepository_SetActive_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE servicio SET activo = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(false, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.SetActive(context.Background(), 9, false), ErrServiceNotFound)
}
