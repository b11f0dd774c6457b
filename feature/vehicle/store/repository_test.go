package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vehicle-reconciler/core/database"
	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/feature/vehicle/models"
	"vehicle-reconciler/feature/vehicle/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func sampleResult(vin string) *models.Result {
	year, makeName, model := 2024, "Ford", "E-Transit"
	gvwr, curb, payload := 9500, 5620, 3880
	mpg := 28.0
	tpms := true
	return &models.Result{
		VIN: vin,
		Identity: models.Identity{
			ModelYear: &year,
			MakeName:  &makeName,
			ModelName: &model,
		},
		Configuration: models.Configuration{
			GrossVehicleWeightRating: &gvwr,
			CurbWeight:               &curb,
			PayloadCapacity:          &payload,
			MPGCity:                  &mpg,
			HasTPMS:                  &tpms,
		},
		Metadata: models.Metadata{
			Confidence:               reconcile.ConfidenceMedium,
			SourcesUsed:              []reconcile.Source{reconcile.SourcePrimary, reconcile.SourceSecondary},
			DecodedAt:                time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			FieldsFromPrimary:        []string{"modelYear", "makeName", "modelName", "curbWeight", "grossVehicleWeightRating", "hasTpms"},
			FieldsFromSecondary:      []string{"mpgCity"},
			FieldsDerived:            []string{"payloadCapacity"},
			FieldsManuallyOverridden: []string{},
			CheckDigitValid:          true,
		},
	}
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(setupSQLite(t))

	want := sampleResult("1FTBW9CK5PKA12345")
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx, want.VIN)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepository_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(setupSQLite(t))

	first := sampleResult("1FTBW9CK5PKA12345")
	require.NoError(t, repo.Save(ctx, first))

	second := sampleResult("1FTBW9CK5PKA12345")
	second.Configuration.PayloadCapacity = nil
	second.Metadata.Confidence = reconcile.ConfidenceHigh
	second.Metadata.FieldsDerived = []string{}
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Get(ctx, second.VIN)
	require.NoError(t, err)
	assert.Nil(t, got.Configuration.PayloadCapacity)
	assert.Equal(t, reconcile.ConfidenceHigh, got.Metadata.Confidence)

	page, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}

func TestRepository_GetNotFound(t *testing.T) {
	repo := store.NewRepository(setupSQLite(t))

	_, err := repo.Get(context.Background(), "1FTBW9CK5PKA12345")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(setupSQLite(t))

	vins := []string{"1FTBW9CK5PKA12345", "3C6LRVDG0NE100001", "1M8GDM9AXKP042788"}
	for _, vin := range vins {
		require.NoError(t, repo.Save(ctx, sampleResult(vin)))
	}

	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Results, 2)
	for _, r := range page.Results {
		require.NotNil(t, r.Configuration.GrossVehicleWeightRating)
		assert.Equal(t, 9500, *r.Configuration.GrossVehicleWeightRating)
	}

	rest, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest.Results, 1)

	all, err := repo.List(ctx, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, store.MaxPageSize, all.Limit)
	assert.Equal(t, 0, all.Offset)
	assert.Len(t, all.Results, 3)
}

func TestRepository_ListEmpty(t *testing.T) {
	page, err := store.NewRepository(setupSQLite(t)).List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(setupSQLite(t))
	require.NoError(t, repo.Save(ctx, sampleResult("1FTBW9CK5PKA12345")))

	require.NoError(t, repo.Delete(ctx, "1FTBW9CK5PKA12345"))
	_, err := repo.Get(ctx, "1FTBW9CK5PKA12345")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "1FTBW9CK5PKA12345"), store.ErrNotFound)
}

func TestRepository_SaveRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := store.NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `vehicles`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `vehicle_configurations`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), sampleResult("1FTBW9CK5PKA12345"))
	assert.ErrorContains(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveCommits(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := store.NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `vehicles`.*ON DUPLICATE KEY UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `vehicle_configurations`.*ON DUPLICATE KEY UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), sampleResult("1FTBW9CK5PKA12345")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetQueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := store.NewRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `vehicles`").WillReturnError(errors.New("connection reset"))

	_, err := repo.Get(context.Background(), "1FTBW9CK5PKA12345")
	assert.ErrorContains(t, err, "connection reset")
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestRepository_GetCorruptMetadata(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := store.NewRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `vehicles`").
		WillReturnRows(sqlmock.NewRows([]string{"vin", "confidence", "metadata"}).AddRow("1FTBW9CK5PKA12345", "low", "{not json"))
	mock.ExpectQuery("SELECT \\* FROM `vehicle_configurations`").
		WillReturnRows(sqlmock.NewRows([]string{"vin"}).AddRow("1FTBW9CK5PKA12345"))

	_, err := repo.Get(context.Background(), "1FTBW9CK5PKA12345")
	assert.ErrorContains(t, err, "failed to decode metadata")
}
