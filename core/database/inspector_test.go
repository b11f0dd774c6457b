package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_vehicles (vin VARCHAR(17) PRIMARY KEY, model_year INTEGER, metadata TEXT NOT NULL)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_vehicles")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "varchar(17)", colMap["vin"].Type)
	assert.Equal(t, "PRI", colMap["vin"].Key)
	assert.Equal(t, "integer", colMap["model_year"].Type)
	assert.Equal(t, "YES", colMap["model_year"].Null)
	assert.Equal(t, "NO", colMap["metadata"].Null)

	// PRAGMA table_info returns no rows for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("VIN", "VARCHAR(17)", "NO", "PRI", nil, "").
		AddRow("confidence", "varchar(8)", "YES", "MUL", "low", "")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `vehicles`")).WillReturnRows(rows)

	columns, err := GetTableColumns(db, "vehicles")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "vin", columns[0].Field)
	assert.Equal(t, "varchar(17)", columns[0].Type)
	require.NotNil(t, columns[1].Default)
	assert.Equal(t, "low", *columns[1].Default)
	assert.NoError(t, mock.ExpectationsWereMet())
}
