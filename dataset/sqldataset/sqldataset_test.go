package sqldataset_test

import (
	"context"
	"database/sql/driver"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/sqldataset"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/sqldataset/pgadapter"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/sqldataset/sqlite3adapter"
	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{
			name:  "postgresql",
			query: `SELECT "VA", "CS", "RaceTime" FROM "athletes" WHERE "Handedness" = $1`,
		},
		{
			name:  "sqlite3",
			query: `SELECT "VA", "CS", "RaceTime" FROM "athletes" WHERE "Handedness" = ?`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close()
			a := pgadapter.FromDB(db)
			if tt.name == "sqlite3" {
				a = sqlite3adapter.FromDB(db)
			}
			mock.ExpectQuery(tt.query).
				WithArgs("Right").
				WillReturnRows(sqlmock.NewRows([]string{"VA", "CS", "RaceTime"}).
					AddRow(1.5, 1.2, 52.1).
					AddRow(nil, 1.1, 53.0).
					AddRow(2.9, 1.8, 58.3))

			m, err := sqldataset.Load(context.Background(), a, "athletes",
				feature.NewContinuousFeatures("VA", "CS"),
				feature.NewContinuousFeature("RaceTime"),
				map[string]string{"Handedness": "Right"})
			require.NoError(t, err)
			assert.Equal(t, 2, m.Len())
			assert.Equal(t, []float64{1.5, 2.9}, m.Column(0))
			assert.Equal(t, []float64{52.1, 58.3}, m.TargetValues())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	a := pgadapter.FromDB(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)
	_, err = sqldataset.Load(ctx, a, "athletes", feature.NewContinuousFeatures("VA"), feature.NewContinuousFeature("RaceTime"), nil)
	assert.Error(t, err)

	_, err = sqldataset.Load(ctx, a, `ath"letes`, feature.NewContinuousFeatures("VA"), feature.NewContinuousFeature("RaceTime"), nil)
	assert.Error(t, err)

	_, err = sqldataset.Load(ctx, a, "athletes", feature.NewContinuousFeatures("VA"), nil, nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	va := make([]float64, 12)
	y := make([]float64, 12)
	for i := range va {
		va[i] = float64(i) / 4
		y[i] = 50 + float64(i)
	}
	m, err := dataset.NewFromColumns([]string{"VA"}, "RaceTime", [][]float64{va}, y)
	require.NoError(t, err)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "train" ("VA" REAL NULL, "RaceTime" REAL NULL)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	values := strings.TrimSuffix(strings.Repeat("(?, ?), ", 10), ", ")
	args := make([]driver.Value, 0, 20)
	for i := 0; i < 10; i++ {
		args = append(args, va[i], y[i])
	}
	mock.ExpectExec(`INSERT INTO "train" ("VA", "RaceTime") VALUES ` + values).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(10, 10))
	mock.ExpectExec(`INSERT INTO "train" ("VA", "RaceTime") VALUES (?, ?), (?, ?)`).
		WithArgs(va[10], y[10], va[11], y[11]).
		WillReturnResult(sqlmock.NewResult(12, 2))

	n, err := sqldataset.Save(context.Background(), sqlite3adapter.FromDB(db), "train", m)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	m, err := dataset.NewFromColumns([]string{"VA"}, "RaceTime", [][]float64{{1, 2}}, []float64{3, 4})
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO").WillReturnError(assert.AnError)
	n, err := sqldataset.Save(context.Background(), pgadapter.FromDB(db), "train", m)
	assert.Error(t, err)
	assert.Equal(t, 0, n)
}

func TestQuote(t *testing.T) {
	q, err := sqldataset.Quote("RaceTime")
	require.NoError(t, err)
	assert.Equal(t, `"RaceTime"`, q)
	_, err = sqldataset.Quote("")
	assert.Error(t, err)
	_, err = sqldataset.Quote(`a"b`)
	assert.Error(t, err)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$3", pgadapter.FromDB(nil).Placeholder(3))
	assert.Equal(t, "?", sqlite3adapter.FromDB(nil).Placeholder(3))
}
