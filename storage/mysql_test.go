package storage_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	rates "github.com/malusev998/tariff-rates"
	"github.com/malusev998/tariff-rates/storage"
)

const insertQuery = "INSERT INTO %s(id, currency, period, rate, provider, created_at) VALUES (?,?,?,?,?,?);"

type (
	IDGeneratorMock struct {
		mock.Mock
	}
)

func (i *IDGeneratorMock) Generate() []byte {
	args := i.Called()
	if value, ok := args.Get(0).([]byte); ok {
		return value
	}
	return nil
}

func fakeRecords(n int) []rates.RateRecord {
	currency := faker.Currency()
	records := make([]rates.RateRecord, 0, n)

	for i, period := range rates.Periods(2023, false)[:n] {
		records = append(records, rates.RateRecord{
			Date:     period.Label(),
			Rate:     fmt.Sprintf("%d.%04d", i+1, i*7),
			Currency: currency,
		})
	}

	return records
}

func TestMysqlStorage_StoreUnit(t *testing.T) {
	t.Parallel()
	db, m, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	assert := require.New(t)
	ctx := context.Background()
	table := "rates_store_test_unit"
	query := fmt.Sprintf(insertQuery, table)
	st, err := storage.NewSQLStorage(ctx, db, nil, table, false)
	assert.NoError(err)

	records := fakeRecords(3)
	req := rates.RunRequest{Currency: records[0].Currency, Year: 2023}

	t.Run("Transaction_Not_Started", func(t *testing.T) {
		m.ExpectBegin().WillReturnError(errors.New("error while starting transaction"))

		_, err := st.Store(req, records)

		assert.Error(err)
		assert.Nil(m.ExpectationsWereMet())
		assert.Equal("error while starting transaction", err.Error())
	})

	t.Run("Prepare_SQL_WithError", func(t *testing.T) {
		m.ExpectBegin()
		m.ExpectPrepare(query).WillReturnError(errors.New("cannot create prepare statement"))
		m.ExpectRollback()

		_, err := st.Store(req, records)

		assert.Nil(m.ExpectationsWereMet())
		assert.Error(err)
		assert.Equal("cannot create prepare statement", err.Error())
	})

	t.Run("Insert_Fails_RollsBack", func(t *testing.T) {
		m.ExpectBegin()
		prepared := m.ExpectPrepare(query)
		prepared.ExpectExec().
			WithArgs(sqlmock.AnyArg(), records[0].Currency, records[0].Date, records[0].Rate, "TradeTariff", sqlmock.AnyArg()).
			WillReturnError(errors.New("duplicate entry"))
		m.ExpectRollback()

		_, err := st.Store(req, records)

		assert.Nil(m.ExpectationsWereMet())
		assert.True(errors.Is(err, rates.ErrIO))
	})

	t.Run("Inserts_All_Records_In_Order", func(t *testing.T) {
		m.ExpectBegin()
		prepared := m.ExpectPrepare(query)
		for i, record := range records {
			prepared.ExpectExec().
				WithArgs(sqlmock.AnyArg(), record.Currency, record.Date, record.Rate, "TradeTariff", sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
		}
		m.ExpectCommit()

		location, err := st.Store(req, records)

		assert.NoError(err)
		assert.Equal(table, location)
		assert.Nil(m.ExpectationsWereMet())
	})
}

func TestMysqlStorage_IDGenerator(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	db, m, err := sqlmock.New()
	asserts.NoError(err)
	defer db.Close()

	idNullBytes := &IDGeneratorMock{}
	idLessBytes := &IDGeneratorMock{}

	idNullBytes.On("Generate").Return(nil)
	idLessBytes.On("Generate").Return(make([]byte, 10))
	generators := []storage.IDGenerator{
		idNullBytes,
		idLessBytes,
	}

	for _, gen := range generators {
		st, err := storage.NewSQLStorage(context.Background(), db, gen, "rates_store_test", false)
		asserts.NoError(err)

		location, err := st.Store(rates.RunRequest{Currency: "USD", Year: 2023}, fakeRecords(1))

		asserts.Empty(location)
		asserts.True(errors.Is(err, storage.ErrNotEnoughBytesInGenerator))
	}

	asserts.Nil(m.ExpectationsWereMet())
}

func TestMysqlStorage_Migrate(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	db, m, err := sqlmock.New()
	asserts.NoError(err)
	defer db.Close()

	m.ExpectExec("CREATE TABLE IF NOT EXISTS rates_migrate_test").WillReturnResult(sqlmock.NewResult(0, 0))
	m.ExpectExec("DROP TABLE IF EXISTS rates_migrate_test").WillReturnResult(sqlmock.NewResult(0, 0))

	st, err := storage.NewSQLStorage(context.Background(), db, nil, "rates_migrate_test", true)

	asserts.NoError(err)
	asserts.Equal("mysql", st.GetStorageProviderName())

	dropper, ok := st.(interface{ Drop() error })
	asserts.True(ok)
	asserts.NoError(dropper.Drop())
	asserts.Nil(m.ExpectationsWereMet())
}
