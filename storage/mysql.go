package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	rates "github.com/malusev998/tariff-rates"
)

const MySQLTimeFormat = "2006-01-02 15:04:05"

var ErrNotEnoughBytesInGenerator = errors.New("id generator must produce 16 bytes")

type (
	IDGenerator interface {
		Generate() []byte
	}

	uuidGenerator struct{}

	mysqlStorage struct {
		ctx         context.Context
		db          *sql.DB
		idGenerator IDGenerator
		tableName   string
	}
)

func (uuidGenerator) Generate() []byte {
	id := uuid.New()

	return id[:]
}

func NewMySQLStorage(config MySQLConfig) (rates.Storage, error) {
	db, err := sql.Open("mysql", config.ConnectionString)
	if err != nil {
		return nil, err
	}

	st, err := NewSQLStorage(config.Cxt, db, config.IDGenerator, config.TableName, config.Migrate)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return st, nil
}

// NewSQLStorage wraps an open database. The table is created first when
// migrate is set.
func NewSQLStorage(ctx context.Context, db *sql.DB, idGenerator IDGenerator, tableName string, migrate bool) (rates.Storage, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if idGenerator == nil {
		idGenerator = uuidGenerator{}
	}

	st := mysqlStorage{
		ctx:         ctx,
		db:          db,
		idGenerator: idGenerator,
		tableName:   tableName,
	}

	if migrate {
		if err := st.Migrate(); err != nil {
			return nil, err
		}
	}

	return st, nil
}

func (m mysqlStorage) Migrate() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s(
	id BINARY(16) PRIMARY KEY,
	currency VARCHAR(16) NOT NULL,
	period CHAR(7) NOT NULL,
	rate VARCHAR(32) NOT NULL,
	provider VARCHAR(64) NOT NULL,
	created_at DATETIME NOT NULL,
	INDEX idx_currency_period(currency, period)
);`, m.tableName))

	return err
}

func (m mysqlStorage) Drop() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", m.tableName))

	return err
}

func (m mysqlStorage) Store(req rates.RunRequest, records []rates.RateRecord) (string, error) {
	ids := make([][]byte, 0, len(records))

	for range records {
		id := m.idGenerator.Generate()
		if len(id) != 16 {
			return "", ErrNotEnoughBytesInGenerator
		}

		ids = append(ids, id)
	}

	tx, err := m.db.BeginTx(m.ctx, nil)
	if err != nil {
		return "", err
	}

	stmt, err := tx.PrepareContext(m.ctx, fmt.Sprintf("INSERT INTO %s(id, currency, period, rate, provider, created_at) VALUES (?,?,?,?,?,?);", m.tableName))
	if err != nil {
		_ = tx.Rollback()
		return "", err
	}

	defer stmt.Close()

	createdAt := time.Now().UTC().Format(MySQLTimeFormat)

	for i, record := range records {
		_, err := stmt.ExecContext(m.ctx, ids[i], record.Currency, record.Date, record.Rate, string(rates.TradeTariffProvider), createdAt)
		if err != nil {
			_ = tx.Rollback()
			return "", fmt.Errorf("%w: inserting %s: %w", rates.ErrIO, record.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("%w: %w", rates.ErrIO, err)
	}

	return m.tableName, nil
}

func (m mysqlStorage) GetStorageProviderName() string {
	return string(MySQL)
}

func (m mysqlStorage) Close() error {
	return m.db.Close()
}
