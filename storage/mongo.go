package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	rates "github.com/malusev998/tariff-rates"
)

type mongoStorage struct {
	ctx        context.Context
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoStorage(config MongoDBConfig) (rates.Storage, error) {
	ctx := config.Cxt

	if ctx == nil {
		ctx = context.Background()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionString))
	if err != nil {
		return nil, err
	}

	collection := client.Database(config.Database).Collection(config.Collection)
	st := mongoStorage{
		ctx:        ctx,
		client:     client,
		collection: collection,
	}

	if config.Migrate {
		if err := st.Migrate(); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
	}

	return st, nil
}

func (m mongoStorage) Migrate() error {
	_, err := m.collection.Indexes().CreateOne(m.ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "currency", Value: 1}, {Key: "period", Value: 1}},
	})

	return err
}

func (m mongoStorage) Drop() error {
	return m.collection.Drop(m.ctx)
}

func (m mongoStorage) Store(req rates.RunRequest, records []rates.RateRecord) (string, error) {
	createdAt := time.Now()
	documents := make([]interface{}, 0, len(records))

	for _, record := range records {
		documents = append(documents, bson.M{
			"currency":  record.Currency,
			"period":    record.Date,
			"rate":      record.Rate,
			"provider":  string(rates.TradeTariffProvider),
			"createdAt": createdAt,
		})
	}

	if _, err := m.collection.InsertMany(m.ctx, documents); err != nil {
		return "", fmt.Errorf("%w: %w", rates.ErrIO, err)
	}

	return fmt.Sprintf("%s.%s", m.collection.Database().Name(), m.collection.Name()), nil
}

func (m mongoStorage) GetStorageProviderName() string {
	return string(MongoDB)
}

func (m mongoStorage) Close() error {
	return m.client.Disconnect(m.ctx)
}
