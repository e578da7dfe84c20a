package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tanziljws/tanipintar-website/internal/analytics"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

// FarmerRecordsKey holds the serialized record list served to the map page.
const FarmerRecordsKey = keyPrefix + "farmer_records"

type IRecordCacheRepository interface {
	GetRecords(ctx context.Context) ([]analytics.FarmerRecord, bool, error)
	SetRecords(ctx context.Context, records []analytics.FarmerRecord) error
	Invalidate(ctx context.Context) error
}

type RecordCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecordCacheRepository(client *redis.Client, ttl time.Duration) *RecordCacheRepository {
	return &RecordCacheRepository{client: client, ttl: ttl}
}

// GetRecords reports a miss with ok == false and a nil error.
func (r *RecordCacheRepository) GetRecords(ctx context.Context) ([]analytics.FarmerRecord, bool, error) {
	data, err := r.client.Get(ctx, FarmerRecordsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read record cache: %w", err)
	}

	var records []analytics.FarmerRecord
	if err := utils.DeserializeModel(data, &records); err != nil {
		return nil, false, fmt.Errorf("failed to decode record cache: %w", err)
	}
	return records, true, nil
}

func (r *RecordCacheRepository) SetRecords(ctx context.Context, records []analytics.FarmerRecord) error {
	data, err := utils.SerializeModel(records)
	if err != nil {
		return fmt.Errorf("failed to encode record cache: %w", err)
	}
	if err := r.client.Set(ctx, FarmerRecordsKey, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write record cache: %w", err)
	}
	return nil
}

func (r *RecordCacheRepository) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, FarmerRecordsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate record cache: %w", err)
	}
	return nil
}
