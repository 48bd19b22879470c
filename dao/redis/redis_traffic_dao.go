package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"staffing-server/db"
	"staffing-server/models"
)

const TRAFFIC_DAY_KEY_FORMAT_V1 = "traffic_day_v1:%s_%s"
const STORE_PARAMS_KEY_FORMAT_V1 = "store_params_v1:%s"
const WEEK_AGGREGATE_KEY_FORMAT_V1 = "week_aggregate_v1:%s_%s"

// RedisTrafficDAO handles traffic and store-record caching using Redis.
type RedisTrafficDAO struct {
	client db.RedisClient
}

// NewRedisTrafficDAO initializes a RedisTrafficDAO with the Redis client.
func NewRedisTrafficDAO(client db.RedisClient) *RedisTrafficDAO {
	return &RedisTrafficDAO{client: client}
}

// SetDaySample caches one date's traffic sample for a store.
func (dao *RedisTrafficDAO) SetDaySample(storeCode string, s *models.TrafficSample) error {
	key := fmt.Sprintf(TRAFFIC_DAY_KEY_FORMAT_V1, storeCode, s.Date)
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal traffic sample for %s %s: %w", storeCode, s.Date, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set traffic sample in redis: %w", err)
	}
	return nil
}

// GetDaySample retrieves a cached sample, or nil on a cache miss.
func (dao *RedisTrafficDAO) GetDaySample(storeCode, date string) (*models.TrafficSample, error) {
	key := fmt.Sprintf(TRAFFIC_DAY_KEY_FORMAT_V1, storeCode, date)
	str, err := dao.client.Get(key)
	if err != nil {
		// A missing key is a miss, not a failure.
		if strings.Contains(err.Error(), "nil") || strings.Contains(err.Error(), "not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get traffic sample from redis: %w", err)
	}
	var s models.TrafficSample
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal traffic sample JSON: %w", err)
	}
	return &s, nil
}

// ListCachedSampleDates returns the dates with cached samples for a store.
func (dao *RedisTrafficDAO) ListCachedSampleDates(storeCode string) ([]string, error) {
	pattern := fmt.Sprintf(TRAFFIC_DAY_KEY_FORMAT_V1, storeCode, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list traffic sample keys: %w", err)
	}

	prefix := fmt.Sprintf(TRAFFIC_DAY_KEY_FORMAT_V1, storeCode, "")
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, prefix))
	}
	return dates, nil
}

// DeleteDaySample drops one cached sample.
func (dao *RedisTrafficDAO) DeleteDaySample(storeCode, date string) error {
	key := fmt.Sprintf(TRAFFIC_DAY_KEY_FORMAT_V1, storeCode, date)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete traffic sample key %s: %w", key, err)
	}
	log.Printf("[RedisTrafficDAO] Deleted cached sample for %s %s", storeCode, date)
	return nil
}

// SetStoreParams caches a store's parameter record.
func (dao *RedisTrafficDAO) SetStoreParams(p *models.StoreParams) error {
	key := fmt.Sprintf(STORE_PARAMS_KEY_FORMAT_V1, p.StoreID)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal store params for %s: %w", p.StoreID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set store params in redis: %w", err)
	}
	return nil
}

// GetStoreParams retrieves cached store params, or nil on a cache miss.
func (dao *RedisTrafficDAO) GetStoreParams(storeID string) (*models.StoreParams, error) {
	key := fmt.Sprintf(STORE_PARAMS_KEY_FORMAT_V1, storeID)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "nil") || strings.Contains(err.Error(), "not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get store params from redis: %w", err)
	}
	var p models.StoreParams
	if err := json.Unmarshal([]byte(str), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal store params JSON: %w", err)
	}
	return &p, nil
}

// SetWeekAggregate caches a computed weekly aggregate keyed by store and week
// identifier.
func (dao *RedisTrafficDAO) SetWeekAggregate(storeCode, weekID string, agg *models.AggregatedTraffic) error {
	key := fmt.Sprintf(WEEK_AGGREGATE_KEY_FORMAT_V1, storeCode, weekID)
	data, err := json.Marshal(agg)
	if err != nil {
		return fmt.Errorf("failed to marshal week aggregate for %s %s: %w", storeCode, weekID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set week aggregate in redis: %w", err)
	}
	return nil
}

// GetWeekAggregate retrieves a cached weekly aggregate, or nil on a miss.
func (dao *RedisTrafficDAO) GetWeekAggregate(storeCode, weekID string) (*models.AggregatedTraffic, error) {
	key := fmt.Sprintf(WEEK_AGGREGATE_KEY_FORMAT_V1, storeCode, weekID)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "nil") || strings.Contains(err.Error(), "not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get week aggregate from redis: %w", err)
	}
	var agg models.AggregatedTraffic
	if err := json.Unmarshal([]byte(str), &agg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal week aggregate JSON: %w", err)
	}
	return &agg, nil
}
