package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"breakfastpos/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService is a read-through cache in front of the menu catalog and the
// statistics dashboard. Misses return (nil, nil); callers fall back to the
// database. A cold or unreachable redis never breaks a request.
type CacheService interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	GetCategories(ctx context.Context) ([]*models.Category, error)
	SetCategories(ctx context.Context, categories []*models.Category, ttl time.Duration) error
	InvalidateCategories(ctx context.Context) error

	GetTodayStatistics(ctx context.Context) (*models.TodayStatistics, error)
	SetTodayStatistics(ctx context.Context, stats *models.TodayStatistics, ttl time.Duration) error
}

type redisCacheService struct {
	client *redis.Client
}

// NewClient builds the shared redis client. Callers own its lifecycle.
func NewClient(addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: redis ping failed on initialization: %v (address: %s)", err, addr)
	}

	return client
}

func NewRedisCacheService(client *redis.Client) CacheService {
	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	key := fmt.Sprintf("pos:product:%s", productID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *redisCacheService) SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	key := fmt.Sprintf("pos:product:%s", product.ID)
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	key := fmt.Sprintf("pos:product:%s", productID)
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) GetCategories(ctx context.Context) ([]*models.Category, error) {
	data, err := r.client.Get(ctx, "pos:categories").Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var categories []*models.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *redisCacheService) SetCategories(ctx context.Context, categories []*models.Category, ttl time.Duration) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, "pos:categories", data, ttl).Err()
}

func (r *redisCacheService) InvalidateCategories(ctx context.Context) error {
	return r.client.Del(ctx, "pos:categories").Err()
}

func (r *redisCacheService) GetTodayStatistics(ctx context.Context) (*models.TodayStatistics, error) {
	data, err := r.client.Get(ctx, "pos:stats:today").Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var stats models.TodayStatistics
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *redisCacheService) SetTodayStatistics(ctx context.Context, stats *models.TodayStatistics, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, "pos:stats:today", data, ttl).Err()
}
