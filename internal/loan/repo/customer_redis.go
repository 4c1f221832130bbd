package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	errx "github.com/loanassist-poc/server/internal/core/error"
	"github.com/loanassist-poc/server/internal/loan/model"
	logx "github.com/loanassist-poc/server/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// RedisCustomerRepository stores customer records and offers in Redis.
// Records are JSON blobs keyed by customer id, with a phone-number index
// for verification lookups. No TTL: the store is reference data.
type RedisCustomerRepository struct {
	rdb redis.Cmdable
}

func NewRedisCustomerRepository(rdb redis.Cmdable) *RedisCustomerRepository {
	return &RedisCustomerRepository{rdb: rdb}
}

func customerKey(customerID string) string {
	return fmt.Sprintf("loan:customer:%s", customerID)
}

func phoneIndexKey(phone string) string {
	return fmt.Sprintf("loan:customer:phone:%s", phone)
}

func offerKey(customerID string) string {
	return fmt.Sprintf("loan:offer:%s", customerID)
}

func (r *RedisCustomerRepository) FindByPhone(ctx context.Context, phone string) (*model.CustomerRecord, error) {
	id, err := r.rdb.Get(ctx, phoneIndexKey(phone)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errx.ErrCustomerNotFound
		}
		return nil, errx.WrapRedis(err)
	}
	return r.FindByID(ctx, id)
}

func (r *RedisCustomerRepository) FindByID(ctx context.Context, customerID string) (*model.CustomerRecord, error) {
	raw, err := r.rdb.Get(ctx, customerKey(customerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errx.ErrCustomerNotFound
		}
		return nil, errx.WrapRedis(err)
	}

	var cust model.CustomerRecord
	if err := json.Unmarshal([]byte(raw), &cust); err != nil {
		return nil, fmt.Errorf("unmarshal customer %s: %w", customerID, err)
	}
	return &cust, nil
}

func (r *RedisCustomerRepository) FindByCustomer(ctx context.Context, customerID string) (*model.Offer, error) {
	raw, err := r.rdb.Get(ctx, offerKey(customerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errx.ErrCustomerNotFound
		}
		return nil, errx.WrapRedis(err)
	}

	var offer model.Offer
	if err := json.Unmarshal([]byte(raw), &offer); err != nil {
		return nil, fmt.Errorf("unmarshal offer for %s: %w", customerID, err)
	}
	return &offer, nil
}

func (r *RedisCustomerRepository) RateFor(ctx context.Context, customerID string) (float64, error) {
	offer, err := r.FindByCustomer(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return offer.InterestRate, nil
}

// Seed loads customer records and offers into the store, replacing any
// previous entries for the same ids.
func (r *RedisCustomerRepository) Seed(ctx context.Context, customers []model.CustomerRecord, offers []model.Offer) error {
	for _, c := range customers {
		b, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal customer %s: %w", c.CustomerID, err)
		}
		if err := r.rdb.Set(ctx, customerKey(c.CustomerID), b, 0).Err(); err != nil {
			return errx.WrapRedis(err)
		}
		if err := r.rdb.Set(ctx, phoneIndexKey(c.Phone), c.CustomerID, 0).Err(); err != nil {
			return errx.WrapRedis(err)
		}
	}
	for _, o := range offers {
		b, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("marshal offer %s: %w", o.OfferID, err)
		}
		if err := r.rdb.Set(ctx, offerKey(o.CustomerID), b, 0).Err(); err != nil {
			return errx.WrapRedis(err)
		}
	}
	logx.Info().Int("customers", len(customers)).Int("offers", len(offers)).Msg("seeded customer store")
	return nil
}

var (
	_ model.CustomerRepository = (*RedisCustomerRepository)(nil)
	_ model.OfferRepository    = (*RedisCustomerRepository)(nil)
)
