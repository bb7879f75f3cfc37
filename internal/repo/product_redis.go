package repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

const (
	productIndexKey  = "products"
	productNextIDKey = "products:next_id"
)

func productKey(id int) string {
	return "product:" + strconv.Itoa(id)
}

// RedisProductRepository stores each product as a hash and keeps a sorted
// set of ids so listing follows id order.
type RedisProductRepository struct {
	rdb *redis.Client
}

func NewRedisProductRepository(rdb *redis.Client) *RedisProductRepository {
	return &RedisProductRepository{rdb: rdb}
}

func (r *RedisProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	id, err := r.rdb.Incr(ctx, productNextIDKey).Result()
	if err != nil {
		return models.Product{}, fmt.Errorf("allocating product id: %w", err)
	}
	p.ID = int(id)

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, productKey(p.ID), encodeProduct(p))
		pipe.ZAdd(ctx, productIndexKey, redis.Z{Score: float64(p.ID), Member: p.ID})
		return nil
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("storing product %d: %w", p.ID, err)
	}
	return p, nil
}

func (r *RedisProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	ids, err := r.rdb.ZRange(ctx, productIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, "product:"+id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(cmds))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// deleted between the range read and the pipeline
			continue
		}
		p, err := decodeProduct(fields)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *RedisProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	fields, err := r.rdb.HGetAll(ctx, productKey(id)).Result()
	if err != nil {
		return models.Product{}, err
	}
	if len(fields) == 0 {
		return models.Product{}, ErrNotFound
	}
	return decodeProduct(fields)
}

func (r *RedisProductRepository) Update(ctx context.Context, p models.Product) error {
	key := productKey(p.ID)
	return r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, encodeProduct(p))
			return nil
		})
		return err
	}, key)
}

func (r *RedisProductRepository) Delete(ctx context.Context, p models.Product) error {
	key := productKey(p.ID)
	return r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.ZRem(ctx, productIndexKey, p.ID)
			return nil
		})
		return err
	}, key)
}

func encodeProduct(p models.Product) map[string]any {
	return map[string]any{
		"id":    p.ID,
		"name":  p.Name,
		"price": p.Price.String(),
		"stock": p.Stock,
		"color": p.Color,
	}
}

var errCorruptProduct = errors.New("corrupt product hash")

func decodeProduct(fields map[string]string) (models.Product, error) {
	id, err := strconv.Atoi(fields["id"])
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: id %q", errCorruptProduct, fields["id"])
	}
	price, err := decimal.NewFromString(fields["price"])
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: price %q", errCorruptProduct, fields["price"])
	}
	stock, err := strconv.Atoi(fields["stock"])
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: stock %q", errCorruptProduct, fields["stock"])
	}
	return models.Product{
		ID:    id,
		Name:  fields["name"],
		Price: price,
		Stock: stock,
		Color: fields["color"],
	}, nil
}
