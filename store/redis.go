package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/rushteam/skinkit/core"
)

// Redis 键空间布局：
//   - 产品本体：skinkit:product:{id} → JSON
//   - 品类索引：skinkit:category:{category} → zset，score 为价格
//   - 全量索引：skinkit:products → zset，score 为价格
//
// 价格作为 zset 分数让"按品类取平替候选池"天然是价格升序，免去应用层排序。
const (
	productKeyPrefix  = "skinkit:product:"
	categoryKeyPrefix = "skinkit:category:"
	allProductsKey    = "skinkit:products"
)

// RedisCatalog 是 Redis 实现的产品目录，生产环境常用。
// 支持持久化、集群、哨兵等。
type RedisCatalog struct {
	client *redis.Client
}

func NewRedisCatalog(addr string, db int) (*RedisCatalog, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisCatalog{client: client}, nil
}

func (r *RedisCatalog) Name() string { return "redis" }

func (r *RedisCatalog) GetProduct(ctx context.Context, id string) (*core.ProductVector, error) {
	data, err := r.client.Get(ctx, productKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, core.ErrCatalogNotFound
	}
	if err != nil {
		return nil, err
	}

	var p core.ProductVector
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "catalog: corrupt product record: "+id)
	}
	return &p, nil
}

func (r *RedisCatalog) BatchGetProducts(ctx context.Context, ids []string) (map[string]*core.ProductVector, error) {
	if len(ids) == 0 {
		return make(map[string]*core.ProductVector), nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, productKeyPrefix+id)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	result := make(map[string]*core.ProductVector, len(ids))
	for i, id := range ids {
		if vals[i] == nil {
			continue
		}
		s, ok := vals[i].(string)
		if !ok {
			continue
		}
		var p core.ProductVector
		if json.Unmarshal([]byte(s), &p) != nil {
			// 坏记录跳过，不让单条脏数据拖垮整批读取
			continue
		}
		result[id] = &p
	}
	return result, nil
}

func (r *RedisCatalog) ListByCategory(ctx context.Context, category string) ([]*core.ProductVector, error) {
	ids, err := r.client.ZRange(ctx, categoryKeyPrefix+category, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return r.listByIDs(ctx, ids)
}

func (r *RedisCatalog) ListProducts(ctx context.Context) ([]*core.ProductVector, error) {
	ids, err := r.client.ZRange(ctx, allProductsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return r.listByIDs(ctx, ids)
}

// listByIDs 批量取产品并保持 ids 的顺序（zset 已按价格升序）。
func (r *RedisCatalog) listByIDs(ctx context.Context, ids []string) ([]*core.ProductVector, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	byID, err := r.BatchGetProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*core.ProductVector, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *RedisCatalog) PutProduct(ctx context.Context, p *core.ProductVector) error {
	if p == nil || p.ID == "" {
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "catalog: product must have an id")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, productKeyPrefix+p.ID, data, 0)
	pipe.ZAdd(ctx, allProductsKey, redis.Z{Score: p.Price, Member: p.ID})
	if p.Category != "" {
		pipe.ZAdd(ctx, categoryKeyPrefix+p.Category, redis.Z{Score: p.Price, Member: p.ID})
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (r *RedisCatalog) Close() error {
	return r.client.Close()
}

// Get 读取任意键的原始值（回避清单等配套数据）。
func (r *RedisCatalog) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, core.ErrCatalogNotFound
	}
	return val, err
}

// 确保 RedisCatalog 实现了 core.CatalogStore 接口
var _ core.CatalogStore = (*RedisCatalog)(nil)
