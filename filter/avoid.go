package filter

import (
	"context"
	"encoding/json"

	"github.com/rushteam/skinkit/core"
)

// AvoidStore 是回避清单的存储接口。
type AvoidStore interface {
	// GetAvoidList 获取某个 key 下的回避产品 ID 列表
	GetAvoidList(ctx context.Context, key string) ([]string, error)
}

// AvoidFilter 是回避清单过滤器：过滤掉运营下架或用户标记"不适合我"的产品。
// 支持两层来源：
// 1. IDs 内存列表（全局下架）
// 2. Store 按用户读取（key 为 {KeyPrefix}:{UserID}）
type AvoidFilter struct {
	// IDs 是内存中的全局回避产品 ID 列表
	IDs []string

	// Store 用于从存储中读取用户级回避清单（可选）
	Store AvoidStore

	// KeyPrefix 是 Store 中的 key 前缀，实际 key 为 {KeyPrefix}:{UserID}
	KeyPrefix string
}

func (f *AvoidFilter) Name() string {
	return "filter.avoid"
}

func (f *AvoidFilter) ShouldFilter(
	ctx context.Context,
	dctx *core.DecisionContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil {
		return true, nil
	}

	// 从内存列表检查
	for _, id := range f.IDs {
		if c.ID == id {
			return true, nil
		}
	}

	// 从 Store 检查用户级清单
	if f.Store != nil && dctx != nil && dctx.UserID != "" {
		keyPrefix := f.KeyPrefix
		if keyPrefix == "" {
			keyPrefix = "user:avoid"
		}
		avoidIDs, err := f.Store.GetAvoidList(ctx, keyPrefix+":"+dctx.UserID)
		if err == nil {
			for _, id := range avoidIDs {
				if c.ID == id {
					return true, nil
				}
			}
		}
	}

	return false, nil
}

// KVGetter 是回避清单常用的最小 KV 读取面（store.RedisCatalog 原生满足）。
type KVGetter interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// StoreAdapter 把任意 KV 读取面适配为 AvoidStore，值按 JSON 字符串数组解码。
type StoreAdapter struct {
	kv KVGetter
}

// NewStoreAdapter 创建一个 KV 适配器。
func NewStoreAdapter(kv KVGetter) *StoreAdapter {
	return &StoreAdapter{kv: kv}
}

// GetAvoidList 从 KV 读取回避清单。
func (a *StoreAdapter) GetAvoidList(ctx context.Context, key string) ([]string, error) {
	data, err := a.kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
