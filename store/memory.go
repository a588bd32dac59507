package store

import (
	"context"
	"sort"
	"sync"

	"github.com/rushteam/skinkit/core"
)

// MemoryCatalog 是内存实现的产品目录，用于测试/开发/原型。
// 进程重启后数据丢失。附带一个小 KV 面，方便回避清单等配套数据同仓存放。
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[string]*core.ProductVector
	kv       map[string][]byte
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		products: make(map[string]*core.ProductVector),
		kv:       make(map[string][]byte),
	}
}

func (m *MemoryCatalog) Name() string { return "memory" }

func (m *MemoryCatalog) GetProduct(ctx context.Context, id string) (*core.ProductVector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return nil, core.ErrCatalogNotFound
	}
	return p, nil
}

func (m *MemoryCatalog) BatchGetProducts(ctx context.Context, ids []string) (map[string]*core.ProductVector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]*core.ProductVector, len(ids))
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

func (m *MemoryCatalog) ListByCategory(ctx context.Context, category string) ([]*core.ProductVector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*core.ProductVector, 0, 16)
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sortByPrice(out)
	return out, nil
}

func (m *MemoryCatalog) ListProducts(ctx context.Context) ([]*core.ProductVector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*core.ProductVector, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sortByPrice(out)
	return out, nil
}

func (m *MemoryCatalog) PutProduct(ctx context.Context, p *core.ProductVector) error {
	if p == nil || p.ID == "" {
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "catalog: product must have an id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	return nil
}

func (m *MemoryCatalog) Close() error { return nil }

// Get 读取配套 KV（回避清单等）。
func (m *MemoryCatalog) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.kv[key]
	if !ok {
		return nil, core.ErrCatalogNotFound
	}
	return v, nil
}

// Set 写入配套 KV。
func (m *MemoryCatalog) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = value
	return nil
}

// sortByPrice 按价格升序排序，同价按 ID 保证确定性。
func sortByPrice(list []*core.ProductVector) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Price != list[j].Price {
			return list[i].Price < list[j].Price
		}
		return list[i].ID < list[j].ID
	})
}

// 确保 MemoryCatalog 实现了 core.CatalogStore 接口
var _ core.CatalogStore = (*MemoryCatalog)(nil)
