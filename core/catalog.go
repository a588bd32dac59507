package core

import "context"

// CatalogStore 是产品目录的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//   - 目录是决策引擎的外部协作方，引擎自身不做任何 I/O
//
// 实现：
//   - store.MemoryCatalog（测试/开发/原型）
//   - store.RedisCatalog（生产常用）
type CatalogStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// GetProduct 按 ID 读取单个产品
	GetProduct(ctx context.Context, id string) (*ProductVector, error)

	// BatchGetProducts 批量读取（减少网络往返）
	BatchGetProducts(ctx context.Context, ids []string) (map[string]*ProductVector, error)

	// ListByCategory 按品类读取产品，按价格升序返回（平替检索常用）
	ListByCategory(ctx context.Context, category string) ([]*ProductVector, error)

	// ListProducts 读取全量候选池
	ListProducts(ctx context.Context) ([]*ProductVector, error)

	// PutProduct 写入/覆盖单个产品
	PutProduct(ctx context.Context, p *ProductVector) error

	// Close 关闭连接/释放资源
	Close() error
}

// ProfileSource 是用户画像来源的领域接口，由画像方（特征存储等）实现。
type ProfileSource interface {
	// Name 返回画像来源名称
	Name() string

	// GetUserVector 构造某个用户的决策画像
	GetUserVector(ctx context.Context, userID string) (*UserVector, error)
}

// 存储错误定义（使用统一的 DomainError）
var (
	// ErrCatalogNotFound 表示产品不存在
	ErrCatalogNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "catalog: product not found")

	// ErrStoreNotSupported 表示后端不支持该操作
	ErrStoreNotSupported = NewDomainError(ModuleStore, ErrorCodeNotSupported, "store: operation not supported")
)
