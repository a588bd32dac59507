package store

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.CatalogStore 接口。
//
// 示例：
//   var catalog core.CatalogStore = NewMemoryCatalog()
//   var catalog core.CatalogStore = NewRedisCatalog("127.0.0.1:6379", 0)
