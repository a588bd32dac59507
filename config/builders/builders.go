// Package builders 在 init 中注册内置 Node 的配置构建器。
// 使用配置驱动时在入口处空导入本包：
//
//	import _ "github.com/rushteam/skinkit/config/builders"
//
// 依赖外部资源的 Node（recall.catalog / recall.dupes / filter 的 avoid 存储）
// 需要先通过 UseCatalog 注入目录实例，再调用 DefaultFactory 构建。
package builders

import (
	"fmt"
	"sync"
	"time"

	"github.com/rushteam/skinkit/config"
	"github.com/rushteam/skinkit/core"
	"github.com/rushteam/skinkit/filter"
	"github.com/rushteam/skinkit/pipeline"
	"github.com/rushteam/skinkit/pkg/conv"
	"github.com/rushteam/skinkit/rank"
	"github.com/rushteam/skinkit/recall"
	"github.com/rushteam/skinkit/rerank"
)

var (
	catalogMu sync.RWMutex
	catalog   core.CatalogStore
)

// UseCatalog 注入配置驱动 Node 共用的目录实例。
// 必须在 BuildPipeline 之前调用，否则依赖目录的 Node 构建失败。
func UseCatalog(store core.CatalogStore) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog = store
}

func currentCatalog() (core.CatalogStore, error) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	if catalog == nil {
		return nil, fmt.Errorf("catalog store not injected: call builders.UseCatalog first")
	}
	return catalog, nil
}

func init() {
	config.Register("recall.catalog", buildCatalogNode)
	config.Register("recall.dupes", buildDupesNode)
	config.Register("recall.fanout", buildFanoutNode)
	config.Register("rank.suitability", buildSuitabilityNode)
	config.Register("rerank.topn", buildTopNNode)
	config.Register("rerank.stable", buildStableNode)
	config.Register("rerank.diversity", buildDiversityNode)
	config.Register("filter", buildFilterNode)
}

func buildCatalogNode(cfg map[string]interface{}) (pipeline.Node, error) {
	store, err := currentCatalog()
	if err != nil {
		return nil, err
	}
	return &recall.Catalog{
		Store:    store,
		Category: conv.ConfigGet[string](cfg, "category", ""),
		Limit:    int(conv.ConfigGetInt64(cfg, "limit", 0)),
	}, nil
}

func buildDupesNode(cfg map[string]interface{}) (pipeline.Node, error) {
	store, err := currentCatalog()
	if err != nil {
		return nil, err
	}
	return &recall.Dupes{
		Store:    store,
		AnchorID: conv.ConfigGet[string](cfg, "anchor_id", ""),
		Limit:    int(conv.ConfigGetInt64(cfg, "limit", 0)),
	}, nil
}

func buildFanoutNode(cfg map[string]interface{}) (pipeline.Node, error) {
	sourcesConfig, ok := cfg["sources"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("sources not found or invalid")
	}

	sources := make([]recall.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceMap, ok := sc.(map[string]interface{})
		if !ok {
			continue
		}
		sourceType := conv.ConfigGet[string](sourceMap, "type", "")
		switch sourceType {
		case "catalog":
			node, err := buildCatalogNode(sourceMap)
			if err != nil {
				return nil, err
			}
			sources = append(sources, node.(*recall.Catalog))
		case "dupes":
			node, err := buildDupesNode(sourceMap)
			if err != nil {
				return nil, err
			}
			sources = append(sources, node.(*recall.Dupes))
		default:
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
	}

	fanout := &recall.Fanout{
		Sources:       sources,
		Dedup:         conv.ConfigGet[bool](cfg, "dedup", true),
		MergeStrategy: conv.ConfigGet[string](cfg, "merge_strategy", ""),
	}
	if sec := conv.ConfigGetInt64(cfg, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	if n := conv.ConfigGetInt64(cfg, "max_concurrent", 0); n > 0 {
		fanout.MaxConcurrent = int(n)
	}
	return fanout, nil
}

func buildSuitabilityNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rank.SuitabilityNode{
		MaxConcurrent: int(conv.ConfigGetInt64(cfg, "max_concurrent", 0)),
		DropVetoed:    conv.ConfigGet[bool](cfg, "drop_vetoed", false),
	}, nil
}

func buildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.TopNNode{
		N: int(conv.ConfigGetInt64(cfg, "n", 0)),
	}, nil
}

func buildStableNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.StableNode{
		N: int(conv.ConfigGetInt64(cfg, "n", 0)),
	}, nil
}

func buildDiversityNode(cfg map[string]interface{}) (pipeline.Node, error) {
	labelKey := conv.ConfigGet[string](cfg, "label_key", "category")
	if labelKey == "" {
		labelKey = "category"
	}
	return &rerank.Diversity{LabelKey: labelKey}, nil
}

func buildFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]interface{})
		if !ok {
			continue
		}
		filterType := conv.ConfigGet[string](filterMap, "type", "")
		switch filterType {
		case "veto":
			filters = append(filters, &filter.VetoFilter{})

		case "budget":
			filters = append(filters, &filter.BudgetFilter{})

		case "rule":
			expr := conv.ConfigGet[string](filterMap, "expr", "")
			rf, err := filter.NewRuleFilter(expr)
			if err != nil {
				return nil, fmt.Errorf("rule filter: %w", err)
			}
			filters = append(filters, rf)

		case "avoid":
			ids := conv.SliceAnyToString(filterMap["ids"])
			if ids == nil {
				ids = []string{}
			}
			af := &filter.AvoidFilter{
				IDs:       ids,
				KeyPrefix: conv.ConfigGet[string](filterMap, "key_prefix", ""),
			}
			if store, err := currentCatalog(); err == nil {
				if kv, ok := store.(filter.KVGetter); ok {
					af.Store = filter.NewStoreAdapter(kv)
				}
			}
			filters = append(filters, af)

		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}
