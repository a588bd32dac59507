// Package merge 实现推荐结果的增量合并：首屏列表先展示，
// 慢速富化流水线稍后重算时，把补丁"贴"进已渲染列表而不打乱用户正在看的内容。
package merge

import (
	"strconv"

	"github.com/rushteam/skinkit/core"
)

// keyExtractor 从候选行提取一种合并键；提取不到时返回空串。
type keyExtractor func(c *core.Candidate, pos int) string

// keyExtractors 是合并键的固定回退链：显式 ID → 名称 → 备用 ID → 位置下标。
// 位置下标永远成功，所以 MergeKey 是全函数：缺 ID 的行也能确定性合并，不会崩。
// 各级键带类型前缀，避免"ID 恰好等于某个名称"之类的跨级碰撞。
var keyExtractors = []keyExtractor{
	func(c *core.Candidate, _ int) string {
		if c.ID != "" {
			return "id:" + c.ID
		}
		if c.Product != nil && c.Product.ID != "" {
			return "id:" + c.Product.ID
		}
		return ""
	},
	func(c *core.Candidate, _ int) string {
		if c.Name != "" {
			return "name:" + c.Name
		}
		if c.Product != nil && c.Product.Name != "" {
			return "name:" + c.Product.Name
		}
		return ""
	},
	func(c *core.Candidate, _ int) string {
		if c.AltID != "" {
			return "alt:" + c.AltID
		}
		return ""
	},
	func(_ *core.Candidate, pos int) string {
		return "pos:" + strconv.Itoa(pos)
	},
}

// MergeKey 计算候选行的稳定合并键：按回退链依次尝试，首个非空结果生效。
// 合并引擎只把候选行当不透明记录，键以外的字段一概不解释。
func MergeKey(c *core.Candidate, pos int) string {
	if c == nil {
		return "pos:" + strconv.Itoa(pos)
	}
	for _, extract := range keyExtractors {
		if key := extract(c, pos); key != "" {
			return key
		}
	}
	// 回退链以位置键收尾，这里不可达；保底返回位置键。
	return "pos:" + strconv.Itoa(pos)
}
