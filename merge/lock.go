package merge

import "github.com/rushteam/skinkit/core"

// maxLockedRows 锁定行数的上限，对应首屏可见区的最大行数。
const maxLockedRows = 12

// LockTopN 把新一轮结果合并进当前列表，同时保持当前前 n 行的身份不动。
// 锁定行若在新结果中再次出现，则刷新为新结果里的同身份行（分数、标签取新值）；
// 锁定行之后按新结果的顺序追加，跳过会与锁定身份重复的行。
// n 越界时收敛到 [0, 12]；两侧输入均不被修改。
func LockTopN(current, next []*core.Candidate, n int) []*core.Candidate {
	if n < 0 {
		n = 0
	}
	if n > maxLockedRows {
		n = maxLockedRows
	}
	lockCount := n
	if lockCount > len(current) {
		lockCount = len(current)
	}
	if lockCount == 0 {
		return append([]*core.Candidate(nil), next...)
	}

	nextByKey := make(map[string]*core.Candidate, len(next))
	for i, c := range next {
		key := MergeKey(c, i)
		if _, ok := nextByKey[key]; !ok {
			nextByKey[key] = c
		}
	}

	merged := make([]*core.Candidate, 0, lockCount+len(next))
	locked := make(map[string]struct{}, lockCount)
	for i := 0; i < lockCount; i++ {
		key := MergeKey(current[i], i)
		locked[key] = struct{}{}
		if refreshed, ok := nextByKey[key]; ok {
			merged = append(merged, refreshed)
		} else {
			merged = append(merged, current[i])
		}
	}
	for i, c := range next {
		if _, ok := locked[MergeKey(c, i)]; ok {
			continue
		}
		merged = append(merged, c)
	}
	return merged
}

// Payload 是增量合并的载荷：若干命名结果块加一个浅层元信息袋。
// 块名由上游约定（如 "recommendations"、"dupes"），合并引擎不关心块的语义。
type Payload struct {
	Blocks map[string][]*core.Candidate `json:"blocks"`
	Meta   map[string]any               `json:"meta,omitempty"`
}

// MergePayload 按块合并补丁：每个块各自走 LockTopN，元信息做浅合并且补丁优先。
// current 与 patch 均可为 nil；返回的是新载荷，不共享两侧的 map。
func MergePayload(current, patch *Payload, n int) *Payload {
	merged := &Payload{Blocks: map[string][]*core.Candidate{}}

	if current != nil {
		for name, rows := range current.Blocks {
			merged.Blocks[name] = append([]*core.Candidate(nil), rows...)
		}
		if len(current.Meta) > 0 {
			merged.Meta = make(map[string]any, len(current.Meta))
			for k, v := range current.Meta {
				merged.Meta[k] = v
			}
		}
	}
	if patch == nil {
		return merged
	}

	for name, rows := range patch.Blocks {
		merged.Blocks[name] = LockTopN(merged.Blocks[name], rows, n)
	}
	if len(patch.Meta) > 0 {
		if merged.Meta == nil {
			merged.Meta = make(map[string]any, len(patch.Meta))
		}
		for k, v := range patch.Meta {
			merged.Meta[k] = v
		}
	}
	return merged
}
