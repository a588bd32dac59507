// Package skinkit 是一个护肤决策引擎工具包（Skincare Decision Kit）。
//
// 设计要点：
// - Pipeline-first: 决策逻辑通过 Node 串联（Recall → Filter → Rank → ReRank）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - 纯函数核心: 打分 / 平替 / 冲突 / 合并四个引擎不做 I/O，坏数据退化不报错
package skinkit

import "github.com/rushteam/skinkit/pipeline"

// 轻量 facade：便于用户直接 import "skinkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
