package merge

import (
	"context"
	"sync"
	"time"
)

// FetchFunc 拉取一轮增量结果：入参是当前版本游标，返回补丁与服务端新版本号。
// 返回 nil 补丁表示这一轮没有增量。
type FetchFunc func(ctx context.Context, sinceVersion int64) (*Payload, int64, error)

// ApplyFunc 把拉到的补丁交给持有者落地（通常是 MergePayload 后刷新展示层）。
type ApplyFunc func(patch *Payload, version int64)

// 轮询器状态机。任一时刻只处于其中一个状态，且最多一个在途请求。
type pollState int

const (
	stateIdle      pollState = iota // 尚未启动
	stateInFlight                   // 一次拉取正在进行
	stateScheduled                  // 定时器已挂，等待下一次拉取
	stateStopped                    // 已停止，不再发起新的拉取
)

// Poller 按固定间隔轮询增量补丁。没有退避、没有重试上限：
// 单次失败只是把下一轮照常挂上，节奏恒定。版本游标单调不减，
// 服务端返回更小的版本号时游标保持原值。
type Poller struct {
	interval time.Duration
	fetch    FetchFunc
	apply    ApplyFunc

	mu    sync.Mutex
	state pollState
	timer *time.Timer
	since int64
	ctx   context.Context
}

// NewPoller 构造轮询器；interval 非正时回退到 30 秒。
func NewPoller(interval time.Duration, fetch FetchFunc, apply ApplyFunc) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{interval: interval, fetch: fetch, apply: apply}
}

// Start 启动轮询，立即发起第一次拉取。重复 Start 与停止后的 Start 均为空操作。
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.state != stateIdle {
		p.mu.Unlock()
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	p.ctx = ctx
	p.state = stateInFlight
	p.mu.Unlock()

	go p.attempt()
}

// Stop 停止轮询：取消已挂的定时器，之后不再发起新的拉取。
// 不打断在途请求，该请求照常完成并落地，只是不再续期。
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.state = stateStopped
}

// SinceVersion 返回当前版本游标，便于观察与测试。
func (p *Poller) SinceVersion() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.since
}

// attempt 执行一次拉取并决定是否续期。拉取在锁外进行，
// 所以 Stop 永远不会被慢请求卡住。
func (p *Poller) attempt() {
	p.mu.Lock()
	if p.state == stateStopped {
		p.mu.Unlock()
		return
	}
	p.state = stateInFlight
	p.timer = nil
	since := p.since
	ctx := p.ctx
	p.mu.Unlock()

	patch, version, err := p.fetch(ctx, since)
	if err == nil && patch != nil && p.apply != nil {
		p.apply(patch, version)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err == nil && version > p.since {
		p.since = version
	}
	if p.state == stateStopped {
		return
	}
	p.state = stateScheduled
	p.timer = time.AfterFunc(p.interval, p.attempt)
}
