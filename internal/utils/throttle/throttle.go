package throttle

import (
	"context"
	"time"

	"MobyExport/internal/interfaces"
)

// FixedDelay 每次 Wait 都固定等待 delay（包括第一次请求之前）
type FixedDelay struct {
	delay time.Duration
	sleep func(ctx context.Context, d time.Duration) error
}

var _ interfaces.Limiter = (*FixedDelay)(nil)

func NewFixedDelay(delay time.Duration) *FixedDelay {
	return &FixedDelay{delay: delay, sleep: sleepContext}
}

// Delay 当前等待间隔
func (f *FixedDelay) Delay() time.Duration {
	return f.delay
}

// Wait 等待 delay，ctx 取消时提前返回 ctx.Err()
func (f *FixedDelay) Wait(ctx context.Context) error {
	if f.delay <= 0 {
		return ctx.Err()
	}
	return f.sleep(ctx, f.delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Noop 不等待，用于测试或关闭节流
type Noop struct{}

func (Noop) Wait(ctx context.Context) error {
	return ctx.Err()
}
