package monobank

import "time"

// Clock 用于可测试的时间来源（X-Time 与缺省的 statement 截止时间）。
type Clock interface {
	Now() time.Time
}

// realClock 使用 time.Now。
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
