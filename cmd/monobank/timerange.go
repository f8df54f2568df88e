package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// statementFlags 为 statement 类命令共用的时间范围参数。
type statementFlags struct {
	from string
	to   string
}

func (f *statementFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "24h", "start: RFC3339, Unix seconds or a duration back from now")
	cmd.Flags().StringVar(&f.to, "to", "", "end in the same formats, empty means now")
}

func (f *statementFlags) resolve(now time.Time) (time.Time, time.Time, error) {
	from, err := parseTime(f.from, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
	}
	to, err := parseTime(f.to, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
	}
	return from, to, nil
}

// parseTime 接受 RFC3339、Unix 秒或相对 now 的回溯时长（"24h" 即 now-24h）；空串返回零值。
func parseTime(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if sec, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(sec, 0), nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		return now.Add(-d), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q as time", value)
	}
	return t, nil
}
