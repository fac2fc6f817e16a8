// Package clock 提供渲染用的时间来源：本地时钟或 NTP 校准后的时钟。
package clock

import (
	"fmt"
	"log"
	"time"

	"github.com/beevik/ntp"
)

// Source 是时间来源。Now 返回当前时间；来源不可用时返回错误。
type Source interface {
	Now() (time.Time, error)
}

// Key 把时间转换为引文库的查询键（HH:MM，24 小时制）。
func Key(t time.Time) string {
	return t.Format("15:04")
}

// Local 直接使用系统时钟。
type Local struct{}

func (Local) Now() (time.Time, error) { return time.Now(), nil }

// defaultServers 是 NTP 服务器的逐个尝试顺序。
var defaultServers = []string{
	"time.google.com",
	"time.windows.com",
	"time.apple.com",
	"pool.ntp.org",
	"time.nist.gov",
}

// DefaultTimeout 是单台 NTP 服务器的查询超时。
const DefaultTimeout = 5 * time.Second

// NTP 逐个查询 NTP 服务器，全部失败时回退到本地时钟。
// 指定 Server 时优先尝试该服务器，再尝试内置列表。
type NTP struct {
	Server  string
	Timeout time.Duration

	// query 可注入以便测试，默认走网络。
	query func(server string, timeout time.Duration) (time.Time, error)
}

// Now 返回 NTP 校准后的当前时间。所有服务器都失败时记录一条日志并
// 回退到本地时钟，而不是报错：时钟画面晚一点不准好过不出画面。
func (n *NTP) Now() (time.Time, error) {
	timeout := n.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	query := n.query
	if query == nil {
		query = queryNTP
	}

	servers := defaultServers
	if n.Server != "" {
		servers = append([]string{n.Server}, servers...)
	}
	for _, server := range servers {
		t, err := query(server, timeout)
		if err != nil {
			log.Printf("NTP 服务器 %s 查询失败: %v", server, err)
			continue
		}
		return t, nil
	}
	log.Print("所有 NTP 服务器均不可用，回退到本地时钟")
	return time.Now(), nil
}

// queryNTP 查询一台 NTP 服务器并用时钟偏移修正本地时间。
func queryNTP(server string, timeout time.Duration) (time.Time, error) {
	resp, err := ntp.QueryWithOptions(server, ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		return time.Time{}, err
	}
	if err := resp.Validate(); err != nil {
		return time.Time{}, fmt.Errorf("响应校验失败: %w", err)
	}
	return time.Now().Add(resp.ClockOffset), nil
}
