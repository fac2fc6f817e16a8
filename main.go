package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ByLCY/chronotype/clock"
	"github.com/ByLCY/chronotype/display"
	"github.com/ByLCY/chronotype/layout"
	"github.com/ByLCY/chronotype/quotes"
	"github.com/ByLCY/chronotype/render"
	canvasrenderer "github.com/ByLCY/chronotype/render/canvas"
	"github.com/ByLCY/chronotype/theme"
)

// retryDelay 是一分钟内渲染失败后的重试间隔。
const retryDelay = 30 * time.Second

func main() {
	themePath := flag.String("theme", "theme.chronotype", "主题文件路径")
	quotesPath := flag.String("quotes", "quotes.tsv", "引文库文件路径")
	output := flag.String("out", "time_image.png", "PNG 输出路径，可含 ${time}/${date} 占位符")
	fixedTime := flag.String("time", "", "渲染指定时刻 (HH:MM) 后退出")
	useNTP := flag.Bool("ntp", false, "使用 NTP 校准时钟")
	ntpServer := flag.String("ntp-server", "", "自定义 NTP 服务器（优先于内置列表）")
	useInky := flag.Bool("inky", false, "输出到 Inky 墨水屏")
	inkyModel := flag.String("inky-model", "phat", "墨水屏型号 (phat/what)")
	fullscreen := flag.Bool("fullscreen", false, "输出到全屏窗口")
	interval := flag.Bool("interval", false, "每分钟持续渲染")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	flag.Parse()

	cfg, err := theme.Load(*themePath)
	if err != nil {
		log.Fatalf("加载主题失败: %v", err)
	}
	store, err := quotes.Load(*quotesPath)
	if err != nil {
		log.Fatalf("加载引文库失败: %v", err)
	}
	log.Printf("引文库就绪：%d 条记录", store.Len())

	var source clock.Source = clock.Local{}
	if *useNTP {
		source = &clock.NTP{Server: *ntpServer}
	}

	app := &app{
		cfg:       cfg,
		store:     store,
		source:    source,
		renderer:  canvasrenderer.NewRenderer(cfg.Fonts),
		debugPath: *debug,
	}

	var fs *display.FullscreenSink
	app.sinks = append(app.sinks, display.NewFileSink(*output))
	if *useInky {
		epaper, err := display.NewEPaperSink(*inkyModel)
		if err != nil {
			log.Fatalf("初始化墨水屏失败: %v", err)
		}
		app.sinks = append(app.sinks, epaper)
	}
	if *fullscreen {
		fs = display.NewFullscreenSink("chronotype")
		app.sinks = append(app.sinks, fs)
	}
	defer app.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *fixedTime != "":
		if err := app.renderKey(*fixedTime); err != nil {
			log.Fatalf("渲染失败: %v", err)
		}
		log.Printf("已生成 %s 的画面", *fixedTime)
	case *interval || *fullscreen:
		if fs != nil {
			// 事件循环必须占据主 goroutine，渲染循环放到后台
			go func() {
				app.runInterval(ctx)
				stop()
			}()
			if err := fs.Run(); err != nil {
				log.Fatalf("全屏窗口退出: %v", err)
			}
		} else {
			app.runInterval(ctx)
		}
	default:
		if err := app.renderNow(); err != nil {
			log.Fatalf("渲染失败: %v", err)
		}
	}
}

// app 串联时钟、引文库、布局、渲染与各个输出后端。
type app struct {
	cfg       layout.Config
	store     *quotes.Store
	source    clock.Source
	renderer  render.Renderer
	sinks     []display.Sink
	debugPath string
}

// renderNow 渲染当前时刻的画面。
func (a *app) renderNow() error {
	now, err := a.source.Now()
	if err != nil {
		return fmt.Errorf("获取时间失败: %w", err)
	}
	return a.renderKey(clock.Key(now))
}

// renderKey 渲染指定时间键的画面并推到所有输出后端。
// 该时刻没有引文时不算错误，跳过本帧。
func (a *app) renderKey(key string) error {
	rec, ok := a.store.Lookup(key)
	if !ok {
		log.Printf("时刻 %s 没有对应的引文，跳过", key)
		return nil
	}

	m, ok := a.renderer.(layout.Measurer)
	if !ok {
		return fmt.Errorf("渲染器未实现文本测量接口")
	}
	result, err := layout.Build(rec.Quote(), a.cfg, layout.BuildOptions{Measurer: m})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}
	if a.debugPath != "" {
		if err := layout.WriteDebugJSON(result, a.debugPath); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	img, err := a.renderer.Render(result)
	if err != nil {
		return fmt.Errorf("渲染失败: %w", err)
	}
	for _, sink := range a.sinks {
		if err := sink.Display(img); err != nil {
			return err
		}
	}
	return nil
}

// runInterval 每分钟渲染一次，直到收到退出信号。
// 渲染失败时隔 retryDelay 在同一分钟内重试。
func (a *app) runInterval(ctx context.Context) {
	var lastKey string
	var retryAt time.Time

	if err := a.renderNow(); err != nil {
		log.Printf("渲染失败: %v", err)
		retryAt = time.Now().Add(retryDelay)
	} else if now, err := a.source.Now(); err == nil {
		lastKey = clock.Key(now)
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Print("收到退出信号，停止渲染")
			return
		case <-ticker.C:
		}

		now, err := a.source.Now()
		if err != nil {
			log.Printf("获取时间失败: %v", err)
			continue
		}
		key := clock.Key(now)
		if key == lastKey && (retryAt.IsZero() || time.Now().Before(retryAt)) {
			continue
		}
		if err := a.renderKey(key); err != nil {
			log.Printf("渲染失败: %v", err)
			retryAt = time.Now().Add(retryDelay)
			continue
		}
		lastKey = key
		retryAt = time.Time{}
	}
}

// close 释放所有输出后端。
func (a *app) close() {
	for _, sink := range a.sinks {
		if err := sink.Close(); err != nil {
			log.Printf("关闭输出后端失败: %v", err)
		}
	}
}
