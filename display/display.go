// Package display 定义渲染结果的输出后端：文件、墨水屏与全屏窗口。
package display

import "image"

// Sink 接收渲染好的位图并呈现出来。
type Sink interface {
	// Display 呈现一帧画面。
	Display(img image.Image) error
	// Close 释放后端占用的资源。
	Close() error
}
