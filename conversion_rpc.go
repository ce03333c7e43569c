package nanorpc

import (
	"context"

	"github.com/nanorpc/v1/core/command"
)

// ===== 单位换算命令 =====
// 金额换算在节点侧完成，amount 以字符串表达以避免精度丢失。

// NanoToRaw 把 nano 单位金额换算为 raw
func (c *Client) NanoToRaw(ctx context.Context, amount string) (Reply, error) {
	return c.call(ctx, "nano_to_raw", command.Args{"amount": amount})
}

// RawToNano 把 raw 单位金额换算为 nano
func (c *Client) RawToNano(ctx context.Context, amount string) (Reply, error) {
	return c.call(ctx, "raw_to_nano", command.Args{"amount": amount})
}
