package nanorpc

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Reply 节点回复解码后的通用结果：字段名到取值的映射。
// 解码对成功与节点报错一视同仁：格式良好的回复中出现的 "error" 字段
// 是数据而非异常，由调用方通过 NodeError 检查。只有传输层故障才以
// error 形式返回。
type Reply map[string]any

// decodeReply 解析原始回复字节。两种传输模式共用同一解码路径。
func decodeReply(raw []byte) (Reply, error) {
	var r Reply
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}
	return r, nil
}

// NodeError 返回节点在回复中报告的错误消息；无错误时返回空串。
// 消息原样透传，不作解释。
func (r Reply) NodeError() string {
	if v, ok := r["error"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}

// String 返回指定字段的字符串取值；字段缺失或非字符串时返回空串。
// 节点协议中的数值普遍以字符串形式表达，此方法覆盖绝大多数读取场景。
func (r Reply) String(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Map 返回指定字段的嵌套对象；字段缺失或非对象时返回 nil。
func (r Reply) Map(key string) map[string]any {
	if v, ok := r[key]; ok {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return nil
}
