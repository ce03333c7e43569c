package command

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// BlockValue 区块取值：既可以是预序列化的线上文本，也可以是结构化区块。
// 接受结构化形式的命令在需要时（sign）将其规范化为线上文本后再插入载荷。
type BlockValue interface {
	blockValue()
}

// RawBlock 预序列化的区块文本
type RawBlock string

func (RawBlock) blockValue() {}

// Block 结构化状态区块。序列化时字段顺序固定，产出规范文本。
type Block struct {
	Type           string `json:"type"`
	Account        string `json:"account,omitempty"`
	Previous       string `json:"previous,omitempty"`
	Representative string `json:"representative,omitempty"`
	Balance        string `json:"balance,omitempty"`
	Link           string `json:"link,omitempty"`
	Signature      string `json:"signature,omitempty"`
	Work           string `json:"work,omitempty"`
}

func (*Block) blockValue() {}

// canonicalBlock 将区块取值规范化为线上文本形式
func canonicalBlock(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case RawBlock:
		return string(x), nil
	case *Block:
		if x == nil {
			return "", nil
		}
		data, err := json.Marshal(x)
		if err != nil {
			return "", fmt.Errorf("serialize block: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported block value %T", v)
	}
}
