package command

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Payload 一条命令的线上载荷：按构建顺序排列的字段序列。
// 字段顺序即目录声明顺序，序列化结果因此是确定性的。
type Payload struct {
	fields []payloadField
}

type payloadField struct {
	name  string
	value any
}

func newPayload(action string) *Payload {
	p := &Payload{}
	p.append("action", action)
	return p
}

func (p *Payload) append(name string, v any) {
	p.fields = append(p.fields, payloadField{name: name, value: v})
}

// Len 返回字段数量（含 action）
func (p *Payload) Len() int { return len(p.fields) }

// Has 判断字段是否存在
func (p *Payload) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Get 返回字段取值
func (p *Payload) Get(name string) (any, bool) {
	for _, f := range p.fields {
		if f.name == name {
			return f.value, true
		}
	}
	return nil, false
}

// Encode 序列化为线上 JSON
func (p *Payload) Encode() ([]byte, error) {
	return p.MarshalJSON()
}

// MarshalJSON 按字段声明顺序输出 JSON 对象
func (p *Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.name)
		if err != nil {
			return nil, fmt.Errorf("marshal field name %q: %w", f.name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", f.name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
