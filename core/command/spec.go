// Package command 定义节点命令目录与载荷构建器。
//
// 原始协议的每条命令都是一个扁平 JSON 对象，首字段 "action" 为命令名，
// 其余字段按各命令的规则选择性出现。本包将全部命令的字段规则收敛为一张
// 声明式目录表（catalog.go），由唯一的构建器统一执行，客户端方法只负责
// 收集调用方提供的参数。
package command

import (
	"fmt"
)

// policy 可选字段的发射策略
type policy int

const (
	// emitRequired 必填字段，无条件发射，缺失即构建失败
	emitRequired policy = iota
	// emitConst 常量字段，取目录中声明的固定值
	emitConst
	// emitAlways 无条件发射，未提供时取声明默认值（如多数 count 字段）
	emitAlways
	// emitNonZero 仅在取值非零/非空时发射
	emitNonZero
	// emitDiff 仅在取值不等于声明默认值时发射（反极性布尔字段：默认 true，仅传 false 时上线）
	emitDiff
	// emitEnum 仅在取值属于枚举集合时发射（version 字段）
	emitEnum
)

// field 目录中一个字段的完整规则
type field struct {
	name string
	pol  policy
	def  any      // 声明默认值
	enum []string // emitEnum 的合法取值
	// gates 非空时，任一门控字段被发射则本字段发射（republish 的共享 count）
	gates []string
	// requires 非空时，仅当该字段已发射才允许发射（work_generate 的 json_block）
	requires string
	// canon 结构化区块值在发射前序列化为规范文本（sign）
	canon bool
}

// spec 一条命令的完整规格
type spec struct {
	action string
	fields []field
	// groups 互斥组：每组内按声明优先级取第一个有值成员，其余抑制
	groups [][]string
}

// Args 调用方实际提供的字段取值。未提供的字段不在其中。
type Args map[string]any

// Build 按目录规则构建一条命令的线上载荷。
// 构建是纯函数：相同的命令与参数必然产出逐字节一致的载荷。
func Build(action string, args Args) (*Payload, error) {
	s, ok := catalog[action]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", action)
	}
	return s.build(args)
}

func (s *spec) build(args Args) (*Payload, error) {
	// 互斥组裁决：组内第一个取值为真的成员胜出
	suppressed := make(map[string]bool)
	for _, group := range s.groups {
		won := false
		for _, name := range group {
			if won {
				suppressed[name] = true
				continue
			}
			if v, ok := args[name]; ok && truthy(v) {
				won = true
			} else {
				suppressed[name] = true
			}
		}
	}

	// 第一遍：不考虑门控，决定每个字段是否发射
	emit := make(map[string]bool, len(s.fields))
	for _, f := range s.fields {
		if suppressed[f.name] {
			continue
		}
		v, supplied := args[f.name]
		if !supplied {
			v = f.def
		}
		switch f.pol {
		case emitRequired:
			if !supplied {
				return nil, fmt.Errorf("command %s: missing required field %q", s.action, f.name)
			}
			emit[f.name] = true
		case emitConst, emitAlways:
			emit[f.name] = true
		case emitNonZero:
			emit[f.name] = truthy(v)
		case emitDiff:
			emit[f.name] = supplied && v != f.def
		case emitEnum:
			str, _ := v.(string)
			for _, allowed := range f.enum {
				if str == allowed {
					emit[f.name] = true
					break
				}
			}
		}
	}

	// 第二遍：门控条件基于第一遍的发射结果
	p := newPayload(s.action)
	for _, f := range s.fields {
		on := emit[f.name]
		if len(f.gates) > 0 {
			on = false
			for _, g := range f.gates {
				if emit[g] {
					on = true
					break
				}
			}
		}
		if f.requires != "" && !emit[f.requires] {
			on = false
		}
		if !on {
			continue
		}
		v, supplied := args[f.name]
		if !supplied || f.pol == emitConst {
			v = f.def
		}
		if f.canon {
			canon, err := canonicalBlock(v)
			if err != nil {
				return nil, fmt.Errorf("command %s: field %q: %w", s.action, f.name, err)
			}
			v = canon
		}
		p.append(f.name, unwrap(v))
	}
	return p, nil
}

// truthy 判定一个取值是否视为"已提供且有效"，与原始协议的省缺语义一致
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case string:
		return x != ""
	case []string:
		return len(x) > 0
	case RawBlock:
		return x != ""
	case *Block:
		return x != nil
	default:
		return true
	}
}

// unwrap 将 BlockValue 的字符串形态还原为普通字符串；结构化区块保持嵌套对象
func unwrap(v any) any {
	if raw, ok := v.(RawBlock); ok {
		return string(raw)
	}
	return v
}
