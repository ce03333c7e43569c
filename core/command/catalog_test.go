package command

import (
	"testing"
)

// sampleValue 为必填字段合成一个类型合适的占位取值
func sampleValue(name string) any {
	switch name {
	case "accounts", "hashes":
		return []string{"nano_1abc"}
	case "index", "port", "epoch", "min_read_time", "min_write_time":
		return 7
	case "block":
		return RawBlock(`{"type":"state"}`)
	default:
		return "x"
	}
}

// truthySample 为可选字段合成一个类型合适的非零取值
func truthySample(name string) any {
	switch name {
	case "accounts", "account_filter":
		return []string{"nano_1abc"}
	case "count", "offset", "threshold", "index", "multiplier", "sources",
		"destinations", "announcements", "modified_since", "threads", "port":
		return 7
	case "raw", "reverse", "source", "include_active", "sorting", "pending",
		"weight", "representative", "receivable", "peer_details", "use_peers",
		"json_block", "force", "async", "include_confirmed", "min_version",
		"include_not_found", "bypass_frontier_confirmation",
		"update_existing_accounts", "representatives", "work":
		return true
	default:
		return "x"
	}
}

// zeroSample 返回与 truthySample 同型的零值
func zeroSample(name string) any {
	switch truthySample(name).(type) {
	case []string:
		return []string{}
	case int:
		return 0
	case bool:
		return false
	default:
		return ""
	}
}

// requiredArgs 仅含一条命令全部必填字段的参数集
func requiredArgs(s *spec) Args {
	args := Args{}
	for _, f := range s.fields {
		if f.pol == emitRequired {
			args[f.name] = sampleValue(f.name)
		}
	}
	return args
}

// TestCatalogEverySpecBuilds 目录中每条命令仅凭必填字段即可构建，
// 且构建结果包含 action 与全部必填字段。
func TestCatalogEverySpecBuilds(t *testing.T) {
	if len(catalog) < 80 {
		t.Fatalf("catalog unexpectedly small: %d commands", len(catalog))
	}
	for action, s := range catalog {
		t.Run(action, func(t *testing.T) {
			args := Args{}
			var required []string
			for _, f := range s.fields {
				if f.pol == emitRequired {
					args[f.name] = sampleValue(f.name)
					required = append(required, f.name)
				}
			}
			p, err := Build(action, args)
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}
			if v, _ := p.Get("action"); v != action {
				t.Errorf("action = %v, want %s", v, action)
			}
			for _, name := range required {
				if !p.Has(name) {
					t.Errorf("required field %q missing from payload", name)
				}
			}
			if _, err := p.Encode(); err != nil {
				t.Errorf("Encode error: %v", err)
			}
		})
	}
}

// TestCatalogActionsBound init 后每条规格都携带自身的命令名
func TestCatalogActionsBound(t *testing.T) {
	for action, s := range catalog {
		if s.action != action {
			t.Errorf("spec for %q carries action %q", action, s.action)
		}
	}
}

// TestCatalogConstFieldsIgnoreCaller 常量字段不接受调用方覆盖
func TestCatalogConstFieldsIgnoreCaller(t *testing.T) {
	p, err := Build("block_create", Args{
		"balance": "1", "representative": "nano_1rep", "previous": "0",
		"type": "open",
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if v, _ := p.Get("type"); v != "state" {
		t.Errorf("type = %v, want state", v)
	}
}

// TestCatalogInverseBooleanSweep 全目录反极性布尔字段：缺省与显式 true 均不上线，
// 仅显式 false 以 false 形式上线。
func TestCatalogInverseBooleanSweep(t *testing.T) {
	swept := 0
	for action, s := range catalog {
		for _, f := range s.fields {
			if f.pol != emitDiff {
				continue
			}
			swept++
			t.Run(action+"/"+f.name, func(t *testing.T) {
				p, err := Build(action, requiredArgs(s))
				if err != nil {
					t.Fatalf("Build error: %v", err)
				}
				if p.Has(f.name) {
					t.Errorf("unsupplied %q should be absent", f.name)
				}

				args := requiredArgs(s)
				args[f.name] = true
				p, err = Build(action, args)
				if err != nil {
					t.Fatalf("Build error: %v", err)
				}
				if p.Has(f.name) {
					t.Errorf("%q at its default true should be absent", f.name)
				}

				args = requiredArgs(s)
				args[f.name] = false
				p, err = Build(action, args)
				if err != nil {
					t.Fatalf("Build error: %v", err)
				}
				if v, ok := p.Get(f.name); !ok || v != false {
					t.Errorf("%q = %v (present=%v), want explicit false", f.name, v, ok)
				}
			})
		}
	}
	if swept == 0 {
		t.Fatal("no inverse boolean fields swept")
	}
}

// TestCatalogOmitDefaultSweep 全目录省缺可选字段：零值不上线，非零值原样上线。
func TestCatalogOmitDefaultSweep(t *testing.T) {
	swept := 0
	for action, s := range catalog {
		for _, f := range s.fields {
			if f.pol != emitNonZero {
				continue
			}
			swept++
			t.Run(action+"/"+f.name, func(t *testing.T) {
				// 未提供时，是否上线取决于字段自身的声明默认值
				p, err := Build(action, requiredArgs(s))
				if err != nil {
					t.Fatalf("Build error: %v", err)
				}
				if p.Has(f.name) != truthy(f.def) {
					t.Errorf("unsupplied %q: present=%v, declared default %v", f.name, p.Has(f.name), f.def)
				}

				args := requiredArgs(s)
				args[f.name] = zeroSample(f.name)
				p, err = Build(action, args)
				if err != nil {
					t.Fatalf("Build error: %v", err)
				}
				if p.Has(f.name) {
					t.Errorf("zero-valued %q should be absent", f.name)
				}

				args = requiredArgs(s)
				want := truthySample(f.name)
				args[f.name] = want
				if f.requires != "" {
					args[f.requires] = truthySample(f.requires)
				}
				p, err = Build(action, args)
				if err != nil {
					t.Fatalf("Build error: %v", err)
				}
				v, ok := p.Get(f.name)
				if !ok {
					t.Fatalf("supplied %q should be present", f.name)
				}
				if _, isList := want.([]string); !isList && v != want {
					t.Errorf("%q = %v, want %v", f.name, v, want)
				}
			})
		}
	}
	if swept == 0 {
		t.Fatal("no omit-if-default fields swept")
	}
}

// TestCatalogExclusionGroupSweep 全目录互斥组：全员提供时仅声明序首个成员上线，
// 仅提供低优先级成员时该成员独自上线。
func TestCatalogExclusionGroupSweep(t *testing.T) {
	swept := 0
	for action, s := range catalog {
		for _, group := range s.groups {
			swept++
			t.Run(action, func(t *testing.T) {
				args := requiredArgs(s)
				for _, name := range group {
					args[name] = truthySample(name)
				}
				p, err := Build(action, args)
				if err != nil {
					t.Fatalf("Build error: %v", err)
				}
				if !p.Has(group[0]) {
					t.Errorf("highest-precedence member %q should win", group[0])
				}
				for _, name := range group[1:] {
					if p.Has(name) {
						t.Errorf("losing member %q should be suppressed", name)
					}
				}

				last := group[len(group)-1]
				args = requiredArgs(s)
				args[last] = truthySample(last)
				p, err = Build(action, args)
				if err != nil {
					t.Fatalf("Build error: %v", err)
				}
				if !p.Has(last) {
					t.Errorf("sole supplied member %q should be emitted", last)
				}
				for _, name := range group[:len(group)-1] {
					if p.Has(name) {
						t.Errorf("unsupplied member %q should be absent", name)
					}
				}
			})
		}
	}
	if swept == 0 {
		t.Fatal("no exclusion groups swept")
	}
}

func TestActions(t *testing.T) {
	actions := Actions()
	if len(actions) != len(catalog) {
		t.Fatalf("Actions() returned %d names, catalog has %d", len(actions), len(catalog))
	}
	seen := make(map[string]bool, len(actions))
	for _, a := range actions {
		if seen[a] {
			t.Errorf("duplicate action %q", a)
		}
		seen[a] = true
	}
	for _, known := range []string{"account_balance", "send", "nano_to_raw", "work_generate"} {
		if !seen[known] {
			t.Errorf("action %q missing", known)
		}
	}
}
