package command

import (
	"bytes"
	"strings"
	"testing"
)

// mustEncode 构建并序列化，失败即中止用例
func mustEncode(t *testing.T, action string, args Args) string {
	t.Helper()
	p, err := Build(action, args)
	if err != nil {
		t.Fatalf("Build(%s) error: %v", action, err)
	}
	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode(%s) error: %v", action, err)
	}
	return string(data)
}

func TestBuildUnknownCommand(t *testing.T) {
	_, err := Build("no_such_command", nil)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "no_such_command") {
		t.Errorf("error should name the command, got: %v", err)
	}
}

func TestBuildMissingRequired(t *testing.T) {
	tests := []struct {
		action  string
		args    Args
		missing string
	}{
		{"account_balance", Args{}, "account"},
		{"block_create", Args{"balance": "1"}, "representative"},
		{"send", Args{"wallet": "w", "source": "s", "destination": "d"}, "amount"},
		{"work_validate", Args{"hash": "h"}, "work"},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			_, err := Build(tt.action, tt.args)
			if err == nil {
				t.Fatal("expected missing-field error")
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("error should name field %q, got: %v", tt.missing, err)
			}
		})
	}
}

func TestBuildEmitPolicies(t *testing.T) {
	tests := []struct {
		name   string
		action string
		args   Args
		want   string
	}{
		{
			name:   "required only",
			action: "account_balance",
			args:   Args{"account": "nano_1abc"},
			want:   `{"action":"account_balance","account":"nano_1abc"}`,
		},
		{
			name:   "inverse bool emitted on false",
			action: "account_balance",
			args:   Args{"account": "nano_1abc", "include_only_confirmed": false},
			want:   `{"action":"account_balance","account":"nano_1abc","include_only_confirmed":false}`,
		},
		{
			name:   "inverse bool suppressed on default true",
			action: "account_balance",
			args:   Args{"account": "nano_1abc", "include_only_confirmed": true},
			want:   `{"action":"account_balance","account":"nano_1abc"}`,
		},
		{
			name:   "count defaults and zero options vanish",
			action: "account_history",
			args:   Args{"account": "nano_1abc", "raw": false, "offset": 0},
			want:   `{"action":"account_history","account":"nano_1abc","count":1}`,
		},
		{
			name:   "count supplied with extras",
			action: "account_history",
			args:   Args{"account": "nano_1abc", "count": 10, "raw": true, "reverse": true},
			want:   `{"action":"account_history","account":"nano_1abc","count":10,"raw":true,"reverse":true}`,
		},
		{
			name:   "list argument",
			action: "accounts_balances",
			args:   Args{"accounts": []string{"nano_1a", "nano_1b"}},
			want:   `{"action":"accounts_balances","accounts":["nano_1a","nano_1b"]}`,
		},
		{
			name:   "no-argument command",
			action: "version",
			args:   nil,
			want:   `{"action":"version"}`,
		},
		{
			name:   "nonzero default still emits",
			action: "unopened",
			args:   nil,
			want:   `{"action":"unopened","count":1}`,
		},
		{
			name:   "plain optional count omitted when zero",
			action: "receivable",
			args:   Args{"account": "nano_1abc"},
			want:   `{"action":"receivable","account":"nano_1abc"}`,
		},
		{
			name:   "gated port rides on address",
			action: "telemetry",
			args:   Args{"address": "::1"},
			want:   `{"action":"telemetry","address":"::1","port":7075}`,
		},
		{
			name:   "gated port takes supplied value",
			action: "telemetry",
			args:   Args{"address": "::1", "port": 1024},
			want:   `{"action":"telemetry","address":"::1","port":1024}`,
		},
		{
			name:   "gate closed without address",
			action: "telemetry",
			args:   Args{"raw": true, "port": 1024},
			want:   `{"action":"telemetry","raw":true}`,
		},
		{
			name:   "shared count rides on sources",
			action: "republish",
			args:   Args{"hash": "F00D", "sources": 2},
			want:   `{"action":"republish","hash":"F00D","sources":2,"count":1}`,
		},
		{
			name:   "shared count rides on destinations",
			action: "republish",
			args:   Args{"hash": "F00D", "destinations": 2, "count": 5},
			want:   `{"action":"republish","hash":"F00D","count":5,"destinations":2}`,
		},
		{
			name:   "shared count absent without either gate",
			action: "republish",
			args:   Args{"hash": "F00D", "count": 5},
			want:   `{"action":"republish","hash":"F00D"}`,
		},
		{
			name:   "version enum on default",
			action: "work_validate",
			args:   Args{"work": "2bf29ef00786a6bc", "hash": "F00D"},
			want:   `{"action":"work_validate","work":"2bf29ef00786a6bc","hash":"F00D","version":"work_1"}`,
		},
		{
			name:   "version enum rejects unknown value",
			action: "work_validate",
			args:   Args{"work": "2bf29ef00786a6bc", "hash": "F00D", "version": "work_9"},
			want:   `{"action":"work_validate","work":"2bf29ef00786a6bc","hash":"F00D"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustEncode(t, tt.action, tt.args)
			if got != tt.want {
				t.Errorf("payload mismatch\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestBuildFieldOrderMatchesRepublishGates(t *testing.T) {
	// 共享 count 按目录声明位置插在 sources 与 destinations 之间
	got := mustEncode(t, "republish", Args{"hash": "F00D", "sources": 1, "destinations": 1})
	want := `{"action":"republish","hash":"F00D","sources":1,"count":1,"destinations":1}`
	if got != want {
		t.Errorf("payload mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestBuildMutualExclusion(t *testing.T) {
	tests := []struct {
		name   string
		action string
		args   Args
		has    []string
		hasNot []string
	}{
		{
			name:   "multiplier beats difficulty",
			action: "work_generate",
			args:   Args{"hash": "F00D", "multiplier": 2, "difficulty": "ffffffc000000000"},
			has:    []string{"multiplier"},
			hasNot: []string{"difficulty"},
		},
		{
			name:   "difficulty alone survives",
			action: "work_generate",
			args:   Args{"hash": "F00D", "difficulty": "ffffffc000000000"},
			has:    []string{"difficulty"},
			hasNot: []string{"multiplier"},
		},
		{
			name:   "work beats difficulty on block_create",
			action: "block_create",
			args: Args{
				"balance": "1", "representative": "nano_1rep", "previous": "0",
				"work": "2bf29ef00786a6bc", "difficulty": "ffffffc000000000",
			},
			has:    []string{"work"},
			hasNot: []string{"difficulty"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Build(tt.action, tt.args)
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}
			for _, name := range tt.has {
				if !p.Has(name) {
					t.Errorf("field %q should be present", name)
				}
			}
			for _, name := range tt.hasNot {
				if p.Has(name) {
					t.Errorf("field %q should be suppressed", name)
				}
			}
		})
	}
}

func TestBuildConstAndRequires(t *testing.T) {
	got := mustEncode(t, "block_create", Args{
		"balance": "1", "representative": "nano_1rep", "previous": "0",
	})
	want := `{"action":"block_create","type":"state","balance":"1","representative":"nano_1rep","previous":"0","version":"work_1"}`
	if got != want {
		t.Errorf("payload mismatch\n got: %s\nwant: %s", got, want)
	}

	// json_block 依附于 block：block 缺席时 json_block 不得出现
	p, err := Build("work_generate", Args{"hash": "F00D", "json_block": true})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if p.Has("json_block") {
		t.Error("json_block should require block")
	}

	got = mustEncode(t, "work_generate", Args{"hash": "F00D", "block": "{}", "json_block": true})
	want = `{"action":"work_generate","hash":"F00D","version":"work_1","block":"{}","json_block":true}`
	if got != want {
		t.Errorf("payload mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestBuildSignCanonicalBlock(t *testing.T) {
	block := &Block{
		Type:           "state",
		Account:        "nano_1abc",
		Previous:       "0",
		Representative: "nano_1rep",
		Balance:        "100",
		Link:           "F00D",
	}
	p, err := Build("sign", Args{"key": "AA", "block": block, "_hash": "F00D"})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	v, ok := p.Get("block")
	if !ok {
		t.Fatal("block field missing")
	}
	s, ok := v.(string)
	if !ok {
		t.Fatalf("block should canonicalize to string, got %T", v)
	}
	if !strings.HasPrefix(s, `{"type":"state"`) || !strings.Contains(s, `"balance":"100"`) {
		t.Errorf("unexpected canonical block: %s", s)
	}
	if v, _ := p.Get("_hash"); v != "F00D" {
		t.Errorf("_hash = %v, want F00D", v)
	}
}

func TestBuildProcessKeepsStructuredBlock(t *testing.T) {
	block := &Block{Type: "state", Account: "nano_1abc", Balance: "100"}
	got := mustEncode(t, "process", Args{"block": block, "json_block": true})
	want := `{"action":"process","block":{"type":"state","account":"nano_1abc","balance":"100"},"json_block":true}`
	if got != want {
		t.Errorf("payload mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestBuildRawBlockUnwraps(t *testing.T) {
	got := mustEncode(t, "block_hash", Args{"block": RawBlock(`{"type":"state"}`)})
	want := `{"action":"block_hash","block":"{\"type\":\"state\"}"}`
	if got != want {
		t.Errorf("payload mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestBuildDeterministic(t *testing.T) {
	args := Args{
		"account": "nano_1abc", "count": 7, "raw": true,
		"head": "F00D", "account_filter": []string{"nano_1a", "nano_1b"},
	}
	first, err := Build("account_history", args)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	a, err := first.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	for i := 0; i < 16; i++ {
		p, err := Build("account_history", args)
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		b, err := p.Encode()
		if err != nil {
			t.Fatalf("Encode error: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("build %d diverged\nfirst: %s\n  got: %s", i, a, b)
		}
	}
}

func TestPayloadActionFirst(t *testing.T) {
	p, err := Build("account_balance", Args{"account": "nano_1abc"})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte(`{"action":`)) {
		t.Errorf("action should lead the payload: %s", data)
	}
}
