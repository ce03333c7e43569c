package command

// 目录表构造辅助：每个辅助函数对应一种发射策略，使表项读起来接近协议文档。

// req 必填字段
func req(name string) field { return field{name: name, pol: emitRequired} }

// cst 常量字段
func cst(name string, v any) field { return field{name: name, pol: emitConst, def: v} }

// alw 无条件发射，未提供时取默认值
func alw(name string, def any) field { return field{name: name, pol: emitAlways, def: def} }

// opt 仅在取值非零/非空时发射
func opt(name string) field { return field{name: name, pol: emitNonZero} }

// optDef 同 opt，但未提供时取非零默认值（unopened 的 count）
func optDef(name string, def any) field { return field{name: name, pol: emitNonZero, def: def} }

// inv 反极性布尔：默认 true，仅传 false 时上线
func inv(name string) field { return field{name: name, pol: emitDiff, def: true} }

// ver 工作量算法版本字段：取值属于枚举集合时发射
func ver() field {
	return field{name: "version", pol: emitEnum, def: "work_1", enum: []string{"work_1"}}
}

// gated 门控字段：任一门控字段被发射时随之发射，取提供值或默认值
func gated(name string, def any, gates ...string) field {
	return field{name: name, pol: emitAlways, def: def, gates: gates}
}

// needs 附加前置条件：仅当另一字段已发射才允许发射
func needs(f field, other string) field {
	f.requires = other
	return f
}

// canonical 结构化区块值先规范化为线上文本
func canonical(f field) field {
	f.canon = true
	return f
}

// catalog 全部命令的声明式目录。字段顺序即载荷发射顺序，
// 每个字段的默认值与发射极性逐条对应外部协议的实际行为，不作统一推断。
var catalog = map[string]*spec{
	// ===== 节点命令 =====

	"account_balance": {fields: []field{
		req("account"), inv("include_only_confirmed"),
	}},
	"account_block_count": {fields: []field{req("account")}},
	"account_get":         {fields: []field{req("key")}},
	"account_history": {fields: []field{
		req("account"), alw("count", 1), opt("raw"), opt("head"),
		opt("offset"), opt("reverse"), opt("account_filter"),
	}},
	"account_info": {fields: []field{
		req("account"), opt("include_confirmed"), opt("representative"),
		opt("weight"), opt("pending"),
	}},
	"account_key":            {fields: []field{req("account")}},
	"account_representative": {fields: []field{req("account")}},
	"account_weight":         {fields: []field{req("account")}},
	"accounts_balances": {fields: []field{
		req("accounts"), inv("include_only_confirmed"),
	}},
	"accounts_frontiers": {fields: []field{req("accounts")}},
	"accounts_receivable": {fields: []field{
		req("accounts"), alw("count", 1), opt("threshold"), opt("source"),
		opt("include_active"), opt("sorting"), inv("include_only_confirmed"),
	}},
	"accounts_representatives": {fields: []field{req("accounts")}},
	"available_supply":         {},
	"block_account":            {fields: []field{req("hash")}},
	"block_confirm":            {fields: []field{req("hash")}},
	"block_count":              {fields: []field{inv("include_cemented")}},
	"block_create": {
		fields: []field{
			cst("type", "state"), req("balance"), opt("wallet"), opt("account"),
			opt("key"), opt("source"), opt("destination"), opt("link"),
			req("representative"), req("previous"), opt("work"),
			opt("difficulty"), ver(), opt("json_block"),
		},
		groups: [][]string{{"work", "difficulty"}},
	},
	"block_hash": {fields: []field{req("block"), opt("json_block")}},
	"block_info": {fields: []field{req("hash"), opt("json_block")}},
	"blocks":     {fields: []field{req("hashes"), opt("json_block")}},
	"blocks_info": {fields: []field{
		req("hashes"), opt("pending"), opt("source"), opt("receive_hash"),
		opt("json_block"), opt("include_not_found"),
	}},
	"bootstrap": {fields: []field{
		req("address"), req("port"), opt("id"), opt("bypass_frontier_confirmation"),
	}},
	"bootstrap_any": {fields: []field{
		opt("force"), opt("id"), opt("account"),
	}},
	"bootstrap_lazy": {fields: []field{
		req("hash"), opt("force"), opt("id"),
	}},
	"bootstrap_status": {},
	"chain": {fields: []field{
		req("block"), alw("count", 1), opt("offset"), opt("reverse"),
	}},
	"confirmation_active":                      {fields: []field{opt("announcements")}},
	"confirmation_height_currently_processing": {},
	"confirmation_history":                     {fields: []field{opt("hash")}},
	"confirmation_info": {fields: []field{
		req("root"), inv("contents"), opt("representatives"), opt("json_block"),
	}},
	"confirmation_quorum": {fields: []field{opt("peer_details")}},
	"database_txn_tracker": {fields: []field{
		req("min_read_time"), req("min_write_time"),
	}},
	"delegators": {fields: []field{
		req("account"), opt("threshold"), opt("count"), opt("start"),
	}},
	"delegators_count":    {fields: []field{req("account")}},
	"deterministic_key":   {fields: []field{req("seed"), req("index")}},
	"election_statistics": {},
	"epoch_upgrade": {fields: []field{
		req("epoch"), req("key"), opt("count"), opt("threads"),
	}},
	"frontier_count": {},
	"frontiers":      {fields: []field{req("account"), alw("count", 1)}},
	"keepalive":      {fields: []field{req("address"), req("port")}},
	"key_create":     {},
	"key_expand":     {fields: []field{req("key")}},
	"ledger": {fields: []field{
		req("account"), alw("count", 1), opt("representative"), opt("weight"),
		opt("receivable"), opt("modified_since"), opt("sorting"), opt("threshold"),
	}},
	"node_id":          {},
	"node_id_delete":   {},
	"peers":            {fields: []field{opt("peer_details")}},
	"populate_backlog": {},
	"process": {fields: []field{
		req("block"), opt("force"), opt("subtype"), opt("json_block"),
		inv("watch_work"), opt("async"),
	}},
	"receivable": {fields: []field{
		req("account"), opt("count"), opt("threshold"), opt("source"),
		opt("include_active"), opt("min_version"), opt("sorting"),
		inv("include_only_confirmed"),
	}},
	"receivable_exists": {fields: []field{
		req("hash"), opt("include_active"), inv("include_only_confirmed"),
	}},
	"representatives": {fields: []field{alw("count", 1), opt("sorting")}},
	"representatives_online": {fields: []field{
		opt("weight"), opt("accounts"),
	}},
	"republish": {fields: []field{
		req("hash"), opt("sources"),
		gated("count", 1, "sources", "destinations"), opt("destinations"),
	}},
	// sign 的哈希参数在线上命名为 _hash，与外部协议实现保持一致
	"sign": {fields: []field{
		opt("key"), opt("wallet"), opt("account"),
		canonical(alw("block", "")), opt("_hash"), opt("json_block"),
	}},
	"stats":       {fields: []field{req("type")}},
	"stats_clear": {},
	"stop":        {},
	"successors": {fields: []field{
		req("block"), alw("count", 1), opt("offset"), opt("reverse"),
	}},
	"telemetry": {fields: []field{
		opt("raw"), opt("address"), gated("port", 7075, "address"),
	}},
	"validate_account_number": {fields: []field{req("account")}},
	"version":                 {},
	"unchecked":               {fields: []field{opt("json_block"), alw("count", 1)}},
	"unchecked_clear":         {},
	"unchecked_get":           {fields: []field{req("hash"), opt("json_block")}},
	"unchecked_keys": {fields: []field{
		req("key"), alw("count", 1), opt("json_block"),
	}},
	"unopened": {fields: []field{
		opt("account"), optDef("count", 1), opt("threshold"),
	}},
	"uptime":      {},
	"work_cancel": {fields: []field{req("hash")}},
	"work_generate": {
		fields: []field{
			req("hash"), opt("use_peers"), opt("multiplier"), opt("difficulty"),
			opt("account"), ver(), opt("block"),
			needs(opt("json_block"), "block"),
		},
		groups: [][]string{{"multiplier", "difficulty"}},
	},
	"work_peer_add":    {fields: []field{req("address"), req("port")}},
	"work_peers":       {},
	"work_peers_clear": {},
	"work_validate": {
		fields: []field{
			req("work"), req("hash"), opt("multiplier"), opt("difficulty"), ver(),
		},
		groups: [][]string{{"multiplier", "difficulty"}},
	},

	// ===== 钱包命令 =====

	"account_create": {fields: []field{
		req("wallet"), opt("index"), inv("work"),
	}},
	"account_list": {fields: []field{req("wallet")}},
	"account_move": {fields: []field{
		req("wallet"), req("source"), req("accounts"),
	}},
	"account_remove": {fields: []field{req("wallet"), req("account")}},
	"account_representative_set": {fields: []field{
		req("wallet"), req("account"), req("representative"), opt("work"),
	}},
	"accounts_create": {fields: []field{
		req("wallet"), alw("count", 1), inv("work"),
	}},
	"password_change": {fields: []field{req("wallet"), req("password")}},
	"password_enter":  {fields: []field{req("wallet"), req("password")}},
	"password_valid":  {fields: []field{req("wallet")}},
	"receive": {fields: []field{
		req("wallet"), req("account"), req("block"), opt("work"),
	}},
	"receive_minimum":     {},
	"receive_minimum_set": {fields: []field{req("amount")}},
	"search_receivable":   {fields: []field{req("wallet")}},
	"search_receivable_all": {},
	"send": {fields: []field{
		req("wallet"), req("source"), req("destination"), req("amount"),
		opt("id"), opt("work"),
	}},
	"wallet_add": {fields: []field{
		req("wallet"), req("key"), opt("work"),
	}},
	"wallet_add_watch": {fields: []field{req("wallet"), req("accounts")}},
	"wallet_balances":  {fields: []field{req("wallet"), opt("threshold")}},
	"wallet_change_seed": {fields: []field{
		req("wallet"), req("seed"), opt("count"),
	}},
	"wallet_contains": {fields: []field{req("wallet"), req("account")}},
	"wallet_create":   {fields: []field{opt("seed")}},
	"wallet_destroy":  {fields: []field{req("wallet")}},
	"wallet_export":   {fields: []field{req("wallet")}},
	"wallet_frontiers": {fields: []field{req("wallet")}},
	"wallet_history": {fields: []field{
		req("wallet"), opt("modified_since"),
	}},
	"wallet_info": {fields: []field{req("wallet")}},
	"wallet_ledger": {fields: []field{
		req("wallet"), opt("representative"), opt("weight"), opt("receivable"),
		opt("modified_since"),
	}},
	"wallet_lock":   {fields: []field{req("wallet")}},
	"wallet_locked": {fields: []field{req("wallet")}},
	"wallet_receivable": {fields: []field{
		req("wallet"), alw("count", 1), opt("threshold"), opt("source"),
		opt("include_active"), opt("min_version"), inv("include_only_confirmed"),
	}},
	"wallet_representative": {fields: []field{req("wallet")}},
	"wallet_representative_set": {fields: []field{
		req("wallet"), req("representative"), opt("update_existing_accounts"),
	}},
	"wallet_republish": {fields: []field{req("wallet"), alw("count", 1)}},
	"wallet_work_get":  {fields: []field{req("wallet")}},
	"work_get":         {fields: []field{req("wallet"), req("account")}},
	"work_set": {fields: []field{
		req("wallet"), req("account"), req("work"),
	}},

	// ===== 单位换算命令 =====

	"nano_to_raw": {fields: []field{req("amount")}},
	"raw_to_nano": {fields: []field{req("amount")}},
}

func init() {
	for action, s := range catalog {
		s.action = action
	}
}

// Actions 返回目录中全部命令名（无序）
func Actions() []string {
	out := make([]string, 0, len(catalog))
	for action := range catalog {
		out = append(out, action)
	}
	return out
}
