package nanorpc

import (
	"context"

	"github.com/nanorpc/v1/core/command"
)

// 区块取值类型的再导出，调用方无须直接引用 core/command
type (
	// Block 结构化状态区块
	Block = command.Block
	// BlockValue 区块取值：预序列化文本或结构化区块
	BlockValue = command.BlockValue
	// RawBlock 预序列化的区块文本
	RawBlock = command.RawBlock
)

// ===== 节点命令 =====
// 每个方法是目录中一条命令的薄实例化：必填参数按位传入，
// 可选参数集中在对应的 Options 结构体中，nil 表示全部取默认。

// AccountBalanceOptions account_balance 的可选参数
type AccountBalanceOptions struct {
	// IncludeOnlyConfirmed 默认 true；显式传 false 时才出现在载荷中
	IncludeOnlyConfirmed *bool
}

// AccountBalance 查询账户余额
func (c *Client) AccountBalance(ctx context.Context, account string, opts *AccountBalanceOptions) (Reply, error) {
	args := command.Args{"account": account}
	if opts != nil {
		putBool(args, "include_only_confirmed", opts.IncludeOnlyConfirmed)
	}
	return c.call(ctx, "account_balance", args)
}

// AccountBlockCount 查询账户区块数量
func (c *Client) AccountBlockCount(ctx context.Context, account string) (Reply, error) {
	return c.call(ctx, "account_block_count", command.Args{"account": account})
}

// AccountGet 由公钥求账户地址
func (c *Client) AccountGet(ctx context.Context, key string) (Reply, error) {
	return c.call(ctx, "account_get", command.Args{"key": key})
}

// AccountHistoryOptions account_history 的可选参数
type AccountHistoryOptions struct {
	Count         int // 默认 1，始终上线
	Raw           bool
	Head          string
	Offset        int
	Reverse       bool
	AccountFilter []string
}

// AccountHistory 查询账户交易历史
func (c *Client) AccountHistory(ctx context.Context, account string, opts *AccountHistoryOptions) (Reply, error) {
	args := command.Args{"account": account}
	if opts != nil {
		putInt(args, "count", opts.Count)
		args["raw"] = opts.Raw
		putStr(args, "head", opts.Head)
		putInt(args, "offset", opts.Offset)
		args["reverse"] = opts.Reverse
		putList(args, "account_filter", opts.AccountFilter)
	}
	return c.call(ctx, "account_history", args)
}

// AccountInfoOptions account_info 的可选参数
type AccountInfoOptions struct {
	IncludeConfirmed bool
	Representative   bool
	Weight           bool
	Pending          bool
}

// AccountInfo 查询账户信息
func (c *Client) AccountInfo(ctx context.Context, account string, opts *AccountInfoOptions) (Reply, error) {
	args := command.Args{"account": account}
	if opts != nil {
		args["include_confirmed"] = opts.IncludeConfirmed
		args["representative"] = opts.Representative
		args["weight"] = opts.Weight
		args["pending"] = opts.Pending
	}
	return c.call(ctx, "account_info", args)
}

// AccountKey 由账户地址求公钥
func (c *Client) AccountKey(ctx context.Context, account string) (Reply, error) {
	return c.call(ctx, "account_key", command.Args{"account": account})
}

// AccountRepresentative 查询账户代表
func (c *Client) AccountRepresentative(ctx context.Context, account string) (Reply, error) {
	return c.call(ctx, "account_representative", command.Args{"account": account})
}

// AccountWeight 查询账户投票权重
func (c *Client) AccountWeight(ctx context.Context, account string) (Reply, error) {
	return c.call(ctx, "account_weight", command.Args{"account": account})
}

// AccountsBalancesOptions accounts_balances 的可选参数
type AccountsBalancesOptions struct {
	IncludeOnlyConfirmed *bool
}

// AccountsBalances 批量查询账户余额
func (c *Client) AccountsBalances(ctx context.Context, accounts []string, opts *AccountsBalancesOptions) (Reply, error) {
	args := command.Args{"accounts": accounts}
	if opts != nil {
		putBool(args, "include_only_confirmed", opts.IncludeOnlyConfirmed)
	}
	return c.call(ctx, "accounts_balances", args)
}

// AccountsFrontiers 批量查询账户前沿区块
func (c *Client) AccountsFrontiers(ctx context.Context, accounts []string) (Reply, error) {
	return c.call(ctx, "accounts_frontiers", command.Args{"accounts": accounts})
}

// AccountsReceivableOptions accounts_receivable 的可选参数
type AccountsReceivableOptions struct {
	Count                int // 默认 1，始终上线
	Threshold            string
	Source               bool
	IncludeActive        bool
	Sorting              bool
	IncludeOnlyConfirmed *bool
}

// AccountsReceivable 批量查询待接收金额
func (c *Client) AccountsReceivable(ctx context.Context, accounts []string, opts *AccountsReceivableOptions) (Reply, error) {
	args := command.Args{"accounts": accounts}
	if opts != nil {
		putInt(args, "count", opts.Count)
		putStr(args, "threshold", opts.Threshold)
		args["source"] = opts.Source
		args["include_active"] = opts.IncludeActive
		args["sorting"] = opts.Sorting
		putBool(args, "include_only_confirmed", opts.IncludeOnlyConfirmed)
	}
	return c.call(ctx, "accounts_receivable", args)
}

// AccountsRepresentatives 批量查询账户代表
func (c *Client) AccountsRepresentatives(ctx context.Context, accounts []string) (Reply, error) {
	return c.call(ctx, "accounts_representatives", command.Args{"accounts": accounts})
}

// AvailableSupply 查询可用供应量
func (c *Client) AvailableSupply(ctx context.Context) (Reply, error) {
	return c.call(ctx, "available_supply", nil)
}

// BlockAccount 查询区块所属账户
func (c *Client) BlockAccount(ctx context.Context, hash string) (Reply, error) {
	return c.call(ctx, "block_account", command.Args{"hash": hash})
}

// BlockConfirm 请求确认指定区块
func (c *Client) BlockConfirm(ctx context.Context, hash string) (Reply, error) {
	return c.call(ctx, "block_confirm", command.Args{"hash": hash})
}

// BlockCountOptions block_count 的可选参数
type BlockCountOptions struct {
	// IncludeCemented 默认 true；显式传 false 时才出现在载荷中
	IncludeCemented *bool
}

// BlockCount 查询账本区块计数
func (c *Client) BlockCount(ctx context.Context, opts *BlockCountOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		putBool(args, "include_cemented", opts.IncludeCemented)
	}
	return c.call(ctx, "block_count", args)
}

// BlockCreateOptions block_create 的可选参数
type BlockCreateOptions struct {
	Wallet      string
	Account     string
	Key         string
	Source      string
	Destination string
	Link        string
	// Work 与 Difficulty 互斥：两者都提供时 Work 优先
	Work       string
	Difficulty string
	Version    string // 默认 work_1
	JSONBlock  bool
}

// BlockCreate 请求节点创建状态区块
func (c *Client) BlockCreate(ctx context.Context, balance, representative, previous string, opts *BlockCreateOptions) (Reply, error) {
	args := command.Args{
		"balance":        balance,
		"representative": representative,
		"previous":       previous,
	}
	if opts != nil {
		putStr(args, "wallet", opts.Wallet)
		putStr(args, "account", opts.Account)
		putStr(args, "key", opts.Key)
		putStr(args, "source", opts.Source)
		putStr(args, "destination", opts.Destination)
		putStr(args, "link", opts.Link)
		putStr(args, "work", opts.Work)
		putStr(args, "difficulty", opts.Difficulty)
		putStr(args, "version", opts.Version)
		args["json_block"] = opts.JSONBlock
	}
	return c.call(ctx, "block_create", args)
}

// BlockHashOptions block_hash 的可选参数
type BlockHashOptions struct {
	JSONBlock bool
}

// BlockHash 计算区块哈希
func (c *Client) BlockHash(ctx context.Context, block BlockValue, opts *BlockHashOptions) (Reply, error) {
	args := command.Args{"block": block}
	if opts != nil {
		args["json_block"] = opts.JSONBlock
	}
	return c.call(ctx, "block_hash", args)
}

// BlockInfoOptions block_info 的可选参数
type BlockInfoOptions struct {
	JSONBlock bool
}

// BlockInfo 查询区块详情
func (c *Client) BlockInfo(ctx context.Context, hash string, opts *BlockInfoOptions) (Reply, error) {
	args := command.Args{"hash": hash}
	if opts != nil {
		args["json_block"] = opts.JSONBlock
	}
	return c.call(ctx, "block_info", args)
}

// BlocksOptions blocks 的可选参数
type BlocksOptions struct {
	JSONBlock bool
}

// Blocks 批量查询区块内容
func (c *Client) Blocks(ctx context.Context, hashes []string, opts *BlocksOptions) (Reply, error) {
	args := command.Args{"hashes": hashes}
	if opts != nil {
		args["json_block"] = opts.JSONBlock
	}
	return c.call(ctx, "blocks", args)
}

// BlocksInfoOptions blocks_info 的可选参数
type BlocksInfoOptions struct {
	Pending         bool
	Source          bool
	ReceiveHash     bool
	JSONBlock       bool
	IncludeNotFound bool
}

// BlocksInfo 批量查询区块详情
func (c *Client) BlocksInfo(ctx context.Context, hashes []string, opts *BlocksInfoOptions) (Reply, error) {
	args := command.Args{"hashes": hashes}
	if opts != nil {
		args["pending"] = opts.Pending
		args["source"] = opts.Source
		args["receive_hash"] = opts.ReceiveHash
		args["json_block"] = opts.JSONBlock
		args["include_not_found"] = opts.IncludeNotFound
	}
	return c.call(ctx, "blocks_info", args)
}

// BootstrapOptions bootstrap 的可选参数
type BootstrapOptions struct {
	ID                         string
	BypassFrontierConfirmation bool
}

// Bootstrap 向指定对端发起引导同步
func (c *Client) Bootstrap(ctx context.Context, address, port string, opts *BootstrapOptions) (Reply, error) {
	args := command.Args{"address": address, "port": port}
	if opts != nil {
		putStr(args, "id", opts.ID)
		args["bypass_frontier_confirmation"] = opts.BypassFrontierConfirmation
	}
	return c.call(ctx, "bootstrap", args)
}

// BootstrapAnyOptions bootstrap_any 的可选参数
type BootstrapAnyOptions struct {
	Force   bool
	ID      string
	Account string
}

// BootstrapAny 向任意对端发起引导同步
func (c *Client) BootstrapAny(ctx context.Context, opts *BootstrapAnyOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		args["force"] = opts.Force
		putStr(args, "id", opts.ID)
		putStr(args, "account", opts.Account)
	}
	return c.call(ctx, "bootstrap_any", args)
}

// BootstrapLazyOptions bootstrap_lazy 的可选参数
type BootstrapLazyOptions struct {
	Force bool
	ID    string
}

// BootstrapLazy 发起惰性引导同步
func (c *Client) BootstrapLazy(ctx context.Context, hash string, opts *BootstrapLazyOptions) (Reply, error) {
	args := command.Args{"hash": hash}
	if opts != nil {
		args["force"] = opts.Force
		putStr(args, "id", opts.ID)
	}
	return c.call(ctx, "bootstrap_lazy", args)
}

// BootstrapStatus 查询引导同步状态
func (c *Client) BootstrapStatus(ctx context.Context) (Reply, error) {
	return c.call(ctx, "bootstrap_status", nil)
}

// ChainOptions chain 的可选参数
type ChainOptions struct {
	Count   int // 默认 1，始终上线
	Offset  int
	Reverse bool
}

// Chain 沿链回溯区块哈希
func (c *Client) Chain(ctx context.Context, block string, opts *ChainOptions) (Reply, error) {
	args := command.Args{"block": block}
	if opts != nil {
		putInt(args, "count", opts.Count)
		putInt(args, "offset", opts.Offset)
		args["reverse"] = opts.Reverse
	}
	return c.call(ctx, "chain", args)
}

// ConfirmationActiveOptions confirmation_active 的可选参数
type ConfirmationActiveOptions struct {
	Announcements int
}

// ConfirmationActive 查询进行中的确认选举
func (c *Client) ConfirmationActive(ctx context.Context, opts *ConfirmationActiveOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		putInt(args, "announcements", opts.Announcements)
	}
	return c.call(ctx, "confirmation_active", args)
}

// ConfirmationHeightCurrentlyProcessing 查询正在处理确认高度的账户
func (c *Client) ConfirmationHeightCurrentlyProcessing(ctx context.Context) (Reply, error) {
	return c.call(ctx, "confirmation_height_currently_processing", nil)
}

// ConfirmationHistoryOptions confirmation_history 的可选参数
type ConfirmationHistoryOptions struct {
	Hash string
}

// ConfirmationHistory 查询确认历史
func (c *Client) ConfirmationHistory(ctx context.Context, opts *ConfirmationHistoryOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		putStr(args, "hash", opts.Hash)
	}
	return c.call(ctx, "confirmation_history", args)
}

// ConfirmationInfoOptions confirmation_info 的可选参数
type ConfirmationInfoOptions struct {
	// Contents 默认 true；显式传 false 时才出现在载荷中
	Contents        *bool
	Representatives bool
	JSONBlock       bool
}

// ConfirmationInfo 查询指定选举的确认详情
func (c *Client) ConfirmationInfo(ctx context.Context, root string, opts *ConfirmationInfoOptions) (Reply, error) {
	args := command.Args{"root": root}
	if opts != nil {
		putBool(args, "contents", opts.Contents)
		args["representatives"] = opts.Representatives
		args["json_block"] = opts.JSONBlock
	}
	return c.call(ctx, "confirmation_info", args)
}

// ConfirmationQuorumOptions confirmation_quorum 的可选参数
type ConfirmationQuorumOptions struct {
	PeerDetails bool
}

// ConfirmationQuorum 查询确认法定数信息
func (c *Client) ConfirmationQuorum(ctx context.Context, opts *ConfirmationQuorumOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		args["peer_details"] = opts.PeerDetails
	}
	return c.call(ctx, "confirmation_quorum", args)
}

// DatabaseTxnTracker 查询数据库事务追踪信息
func (c *Client) DatabaseTxnTracker(ctx context.Context, minReadTime, minWriteTime int) (Reply, error) {
	return c.call(ctx, "database_txn_tracker", command.Args{
		"min_read_time":  minReadTime,
		"min_write_time": minWriteTime,
	})
}

// DelegatorsOptions delegators 的可选参数
type DelegatorsOptions struct {
	Threshold int
	Count     int
	Start     string
}

// Delegators 查询委托给指定代表的账户
func (c *Client) Delegators(ctx context.Context, account string, opts *DelegatorsOptions) (Reply, error) {
	args := command.Args{"account": account}
	if opts != nil {
		putInt(args, "threshold", opts.Threshold)
		putInt(args, "count", opts.Count)
		putStr(args, "start", opts.Start)
	}
	return c.call(ctx, "delegators", args)
}

// DelegatorsCount 查询委托账户数量
func (c *Client) DelegatorsCount(ctx context.Context, account string) (Reply, error) {
	return c.call(ctx, "delegators_count", command.Args{"account": account})
}

// DeterministicKey 由种子与索引派生密钥。index 为 0 时同样上线。
func (c *Client) DeterministicKey(ctx context.Context, seed string, index int) (Reply, error) {
	return c.call(ctx, "deterministic_key", command.Args{"seed": seed, "index": index})
}

// ElectionStatistics 查询选举统计
func (c *Client) ElectionStatistics(ctx context.Context) (Reply, error) {
	return c.call(ctx, "election_statistics", nil)
}

// EpochUpgradeOptions epoch_upgrade 的可选参数
type EpochUpgradeOptions struct {
	Count   int
	Threads int
}

// EpochUpgrade 发起纪元升级
func (c *Client) EpochUpgrade(ctx context.Context, epoch int, key string, opts *EpochUpgradeOptions) (Reply, error) {
	args := command.Args{"epoch": epoch, "key": key}
	if opts != nil {
		putInt(args, "count", opts.Count)
		putInt(args, "threads", opts.Threads)
	}
	return c.call(ctx, "epoch_upgrade", args)
}

// FrontierCount 查询前沿区块总数
func (c *Client) FrontierCount(ctx context.Context) (Reply, error) {
	return c.call(ctx, "frontier_count", nil)
}

// FrontiersOptions frontiers 的可选参数
type FrontiersOptions struct {
	Count int // 默认 1，始终上线
}

// Frontiers 自指定账户起列出前沿区块
func (c *Client) Frontiers(ctx context.Context, account string, opts *FrontiersOptions) (Reply, error) {
	args := command.Args{"account": account}
	if opts != nil {
		putInt(args, "count", opts.Count)
	}
	return c.call(ctx, "frontiers", args)
}

// Keepalive 向指定对端发送保活
func (c *Client) Keepalive(ctx context.Context, address string, port int) (Reply, error) {
	return c.call(ctx, "keepalive", command.Args{"address": address, "port": port})
}

// KeyCreate 生成随机密钥对
func (c *Client) KeyCreate(ctx context.Context) (Reply, error) {
	return c.call(ctx, "key_create", nil)
}

// KeyExpand 由私钥展开公钥与账户
func (c *Client) KeyExpand(ctx context.Context, key string) (Reply, error) {
	return c.call(ctx, "key_expand", command.Args{"key": key})
}

// LedgerOptions ledger 的可选参数
type LedgerOptions struct {
	Count          int // 默认 1，始终上线
	Representative bool
	Weight         bool
	Receivable     bool
	ModifiedSince  int
	Sorting        bool
	Threshold      int
}

// Ledger 自指定账户起遍历账本
func (c *Client) Ledger(ctx context.Context, account string, opts *LedgerOptions) (Reply, error) {
	args := command.Args{"account": account}
	if opts != nil {
		putInt(args, "count", opts.Count)
		args["representative"] = opts.Representative
		args["weight"] = opts.Weight
		args["receivable"] = opts.Receivable
		putInt(args, "modified_since", opts.ModifiedSince)
		args["sorting"] = opts.Sorting
		putInt(args, "threshold", opts.Threshold)
	}
	return c.call(ctx, "ledger", args)
}

// NodeID 查询节点标识
func (c *Client) NodeID(ctx context.Context) (Reply, error) {
	return c.call(ctx, "node_id", nil)
}

// NodeIDDelete 删除节点标识
func (c *Client) NodeIDDelete(ctx context.Context) (Reply, error) {
	return c.call(ctx, "node_id_delete", nil)
}

// PeersOptions peers 的可选参数
type PeersOptions struct {
	PeerDetails bool
}

// Peers 列出已知对端
func (c *Client) Peers(ctx context.Context, opts *PeersOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		args["peer_details"] = opts.PeerDetails
	}
	return c.call(ctx, "peers", args)
}

// PopulateBacklog 触发积压回填
func (c *Client) PopulateBacklog(ctx context.Context) (Reply, error) {
	return c.call(ctx, "populate_backlog", nil)
}

// ProcessOptions process 的可选参数
type ProcessOptions struct {
	Force     bool
	Subtype   string
	JSONBlock bool
	// WatchWork 默认 true；显式传 false 时才出现在载荷中
	WatchWork *bool
	Async     bool
}

// Process 提交区块上链。block 可为预序列化文本或结构化区块，
// 结构化形式在载荷中保持嵌套对象。
func (c *Client) Process(ctx context.Context, block BlockValue, opts *ProcessOptions) (Reply, error) {
	args := command.Args{"block": block}
	if opts != nil {
		args["force"] = opts.Force
		putStr(args, "subtype", opts.Subtype)
		args["json_block"] = opts.JSONBlock
		putBool(args, "watch_work", opts.WatchWork)
		args["async"] = opts.Async
	}
	return c.call(ctx, "process", args)
}

// ReceivableOptions receivable 的可选参数
type ReceivableOptions struct {
	Count                int
	Threshold            int
	Source               bool
	IncludeActive        bool
	MinVersion           bool
	Sorting              bool
	IncludeOnlyConfirmed *bool
}

// Receivable 查询账户的待接收区块
func (c *Client) Receivable(ctx context.Context, account string, opts *ReceivableOptions) (Reply, error) {
	args := command.Args{"account": account}
	if opts != nil {
		putInt(args, "count", opts.Count)
		putInt(args, "threshold", opts.Threshold)
		args["source"] = opts.Source
		args["include_active"] = opts.IncludeActive
		args["min_version"] = opts.MinVersion
		args["sorting"] = opts.Sorting
		putBool(args, "include_only_confirmed", opts.IncludeOnlyConfirmed)
	}
	return c.call(ctx, "receivable", args)
}

// ReceivableExistsOptions receivable_exists 的可选参数
type ReceivableExistsOptions struct {
	IncludeActive        bool
	IncludeOnlyConfirmed *bool
}

// ReceivableExists 判断指定区块是否待接收
func (c *Client) ReceivableExists(ctx context.Context, hash string, opts *ReceivableExistsOptions) (Reply, error) {
	args := command.Args{"hash": hash}
	if opts != nil {
		args["include_active"] = opts.IncludeActive
		putBool(args, "include_only_confirmed", opts.IncludeOnlyConfirmed)
	}
	return c.call(ctx, "receivable_exists", args)
}

// RepresentativesOptions representatives 的可选参数
type RepresentativesOptions struct {
	Count   int // 默认 1，始终上线
	Sorting bool
}

// Representatives 列出代表及其权重
func (c *Client) Representatives(ctx context.Context, opts *RepresentativesOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		putInt(args, "count", opts.Count)
		args["sorting"] = opts.Sorting
	}
	return c.call(ctx, "representatives", args)
}

// RepresentativesOnlineOptions representatives_online 的可选参数
type RepresentativesOnlineOptions struct {
	Weight   bool
	Accounts []string
}

// RepresentativesOnline 列出在线代表
func (c *Client) RepresentativesOnline(ctx context.Context, opts *RepresentativesOnlineOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		args["weight"] = opts.Weight
		putList(args, "accounts", opts.Accounts)
	}
	return c.call(ctx, "representatives_online", args)
}

// RepublishOptions republish 的可选参数
type RepublishOptions struct {
	// Count 在 Sources 或 Destinations 任一生效时随之上线，默认 1
	Count        int
	Sources      int
	Destinations int
}

// Republish 重新广播指定区块及其关联链
func (c *Client) Republish(ctx context.Context, hash string, opts *RepublishOptions) (Reply, error) {
	args := command.Args{"hash": hash}
	if opts != nil {
		putInt(args, "count", opts.Count)
		putInt(args, "sources", opts.Sources)
		putInt(args, "destinations", opts.Destinations)
	}
	return c.call(ctx, "republish", args)
}

// SignOptions sign 的参数。block 始终上线；结构化区块先规范化为线上文本。
type SignOptions struct {
	Key       string
	Wallet    string
	Account   string
	Block     BlockValue
	Hash      string
	JSONBlock bool
}

// Sign 请求节点对区块或哈希签名
func (c *Client) Sign(ctx context.Context, opts *SignOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		putStr(args, "key", opts.Key)
		putStr(args, "wallet", opts.Wallet)
		putStr(args, "account", opts.Account)
		if opts.Block != nil {
			args["block"] = opts.Block
		}
		putStr(args, "_hash", opts.Hash)
		args["json_block"] = opts.JSONBlock
	}
	return c.call(ctx, "sign", args)
}

// Stats 查询节点统计。statType 为 counters、samples 或 objects。
func (c *Client) Stats(ctx context.Context, statType string) (Reply, error) {
	return c.call(ctx, "stats", command.Args{"type": statType})
}

// StatsClear 清零节点统计
func (c *Client) StatsClear(ctx context.Context) (Reply, error) {
	return c.call(ctx, "stats_clear", nil)
}

// Stop 请求节点安全停机
func (c *Client) Stop(ctx context.Context) (Reply, error) {
	return c.call(ctx, "stop", nil)
}

// SuccessorsOptions successors 的可选参数
type SuccessorsOptions struct {
	Count   int // 默认 1，始终上线
	Offset  int
	Reverse bool
}

// Successors 沿链前向列出区块哈希
func (c *Client) Successors(ctx context.Context, block string, opts *SuccessorsOptions) (Reply, error) {
	args := command.Args{"block": block}
	if opts != nil {
		putInt(args, "count", opts.Count)
		putInt(args, "offset", opts.Offset)
		args["reverse"] = opts.Reverse
	}
	return c.call(ctx, "successors", args)
}

// TelemetryOptions telemetry 的可选参数
type TelemetryOptions struct {
	Raw bool
	// Address 指定时 Port 随之上线，默认 7075
	Address string
	Port    int
}

// Telemetry 查询遥测数据
func (c *Client) Telemetry(ctx context.Context, opts *TelemetryOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		args["raw"] = opts.Raw
		putStr(args, "address", opts.Address)
		putInt(args, "port", opts.Port)
	}
	return c.call(ctx, "telemetry", args)
}

// ValidateAccountNumber 校验账户地址格式
func (c *Client) ValidateAccountNumber(ctx context.Context, account string) (Reply, error) {
	return c.call(ctx, "validate_account_number", command.Args{"account": account})
}

// Version 查询节点版本
func (c *Client) Version(ctx context.Context) (Reply, error) {
	return c.call(ctx, "version", nil)
}

// UncheckedOptions unchecked 的可选参数
type UncheckedOptions struct {
	JSONBlock bool
	Count     int // 默认 1，始终上线
}

// Unchecked 列出未验区块
func (c *Client) Unchecked(ctx context.Context, opts *UncheckedOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		args["json_block"] = opts.JSONBlock
		putInt(args, "count", opts.Count)
	}
	return c.call(ctx, "unchecked", args)
}

// UncheckedClear 清空未验区块
func (c *Client) UncheckedClear(ctx context.Context) (Reply, error) {
	return c.call(ctx, "unchecked_clear", nil)
}

// UncheckedGetOptions unchecked_get 的可选参数
type UncheckedGetOptions struct {
	JSONBlock bool
}

// UncheckedGet 查询指定未验区块
func (c *Client) UncheckedGet(ctx context.Context, hash string, opts *UncheckedGetOptions) (Reply, error) {
	args := command.Args{"hash": hash}
	if opts != nil {
		args["json_block"] = opts.JSONBlock
	}
	return c.call(ctx, "unchecked_get", args)
}

// UncheckedKeysOptions unchecked_keys 的可选参数
type UncheckedKeysOptions struct {
	Count     int // 默认 1，始终上线
	JSONBlock bool
}

// UncheckedKeys 按键列出未验区块
func (c *Client) UncheckedKeys(ctx context.Context, key string, opts *UncheckedKeysOptions) (Reply, error) {
	args := command.Args{"key": key}
	if opts != nil {
		putInt(args, "count", opts.Count)
		args["json_block"] = opts.JSONBlock
	}
	return c.call(ctx, "unchecked_keys", args)
}

// UnopenedOptions unopened 的可选参数
type UnopenedOptions struct {
	Account   string
	Count     int // 默认 1
	Threshold int
}

// Unopened 列出未开启账户的累计入账
func (c *Client) Unopened(ctx context.Context, opts *UnopenedOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		putStr(args, "account", opts.Account)
		putInt(args, "count", opts.Count)
		putInt(args, "threshold", opts.Threshold)
	}
	return c.call(ctx, "unopened", args)
}

// Uptime 查询节点运行时长
func (c *Client) Uptime(ctx context.Context) (Reply, error) {
	return c.call(ctx, "uptime", nil)
}

// WorkCancel 取消指定哈希的工作量计算
func (c *Client) WorkCancel(ctx context.Context, hash string) (Reply, error) {
	return c.call(ctx, "work_cancel", command.Args{"hash": hash})
}

// WorkGenerateOptions work_generate 的可选参数
type WorkGenerateOptions struct {
	UsePeers bool
	// Multiplier 与 Difficulty 互斥：两者都提供时 Multiplier 优先
	Multiplier int
	Difficulty string
	Account    string
	Version    string // 默认 work_1
	Block      string
	// JSONBlock 仅在 Block 提供时随之上线
	JSONBlock bool
}

// WorkGenerate 请求生成工作量
func (c *Client) WorkGenerate(ctx context.Context, hash string, opts *WorkGenerateOptions) (Reply, error) {
	args := command.Args{"hash": hash}
	if opts != nil {
		args["use_peers"] = opts.UsePeers
		putInt(args, "multiplier", opts.Multiplier)
		putStr(args, "difficulty", opts.Difficulty)
		putStr(args, "account", opts.Account)
		putStr(args, "version", opts.Version)
		putStr(args, "block", opts.Block)
		args["json_block"] = opts.JSONBlock
	}
	return c.call(ctx, "work_generate", args)
}

// WorkPeerAdd 添加工作量计算对端
func (c *Client) WorkPeerAdd(ctx context.Context, address string, port int) (Reply, error) {
	return c.call(ctx, "work_peer_add", command.Args{"address": address, "port": port})
}

// WorkPeers 列出工作量计算对端
func (c *Client) WorkPeers(ctx context.Context) (Reply, error) {
	return c.call(ctx, "work_peers", nil)
}

// WorkPeersClear 清空工作量计算对端
func (c *Client) WorkPeersClear(ctx context.Context) (Reply, error) {
	return c.call(ctx, "work_peers_clear", nil)
}

// WorkValidateOptions work_validate 的可选参数
type WorkValidateOptions struct {
	// Multiplier 与 Difficulty 互斥：两者都提供时 Multiplier 优先
	Multiplier int
	Difficulty string
	Version    string // 默认 work_1
}

// WorkValidate 校验工作量
func (c *Client) WorkValidate(ctx context.Context, work, hash string, opts *WorkValidateOptions) (Reply, error) {
	args := command.Args{"work": work, "hash": hash}
	if opts != nil {
		putInt(args, "multiplier", opts.Multiplier)
		putStr(args, "difficulty", opts.Difficulty)
		putStr(args, "version", opts.Version)
	}
	return c.call(ctx, "work_validate", args)
}
