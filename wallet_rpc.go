package nanorpc

import (
	"context"

	"github.com/nanorpc/v1/core/command"
)

// ===== 钱包命令 =====
// 钱包命令要求节点启用钱包功能；wallet 参数是节点侧的钱包标识。

// AccountCreateOptions account_create 的可选参数
type AccountCreateOptions struct {
	Index int
	// Work 默认 true；显式传 false 时才出现在载荷中
	Work *bool
}

// AccountCreate 在钱包中派生新账户
func (c *Client) AccountCreate(ctx context.Context, wallet string, opts *AccountCreateOptions) (Reply, error) {
	args := command.Args{"wallet": wallet}
	if opts != nil {
		putInt(args, "index", opts.Index)
		putBool(args, "work", opts.Work)
	}
	return c.call(ctx, "account_create", args)
}

// AccountList 列出钱包中的账户
func (c *Client) AccountList(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "account_list", command.Args{"wallet": wallet})
}

// AccountMove 把账户从源钱包迁移到目标钱包
func (c *Client) AccountMove(ctx context.Context, wallet, source string, accounts []string) (Reply, error) {
	return c.call(ctx, "account_move", command.Args{
		"wallet":   wallet,
		"source":   source,
		"accounts": accounts,
	})
}

// AccountRemove 从钱包中移除账户
func (c *Client) AccountRemove(ctx context.Context, wallet, account string) (Reply, error) {
	return c.call(ctx, "account_remove", command.Args{"wallet": wallet, "account": account})
}

// AccountRepresentativeSetOptions account_representative_set 的可选参数
type AccountRepresentativeSetOptions struct {
	Work string
}

// AccountRepresentativeSet 设置账户代表
func (c *Client) AccountRepresentativeSet(ctx context.Context, wallet, account, representative string, opts *AccountRepresentativeSetOptions) (Reply, error) {
	args := command.Args{
		"wallet":         wallet,
		"account":        account,
		"representative": representative,
	}
	if opts != nil {
		putStr(args, "work", opts.Work)
	}
	return c.call(ctx, "account_representative_set", args)
}

// AccountsCreateOptions accounts_create 的可选参数
type AccountsCreateOptions struct {
	Count int // 默认 1，始终上线
	// Work 默认 true；显式传 false 时才出现在载荷中
	Work *bool
}

// AccountsCreate 批量派生新账户
func (c *Client) AccountsCreate(ctx context.Context, wallet string, opts *AccountsCreateOptions) (Reply, error) {
	args := command.Args{"wallet": wallet}
	if opts != nil {
		putInt(args, "count", opts.Count)
		putBool(args, "work", opts.Work)
	}
	return c.call(ctx, "accounts_create", args)
}

// PasswordChange 修改钱包口令
func (c *Client) PasswordChange(ctx context.Context, wallet, password string) (Reply, error) {
	return c.call(ctx, "password_change", command.Args{"wallet": wallet, "password": password})
}

// PasswordEnter 输入口令解锁钱包
func (c *Client) PasswordEnter(ctx context.Context, wallet, password string) (Reply, error) {
	return c.call(ctx, "password_enter", command.Args{"wallet": wallet, "password": password})
}

// PasswordValid 检查钱包口令是否有效
func (c *Client) PasswordValid(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "password_valid", command.Args{"wallet": wallet})
}

// ReceiveOptions receive 的可选参数
type ReceiveOptions struct {
	Work string
}

// Receive 接收指定待收区块
func (c *Client) Receive(ctx context.Context, wallet, account, block string, opts *ReceiveOptions) (Reply, error) {
	args := command.Args{"wallet": wallet, "account": account, "block": block}
	if opts != nil {
		putStr(args, "work", opts.Work)
	}
	return c.call(ctx, "receive", args)
}

// ReceiveMinimum 查询最小接收金额
func (c *Client) ReceiveMinimum(ctx context.Context) (Reply, error) {
	return c.call(ctx, "receive_minimum", nil)
}

// ReceiveMinimumSet 设置最小接收金额
func (c *Client) ReceiveMinimumSet(ctx context.Context, amount string) (Reply, error) {
	return c.call(ctx, "receive_minimum_set", command.Args{"amount": amount})
}

// SearchReceivable 搜索钱包内全部账户的待收区块
func (c *Client) SearchReceivable(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "search_receivable", command.Args{"wallet": wallet})
}

// SearchReceivableAll 搜索全部钱包的待收区块
func (c *Client) SearchReceivableAll(ctx context.Context) (Reply, error) {
	return c.call(ctx, "search_receivable_all", nil)
}

// SendOptions send 的可选参数
type SendOptions struct {
	// ID 幂等标识：同一 ID 的重复请求不会重复转账
	ID   string
	Work string
}

// Send 从钱包账户向目标账户转账
func (c *Client) Send(ctx context.Context, wallet, source, destination, amount string, opts *SendOptions) (Reply, error) {
	args := command.Args{
		"wallet":      wallet,
		"source":      source,
		"destination": destination,
		"amount":      amount,
	}
	if opts != nil {
		putStr(args, "id", opts.ID)
		putStr(args, "work", opts.Work)
	}
	return c.call(ctx, "send", args)
}

// WalletAddOptions wallet_add 的可选参数
type WalletAddOptions struct {
	// Work 为真时要求节点为导入账户预计算工作量
	Work bool
}

// WalletAdd 向钱包导入私钥
func (c *Client) WalletAdd(ctx context.Context, wallet, key string, opts *WalletAddOptions) (Reply, error) {
	args := command.Args{"wallet": wallet, "key": key}
	if opts != nil {
		args["work"] = opts.Work
	}
	return c.call(ctx, "wallet_add", args)
}

// WalletAddWatch 向钱包添加只读观察账户
func (c *Client) WalletAddWatch(ctx context.Context, wallet string, accounts []string) (Reply, error) {
	return c.call(ctx, "wallet_add_watch", command.Args{"wallet": wallet, "accounts": accounts})
}

// WalletBalancesOptions wallet_balances 的可选参数
type WalletBalancesOptions struct {
	Threshold int
}

// WalletBalances 查询钱包内全部账户余额
func (c *Client) WalletBalances(ctx context.Context, wallet string, opts *WalletBalancesOptions) (Reply, error) {
	args := command.Args{"wallet": wallet}
	if opts != nil {
		putInt(args, "threshold", opts.Threshold)
	}
	return c.call(ctx, "wallet_balances", args)
}

// WalletChangeSeedOptions wallet_change_seed 的可选参数
type WalletChangeSeedOptions struct {
	Count int
}

// WalletChangeSeed 更换钱包种子
func (c *Client) WalletChangeSeed(ctx context.Context, wallet, seed string, opts *WalletChangeSeedOptions) (Reply, error) {
	args := command.Args{"wallet": wallet, "seed": seed}
	if opts != nil {
		putInt(args, "count", opts.Count)
	}
	return c.call(ctx, "wallet_change_seed", args)
}

// WalletContains 检查钱包是否包含指定账户
func (c *Client) WalletContains(ctx context.Context, wallet, account string) (Reply, error) {
	return c.call(ctx, "wallet_contains", command.Args{"wallet": wallet, "account": account})
}

// WalletCreateOptions wallet_create 的可选参数
type WalletCreateOptions struct {
	Seed string
}

// WalletCreate 创建钱包，可选地以指定种子初始化
func (c *Client) WalletCreate(ctx context.Context, opts *WalletCreateOptions) (Reply, error) {
	args := command.Args{}
	if opts != nil {
		putStr(args, "seed", opts.Seed)
	}
	return c.call(ctx, "wallet_create", args)
}

// WalletDestroy 销毁钱包
func (c *Client) WalletDestroy(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "wallet_destroy", command.Args{"wallet": wallet})
}

// WalletExport 导出钱包 JSON
func (c *Client) WalletExport(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "wallet_export", command.Args{"wallet": wallet})
}

// WalletFrontiers 查询钱包内账户的前沿区块
func (c *Client) WalletFrontiers(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "wallet_frontiers", command.Args{"wallet": wallet})
}

// WalletHistoryOptions wallet_history 的可选参数
type WalletHistoryOptions struct {
	ModifiedSince int
}

// WalletHistory 查询钱包交易历史
func (c *Client) WalletHistory(ctx context.Context, wallet string, opts *WalletHistoryOptions) (Reply, error) {
	args := command.Args{"wallet": wallet}
	if opts != nil {
		putInt(args, "modified_since", opts.ModifiedSince)
	}
	return c.call(ctx, "wallet_history", args)
}

// WalletInfo 查询钱包概要信息
func (c *Client) WalletInfo(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "wallet_info", command.Args{"wallet": wallet})
}

// WalletLedgerOptions wallet_ledger 的可选参数
type WalletLedgerOptions struct {
	Representative bool
	Weight         bool
	Receivable     bool
	ModifiedSince  int
}

// WalletLedger 查询钱包内账户的账本信息
func (c *Client) WalletLedger(ctx context.Context, wallet string, opts *WalletLedgerOptions) (Reply, error) {
	args := command.Args{"wallet": wallet}
	if opts != nil {
		args["representative"] = opts.Representative
		args["weight"] = opts.Weight
		args["receivable"] = opts.Receivable
		putInt(args, "modified_since", opts.ModifiedSince)
	}
	return c.call(ctx, "wallet_ledger", args)
}

// WalletLock 锁定钱包
func (c *Client) WalletLock(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "wallet_lock", command.Args{"wallet": wallet})
}

// WalletLocked 检查钱包是否已锁定
func (c *Client) WalletLocked(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "wallet_locked", command.Args{"wallet": wallet})
}

// WalletReceivableOptions wallet_receivable 的可选参数
type WalletReceivableOptions struct {
	Count                int // 默认 1，始终上线
	Threshold            int
	Source               bool
	IncludeActive        bool
	MinVersion           bool
	IncludeOnlyConfirmed *bool
}

// WalletReceivable 查询钱包内账户的待收区块
func (c *Client) WalletReceivable(ctx context.Context, wallet string, opts *WalletReceivableOptions) (Reply, error) {
	args := command.Args{"wallet": wallet}
	if opts != nil {
		putInt(args, "count", opts.Count)
		putInt(args, "threshold", opts.Threshold)
		args["source"] = opts.Source
		args["include_active"] = opts.IncludeActive
		args["min_version"] = opts.MinVersion
		putBool(args, "include_only_confirmed", opts.IncludeOnlyConfirmed)
	}
	return c.call(ctx, "wallet_receivable", args)
}

// WalletRepresentative 查询钱包默认代表
func (c *Client) WalletRepresentative(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "wallet_representative", command.Args{"wallet": wallet})
}

// WalletRepresentativeSetOptions wallet_representative_set 的可选参数
type WalletRepresentativeSetOptions struct {
	UpdateExistingAccounts bool
}

// WalletRepresentativeSet 设置钱包默认代表
func (c *Client) WalletRepresentativeSet(ctx context.Context, wallet, representative string, opts *WalletRepresentativeSetOptions) (Reply, error) {
	args := command.Args{"wallet": wallet, "representative": representative}
	if opts != nil {
		args["update_existing_accounts"] = opts.UpdateExistingAccounts
	}
	return c.call(ctx, "wallet_representative_set", args)
}

// WalletRepublishOptions wallet_republish 的可选参数
type WalletRepublishOptions struct {
	Count int // 默认 1，始终上线
}

// WalletRepublish 重新广播钱包内账户的区块
func (c *Client) WalletRepublish(ctx context.Context, wallet string, opts *WalletRepublishOptions) (Reply, error) {
	args := command.Args{"wallet": wallet}
	if opts != nil {
		putInt(args, "count", opts.Count)
	}
	return c.call(ctx, "wallet_republish", args)
}

// WalletWorkGet 查询钱包内全部账户的预计算工作量
func (c *Client) WalletWorkGet(ctx context.Context, wallet string) (Reply, error) {
	return c.call(ctx, "wallet_work_get", command.Args{"wallet": wallet})
}

// WorkGet 查询账户的预计算工作量
func (c *Client) WorkGet(ctx context.Context, wallet, account string) (Reply, error) {
	return c.call(ctx, "work_get", command.Args{"wallet": wallet, "account": account})
}

// WorkSet 写入账户的预计算工作量
func (c *Client) WorkSet(ctx context.Context, wallet, account, work string) (Reply, error) {
	return c.call(ctx, "work_set", command.Args{
		"wallet":  wallet,
		"account": account,
		"work":    work,
	})
}
