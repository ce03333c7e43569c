package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	nanorpc "github.com/nanorpc/v1"
)

var (
	walletSeed   string
	walletSendID string
)

// walletCmd 钱包相关命令
var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "管理节点侧钱包",
	Long:  "创建钱包、查询余额、解锁与转账。钱包数据保存在节点侧。",
}

// walletCreateCmd 创建钱包
var walletCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建钱包",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		var opts *nanorpc.WalletCreateOptions
		if walletSeed != "" {
			opts = &nanorpc.WalletCreateOptions{Seed: walletSeed}
		}
		reply, err := client.WalletCreate(context.Background(), opts)
		return printReply(reply, err)
	},
}

// walletBalancesCmd 钱包余额
var walletBalancesCmd = &cobra.Command{
	Use:   "balances <wallet>",
	Short: "查询钱包内全部账户余额",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.WalletBalances(context.Background(), args[0], nil)
		return printReply(reply, err)
	},
}

// walletAccountsCmd 钱包账户列表
var walletAccountsCmd = &cobra.Command{
	Use:   "accounts <wallet>",
	Short: "列出钱包中的账户",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.AccountList(context.Background(), args[0])
		return printReply(reply, err)
	},
}

// walletInfoCmd 钱包概要
var walletInfoCmd = &cobra.Command{
	Use:   "info <wallet>",
	Short: "查询钱包概要信息",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.WalletInfo(context.Background(), args[0])
		return printReply(reply, err)
	},
}

// walletUnlockCmd 解锁钱包。口令从终端读取,不回显,不经命令行参数泄露。
var walletUnlockCmd = &cobra.Command{
	Use:   "unlock <wallet>",
	Short: "解锁钱包",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := promptPassword("钱包口令: ")
		if err != nil {
			return err
		}

		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.PasswordEnter(context.Background(), args[0], password)
		return printReply(reply, err)
	},
}

// walletLockCmd 锁定钱包
var walletLockCmd = &cobra.Command{
	Use:   "lock <wallet>",
	Short: "锁定钱包",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.WalletLock(context.Background(), args[0])
		return printReply(reply, err)
	},
}

// walletSendCmd 转账
var walletSendCmd = &cobra.Command{
	Use:   "send <wallet> <source> <destination> <amount>",
	Short: "从钱包账户转账",
	Long:  "从钱包账户向目标账户转账。--id 提供幂等标识,重复提交不会重复转账。",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		var opts *nanorpc.SendOptions
		if walletSendID != "" {
			opts = &nanorpc.SendOptions{ID: walletSendID}
		}
		reply, err := client.Send(context.Background(), args[0], args[1], args[2], args[3], opts)
		return printReply(reply, err)
	},
}

// promptPassword 从终端读取口令,不回显
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("读取口令: %w", err)
	}
	return string(password), nil
}

func init() {
	walletCmd.AddCommand(walletCreateCmd)
	walletCmd.AddCommand(walletBalancesCmd)
	walletCmd.AddCommand(walletAccountsCmd)
	walletCmd.AddCommand(walletInfoCmd)
	walletCmd.AddCommand(walletUnlockCmd)
	walletCmd.AddCommand(walletLockCmd)
	walletCmd.AddCommand(walletSendCmd)

	walletCreateCmd.Flags().StringVar(&walletSeed, "seed", "", "以指定种子初始化钱包")
	walletSendCmd.Flags().StringVar(&walletSendID, "id", "", "幂等标识")
}
