package main

import (
	"context"

	"github.com/spf13/cobra"

	nanorpc "github.com/nanorpc/v1"
)

var (
	accountUnconfirmed  bool // 余额计入未确认区块
	accountHistoryCount int  // 历史条目数
	accountHistoryRaw   bool // 历史包含原始区块
	accountHistoryHead  string
	accountRecvCount    int // 待收条目数
)

// accountCmd 账户相关命令
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "查询账户信息",
	Long:  "查询账户余额、详情、历史与代表",
}

// accountBalanceCmd 查询余额
var accountBalanceCmd = &cobra.Command{
	Use:   "balance <account>",
	Short: "查询账户余额",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		var opts *nanorpc.AccountBalanceOptions
		if accountUnconfirmed {
			opts = &nanorpc.AccountBalanceOptions{IncludeOnlyConfirmed: nanorpc.Bool(false)}
		}
		reply, err := client.AccountBalance(context.Background(), args[0], opts)
		return printReply(reply, err)
	},
}

// accountInfoCmd 查询账户详情
var accountInfoCmd = &cobra.Command{
	Use:   "info <account>",
	Short: "查询账户详情",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.AccountInfo(context.Background(), args[0], &nanorpc.AccountInfoOptions{
			Representative: true,
			Weight:         true,
			Pending:        true,
		})
		return printReply(reply, err)
	},
}

// accountHistoryCmd 查询账户历史
var accountHistoryCmd = &cobra.Command{
	Use:   "history <account>",
	Short: "查询账户交易历史",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.AccountHistory(context.Background(), args[0], &nanorpc.AccountHistoryOptions{
			Count: accountHistoryCount,
			Raw:   accountHistoryRaw,
			Head:  accountHistoryHead,
		})
		return printReply(reply, err)
	},
}

// accountKeyCmd 地址转公钥
var accountKeyCmd = &cobra.Command{
	Use:   "key <account>",
	Short: "由账户地址求公钥",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.AccountKey(context.Background(), args[0])
		return printReply(reply, err)
	},
}

// accountWeightCmd 查询投票权重
var accountWeightCmd = &cobra.Command{
	Use:   "weight <account>",
	Short: "查询账户投票权重",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.AccountWeight(context.Background(), args[0])
		return printReply(reply, err)
	},
}

// accountReceivableCmd 查询待接收区块
var accountReceivableCmd = &cobra.Command{
	Use:   "receivable <account>",
	Short: "查询账户的待接收区块",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.Receivable(context.Background(), args[0], &nanorpc.ReceivableOptions{
			Count: accountRecvCount,
		})
		return printReply(reply, err)
	},
}

func init() {
	accountCmd.AddCommand(accountBalanceCmd)
	accountCmd.AddCommand(accountInfoCmd)
	accountCmd.AddCommand(accountHistoryCmd)
	accountCmd.AddCommand(accountKeyCmd)
	accountCmd.AddCommand(accountWeightCmd)
	accountCmd.AddCommand(accountReceivableCmd)

	accountBalanceCmd.Flags().BoolVar(&accountUnconfirmed, "unconfirmed", false, "计入未确认区块")
	accountHistoryCmd.Flags().IntVarP(&accountHistoryCount, "count", "n", 10, "返回条目数")
	accountHistoryCmd.Flags().BoolVar(&accountHistoryRaw, "raw", false, "包含原始区块内容")
	accountHistoryCmd.Flags().StringVar(&accountHistoryHead, "head", "", "从指定区块哈希开始")
	accountReceivableCmd.Flags().IntVarP(&accountRecvCount, "count", "n", 10, "返回条目数")
}
