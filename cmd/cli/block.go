package main

import (
	"context"

	"github.com/spf13/cobra"

	nanorpc "github.com/nanorpc/v1"
)

var blockInfoJSON bool // 区块内容以JSON对象返回

// blockCmd 区块相关命令
var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "查询区块信息",
	Long:  "查询账本区块计数与单个区块详情",
}

// blockCountCmd 账本计数
var blockCountCmd = &cobra.Command{
	Use:   "count",
	Short: "查询账本区块计数",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.BlockCount(context.Background(), nil)
		return printReply(reply, err)
	},
}

// blockInfoCmd 区块详情
var blockInfoCmd = &cobra.Command{
	Use:   "info <hash>",
	Short: "查询区块详情",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.BlockInfo(context.Background(), args[0], &nanorpc.BlockInfoOptions{
			JSONBlock: blockInfoJSON,
		})
		return printReply(reply, err)
	},
}

// blockAccountCmd 区块所属账户
var blockAccountCmd = &cobra.Command{
	Use:   "account <hash>",
	Short: "查询区块所属账户",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.BlockAccount(context.Background(), args[0])
		return printReply(reply, err)
	},
}

// blockConfirmCmd 请求确认区块
var blockConfirmCmd = &cobra.Command{
	Use:   "confirm <hash>",
	Short: "请求确认指定区块",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.BlockConfirm(context.Background(), args[0])
		return printReply(reply, err)
	},
}

func init() {
	blockCmd.AddCommand(blockCountCmd)
	blockCmd.AddCommand(blockInfoCmd)
	blockCmd.AddCommand(blockAccountCmd)
	blockCmd.AddCommand(blockConfirmCmd)

	blockInfoCmd.Flags().BoolVar(&blockInfoJSON, "json-block", false, "区块内容以JSON对象返回")
}
