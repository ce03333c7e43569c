package main

import (
	"context"

	"github.com/spf13/cobra"

	nanorpc "github.com/nanorpc/v1"
)

var (
	workUsePeers   bool
	workMultiplier int
	workDifficulty string
)

// workCmd 工作量相关命令
var workCmd = &cobra.Command{
	Use:   "work",
	Short: "生成与校验工作量",
	Long:  "请求节点生成工作量,或校验既有工作量是否达标",
}

// workGenerateCmd 生成工作量
var workGenerateCmd = &cobra.Command{
	Use:   "generate <hash>",
	Short: "为指定哈希生成工作量",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.WorkGenerate(context.Background(), args[0], &nanorpc.WorkGenerateOptions{
			UsePeers:   workUsePeers,
			Multiplier: workMultiplier,
			Difficulty: workDifficulty,
		})
		return printReply(reply, err)
	},
}

// workValidateCmd 校验工作量
var workValidateCmd = &cobra.Command{
	Use:   "validate <work> <hash>",
	Short: "校验工作量",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.WorkValidate(context.Background(), args[0], args[1], &nanorpc.WorkValidateOptions{
			Multiplier: workMultiplier,
			Difficulty: workDifficulty,
		})
		return printReply(reply, err)
	},
}

// workCancelCmd 取消工作量计算
var workCancelCmd = &cobra.Command{
	Use:   "cancel <hash>",
	Short: "取消指定哈希的工作量计算",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.WorkCancel(context.Background(), args[0])
		return printReply(reply, err)
	},
}

func init() {
	workCmd.AddCommand(workGenerateCmd)
	workCmd.AddCommand(workValidateCmd)
	workCmd.AddCommand(workCancelCmd)

	workGenerateCmd.Flags().BoolVar(&workUsePeers, "use-peers", false, "委托工作量计算对端")
	workGenerateCmd.Flags().IntVar(&workMultiplier, "multiplier", 0, "难度倍数(优先于 --difficulty)")
	workGenerateCmd.Flags().StringVar(&workDifficulty, "difficulty", "", "难度阈值(16进制)")
	workValidateCmd.Flags().IntVar(&workMultiplier, "multiplier", 0, "难度倍数(优先于 --difficulty)")
	workValidateCmd.Flags().StringVar(&workDifficulty, "difficulty", "", "难度阈值(16进制)")
}
