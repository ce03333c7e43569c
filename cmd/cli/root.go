package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	nanorpc "github.com/nanorpc/v1"
	"github.com/nanorpc/v1/core/output"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	Node         string // 节点地址
	Tor          bool   // 经本地 Tor 代理出站
	ProxyAddr    string // 覆盖代理地址
	OutputFormat string // 输出格式
	Verbose      bool   // 详细模式
}

var (
	globalFlags GlobalFlags
	formatter   *output.Formatter
	logger      *zap.Logger
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "nanorpc",
	Short: "账本节点命令行客户端",
	Long: `nanorpc CLI - 账本节点的薄命令行客户端

直接向节点的 RPC 端口发出命令并打印回复:
- 查询账户、区块、代表与节点状态
- 生成与校验工作量
- 管理节点侧钱包并转账

节点地址由 --node 指定,http(s):// 前缀走 HTTP 模式,
ws(s):// 前缀走 WebSocket 模式。--tor 使全部出站流量
经本地 SOCKS5 代理(默认 localhost:9050)。`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		formatter = output.NewFormatter(output.Format(globalFlags.OutputFormat), os.Stdout)

		logger = zap.NewNop()
		if globalFlags.Verbose {
			var err error
			logger, err = zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("初始化日志: %w", err)
			}
		}
		return nil
	},
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.Node, "node", nanorpc.DefaultURL, "节点地址 (http/https/ws/wss)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Tor, "tor", false, "经本地 Tor SOCKS5 代理出站")
	rootCmd.PersistentFlags().StringVar(&globalFlags.ProxyAddr, "proxy", "", "代理地址 (默认 localhost:9050,需配合 --tor)")
	rootCmd.PersistentFlags().StringVarP(&globalFlags.OutputFormat, "output", "o", "json", "输出格式: json|pretty|table|text")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "详细输出")

	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(nodeCmd)
	rootCmd.AddCommand(workCmd)
	rootCmd.AddCommand(walletCmd)
}

// getClient 按全局标志创建节点客户端
func getClient() (*nanorpc.Client, error) {
	cfg := nanorpc.Config{
		Tor:       globalFlags.Tor,
		ProxyAddr: globalFlags.ProxyAddr,
		Logger:    logger,
	}
	client, err := nanorpc.NewWithConfig(globalFlags.Node, cfg)
	if err != nil {
		return nil, fmt.Errorf("连接节点: %w", err)
	}
	return client, nil
}

// closeClient 释放客户端连接
func closeClient(client *nanorpc.Client) {
	if err := client.Close(); err != nil {
		logger.Warn("close client", zap.Error(err))
	}
}

// printReply 统一的回复出口:节点报错转为命令失败,否则按选定格式打印
func printReply(reply nanorpc.Reply, err error) error {
	if err != nil {
		formatter.PrintError(err)
		return err
	}
	if msg := reply.NodeError(); msg != "" {
		err := errors.New(msg)
		formatter.PrintError(err)
		return err
	}
	return formatter.Print(map[string]any(reply))
}
