package main

import (
	"context"

	"github.com/spf13/cobra"

	nanorpc "github.com/nanorpc/v1"
)

var (
	nodePeerDetails bool
	telemetryRaw    bool
)

// nodeCmd 节点相关命令
var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "查询节点状态",
	Long:  "查询节点版本、遥测数据、对端与运行时长",
}

// nodeVersionCmd 节点版本
var nodeVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "查询节点版本",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.Version(context.Background())
		return printReply(reply, err)
	},
}

// nodeTelemetryCmd 遥测数据
var nodeTelemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "查询网络遥测数据",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.Telemetry(context.Background(), &nanorpc.TelemetryOptions{
			Raw: telemetryRaw,
		})
		return printReply(reply, err)
	},
}

// nodePeersCmd 已知对端
var nodePeersCmd = &cobra.Command{
	Use:   "peers",
	Short: "列出已知对端",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.Peers(context.Background(), &nanorpc.PeersOptions{
			PeerDetails: nodePeerDetails,
		})
		return printReply(reply, err)
	},
}

// nodeUptimeCmd 运行时长
var nodeUptimeCmd = &cobra.Command{
	Use:   "uptime",
	Short: "查询节点运行时长",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.Uptime(context.Background())
		return printReply(reply, err)
	},
}

// nodeStatsCmd 节点统计
var nodeStatsCmd = &cobra.Command{
	Use:   "stats <counters|samples|objects>",
	Short: "查询节点统计",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer closeClient(client)

		reply, err := client.Stats(context.Background(), args[0])
		return printReply(reply, err)
	},
}

func init() {
	nodeCmd.AddCommand(nodeVersionCmd)
	nodeCmd.AddCommand(nodeTelemetryCmd)
	nodeCmd.AddCommand(nodePeersCmd)
	nodeCmd.AddCommand(nodeUptimeCmd)
	nodeCmd.AddCommand(nodeStatsCmd)

	nodeTelemetryCmd.Flags().BoolVar(&telemetryRaw, "raw", false, "按对端逐条返回原始遥测")
	nodePeersCmd.Flags().BoolVar(&nodePeerDetails, "details", false, "包含对端详情")
}
