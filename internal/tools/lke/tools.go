package lke

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

// RegisterLKETools registers all Kubernetes cluster tools with the MCP server
func RegisterLKETools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	envParams := tools.AddEnvironmentParam(sc)

	// linode_list_lke_clusters tool
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List all Kubernetes clusters on the account"),
	}
	listOpts = append(listOpts, envParams...)
	listTool := mcp.NewTool("linode_list_lke_clusters", listOpts...)

	s.AddTool(listTool, tools.WrapWithLogging("linode_list_lke_clusters", handleListClusters, sc))

	// linode_get_lke_cluster tool
	getOpts := []mcp.ToolOption{
		mcp.WithDescription("Get details of a single Kubernetes cluster"),
	}
	getOpts = append(getOpts, envParams...)
	getOpts = append(getOpts,
		mcp.WithNumber("cluster_id",
			mcp.Required(),
			mcp.Description("ID of the cluster"),
		),
	)
	getTool := mcp.NewTool("linode_get_lke_cluster", getOpts...)

	s.AddTool(getTool, tools.WrapWithLogging("linode_get_lke_cluster", handleGetCluster, sc))

	// linode_create_lke_cluster tool
	createOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a new Kubernetes cluster with one node pool"),
	}
	createOpts = append(createOpts, envParams...)
	createOpts = append(createOpts,
		mcp.WithString("label",
			mcp.Required(),
			mcp.Description("Display label for the cluster"),
		),
		mcp.WithString("region",
			mcp.Required(),
			mcp.Description("Region to deploy in (e.g. 'us-east')"),
		),
		mcp.WithString("k8s_version",
			mcp.Required(),
			mcp.Description("Kubernetes version (e.g. '1.31')"),
		),
		mcp.WithString("node_type",
			mcp.Required(),
			mcp.Description("Instance type of the initial node pool (e.g. 'g6-standard-2')"),
		),
		mcp.WithNumber("node_count",
			mcp.Required(),
			mcp.Description("Number of nodes in the initial pool"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags applied to the cluster (optional)"),
		),
	)
	createTool := mcp.NewTool("linode_create_lke_cluster", createOpts...)

	s.AddTool(createTool, tools.WrapWithLogging("linode_create_lke_cluster", handleCreateCluster, sc))

	// linode_delete_lke_cluster tool
	deleteOpts := []mcp.ToolOption{
		mcp.WithDescription("Delete a Kubernetes cluster and all its node pools. This is irreversible."),
	}
	deleteOpts = append(deleteOpts, envParams...)
	deleteOpts = append(deleteOpts,
		mcp.WithNumber("cluster_id",
			mcp.Required(),
			mcp.Description("ID of the cluster to delete"),
		),
		tools.AddConfirmParam(),
	)
	deleteTool := mcp.NewTool("linode_delete_lke_cluster", deleteOpts...)

	s.AddTool(deleteTool, tools.WrapWithLogging("linode_delete_lke_cluster", handleDeleteCluster, sc))

	// linode_list_lke_node_pools tool
	poolsOpts := []mcp.ToolOption{
		mcp.WithDescription("List the node pools of a Kubernetes cluster"),
	}
	poolsOpts = append(poolsOpts, envParams...)
	poolsOpts = append(poolsOpts,
		mcp.WithNumber("cluster_id",
			mcp.Required(),
			mcp.Description("ID of the cluster"),
		),
	)
	poolsTool := mcp.NewTool("linode_list_lke_node_pools", poolsOpts...)

	s.AddTool(poolsTool, tools.WrapWithLogging("linode_list_lke_node_pools", handleListNodePools, sc))

	// linode_get_lke_kubeconfig tool
	kubeconfigOpts := []mcp.ToolOption{
		mcp.WithDescription("Get the base64-encoded kubeconfig of a Kubernetes cluster"),
	}
	kubeconfigOpts = append(kubeconfigOpts, envParams...)
	kubeconfigOpts = append(kubeconfigOpts,
		mcp.WithNumber("cluster_id",
			mcp.Required(),
			mcp.Description("ID of the cluster"),
		),
	)
	kubeconfigTool := mcp.NewTool("linode_get_lke_kubeconfig", kubeconfigOpts...)

	s.AddTool(kubeconfigTool, tools.WrapWithLogging("linode_get_lke_kubeconfig", handleGetKubeconfig, sc))

	return nil
}
