package objectstorage

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

// RegisterObjectStorageTools registers all object storage tools with the MCP server
func RegisterObjectStorageTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	envParams := tools.AddEnvironmentParam(sc)

	// linode_list_object_storage_clusters tool
	clustersOpts := []mcp.ToolOption{
		mcp.WithDescription("List all object storage clusters"),
	}
	clustersOpts = append(clustersOpts, envParams...)
	clustersTool := mcp.NewTool("linode_list_object_storage_clusters", clustersOpts...)

	s.AddTool(clustersTool, tools.WrapWithLogging("linode_list_object_storage_clusters", handleListClusters, sc))

	// linode_list_buckets tool
	bucketsOpts := []mcp.ToolOption{
		mcp.WithDescription("List all object storage buckets on the account"),
	}
	bucketsOpts = append(bucketsOpts, envParams...)
	bucketsTool := mcp.NewTool("linode_list_buckets", bucketsOpts...)

	s.AddTool(bucketsTool, tools.WrapWithLogging("linode_list_buckets", handleListBuckets, sc))

	// linode_create_bucket tool
	createBucketOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a new object storage bucket"),
	}
	createBucketOpts = append(createBucketOpts, envParams...)
	createBucketOpts = append(createBucketOpts,
		mcp.WithString("label",
			mcp.Required(),
			mcp.Description("Bucket name, unique within the cluster"),
		),
		mcp.WithString("cluster",
			mcp.Required(),
			mcp.Description("Object storage cluster to create the bucket in (e.g. 'us-east-1')"),
		),
		mcp.WithString("acl",
			mcp.Description("Canned ACL applied to the bucket (optional, e.g. 'private')"),
		),
	)
	createBucketTool := mcp.NewTool("linode_create_bucket", createBucketOpts...)

	s.AddTool(createBucketTool, tools.WrapWithLogging("linode_create_bucket", handleCreateBucket, sc))

	// linode_delete_bucket tool
	deleteBucketOpts := []mcp.ToolOption{
		mcp.WithDescription("Delete an object storage bucket. The bucket must be empty."),
	}
	deleteBucketOpts = append(deleteBucketOpts, envParams...)
	deleteBucketOpts = append(deleteBucketOpts,
		mcp.WithString("cluster",
			mcp.Required(),
			mcp.Description("Cluster the bucket lives in"),
		),
		mcp.WithString("label",
			mcp.Required(),
			mcp.Description("Name of the bucket to delete"),
		),
		tools.AddConfirmParam(),
	)
	deleteBucketTool := mcp.NewTool("linode_delete_bucket", deleteBucketOpts...)

	s.AddTool(deleteBucketTool, tools.WrapWithLogging("linode_delete_bucket", handleDeleteBucket, sc))

	// linode_list_object_storage_keys tool
	keysOpts := []mcp.ToolOption{
		mcp.WithDescription("List all object storage access keys"),
	}
	keysOpts = append(keysOpts, envParams...)
	keysTool := mcp.NewTool("linode_list_object_storage_keys", keysOpts...)

	s.AddTool(keysTool, tools.WrapWithLogging("linode_list_object_storage_keys", handleListKeys, sc))

	// linode_create_object_storage_key tool
	createKeyOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a new object storage access key pair. The secret key is only returned once."),
	}
	createKeyOpts = append(createKeyOpts, envParams...)
	createKeyOpts = append(createKeyOpts,
		mcp.WithString("label",
			mcp.Required(),
			mcp.Description("Display label for the key"),
		),
	)
	createKeyTool := mcp.NewTool("linode_create_object_storage_key", createKeyOpts...)

	s.AddTool(createKeyTool, tools.WrapWithLogging("linode_create_object_storage_key", handleCreateKey, sc))

	// linode_revoke_object_storage_key tool
	revokeKeyOpts := []mcp.ToolOption{
		mcp.WithDescription("Revoke an object storage access key. Clients using it lose access immediately."),
	}
	revokeKeyOpts = append(revokeKeyOpts, envParams...)
	revokeKeyOpts = append(revokeKeyOpts,
		mcp.WithNumber("key_id",
			mcp.Required(),
			mcp.Description("ID of the key to revoke"),
		),
		tools.AddConfirmParam(),
	)
	revokeKeyTool := mcp.NewTool("linode_revoke_object_storage_key", revokeKeyOpts...)

	s.AddTool(revokeKeyTool, tools.WrapWithLogging("linode_revoke_object_storage_key", handleRevokeKey, sc))

	return nil
}
