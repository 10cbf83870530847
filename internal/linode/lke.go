package linode

import (
	"context"
	"fmt"
)

// ListLKEClusters returns a page of Kubernetes clusters.
func (a *API) ListLKEClusters(ctx context.Context) (*PagedResponse[LKECluster], error) {
	return doList[LKECluster](ctx, a.d, "list_lke_clusters", "/lke/clusters")
}

// GetLKECluster returns a single cluster by ID.
func (a *API) GetLKECluster(ctx context.Context, id int) (*LKECluster, error) {
	return doGet[LKECluster](ctx, a.d, "get_lke_cluster", fmt.Sprintf("/lke/clusters/%d", id))
}

// CreateLKECluster provisions a new Kubernetes cluster.
func (a *API) CreateLKECluster(ctx context.Context, opts LKEClusterCreateOptions) (*LKECluster, error) {
	return doPost[LKECluster](ctx, a.d, "create_lke_cluster", "/lke/clusters", opts)
}

// DeleteLKECluster removes a cluster and all of its node pools.
func (a *API) DeleteLKECluster(ctx context.Context, id int) error {
	return doDelete(ctx, a.d, "delete_lke_cluster", fmt.Sprintf("/lke/clusters/%d", id))
}

// ListLKENodePools returns the node pools of a cluster.
func (a *API) ListLKENodePools(ctx context.Context, clusterID int) (*PagedResponse[LKENodePool], error) {
	return doList[LKENodePool](ctx, a.d, "list_lke_node_pools", fmt.Sprintf("/lke/clusters/%d/pools", clusterID))
}

// GetLKEKubeconfig returns the base64-encoded kubeconfig of a cluster.
func (a *API) GetLKEKubeconfig(ctx context.Context, clusterID int) (*LKEKubeconfig, error) {
	return doGet[LKEKubeconfig](ctx, a.d, "get_lke_kubeconfig", fmt.Sprintf("/lke/clusters/%d/kubeconfig", clusterID))
}
