package linode

import (
	"context"
	"fmt"
)

// ListNodeBalancers returns a page of load balancers.
func (a *API) ListNodeBalancers(ctx context.Context) (*PagedResponse[NodeBalancer], error) {
	return doList[NodeBalancer](ctx, a.d, "list_nodebalancers", "/nodebalancers")
}

// GetNodeBalancer returns a single nodebalancer by ID.
func (a *API) GetNodeBalancer(ctx context.Context, id int) (*NodeBalancer, error) {
	return doGet[NodeBalancer](ctx, a.d, "get_nodebalancer", fmt.Sprintf("/nodebalancers/%d", id))
}

// CreateNodeBalancer provisions a new load balancer.
func (a *API) CreateNodeBalancer(ctx context.Context, opts NodeBalancerCreateOptions) (*NodeBalancer, error) {
	return doPost[NodeBalancer](ctx, a.d, "create_nodebalancer", "/nodebalancers", opts)
}

// DeleteNodeBalancer removes a load balancer.
func (a *API) DeleteNodeBalancer(ctx context.Context, id int) error {
	return doDelete(ctx, a.d, "delete_nodebalancer", fmt.Sprintf("/nodebalancers/%d", id))
}

// ListNodeBalancerConfigs returns the port configurations of a nodebalancer.
func (a *API) ListNodeBalancerConfigs(ctx context.Context, id int) (*PagedResponse[NodeBalancerConfig], error) {
	return doList[NodeBalancerConfig](ctx, a.d, "list_nodebalancer_configs", fmt.Sprintf("/nodebalancers/%d/configs", id))
}
