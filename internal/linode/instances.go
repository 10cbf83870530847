package linode

import (
	"context"
	"fmt"
)

// ListInstances returns a page of compute instances.
func (a *API) ListInstances(ctx context.Context) (*PagedResponse[Instance], error) {
	return doList[Instance](ctx, a.d, "list_instances", "/linode/instances")
}

// GetInstance returns a single instance by ID.
func (a *API) GetInstance(ctx context.Context, id int) (*Instance, error) {
	return doGet[Instance](ctx, a.d, "get_instance", fmt.Sprintf("/linode/instances/%d", id))
}

// CreateInstance provisions a new compute instance.
func (a *API) CreateInstance(ctx context.Context, opts InstanceCreateOptions) (*Instance, error) {
	return doPost[Instance](ctx, a.d, "create_instance", "/linode/instances", opts)
}

// DeleteInstance permanently removes an instance and its disks.
func (a *API) DeleteInstance(ctx context.Context, id int) error {
	return doDelete(ctx, a.d, "delete_instance", fmt.Sprintf("/linode/instances/%d", id))
}

// BootInstance powers on a stopped instance.
func (a *API) BootInstance(ctx context.Context, id int) error {
	return doAction(ctx, a.d, "boot_instance", fmt.Sprintf("/linode/instances/%d/boot", id), nil)
}

// RebootInstance gracefully restarts a running instance.
func (a *API) RebootInstance(ctx context.Context, id int) error {
	return doAction(ctx, a.d, "reboot_instance", fmt.Sprintf("/linode/instances/%d/reboot", id), nil)
}

// ShutdownInstance powers off a running instance.
func (a *API) ShutdownInstance(ctx context.Context, id int) error {
	return doAction(ctx, a.d, "shutdown_instance", fmt.Sprintf("/linode/instances/%d/shutdown", id), nil)
}

// ResizeInstance moves an instance to a different compute plan.
func (a *API) ResizeInstance(ctx context.Context, id int, opts InstanceResizeOptions) error {
	return doAction(ctx, a.d, "resize_instance", fmt.Sprintf("/linode/instances/%d/resize", id), opts)
}
