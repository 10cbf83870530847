package linode

import (
	"context"
	"fmt"
)

// ListVolumes returns a page of block storage volumes.
func (a *API) ListVolumes(ctx context.Context) (*PagedResponse[Volume], error) {
	return doList[Volume](ctx, a.d, "list_volumes", "/volumes")
}

// GetVolume returns a single volume by ID.
func (a *API) GetVolume(ctx context.Context, id int) (*Volume, error) {
	return doGet[Volume](ctx, a.d, "get_volume", fmt.Sprintf("/volumes/%d", id))
}

// CreateVolume provisions a new block storage volume.
func (a *API) CreateVolume(ctx context.Context, opts VolumeCreateOptions) (*Volume, error) {
	return doPost[Volume](ctx, a.d, "create_volume", "/volumes", opts)
}

// AttachVolume attaches a volume to a compute instance.
func (a *API) AttachVolume(ctx context.Context, id int, opts VolumeAttachOptions) (*Volume, error) {
	return doPost[Volume](ctx, a.d, "attach_volume", fmt.Sprintf("/volumes/%d/attach", id), opts)
}

// DetachVolume detaches a volume from its instance.
func (a *API) DetachVolume(ctx context.Context, id int) error {
	return doAction(ctx, a.d, "detach_volume", fmt.Sprintf("/volumes/%d/detach", id), nil)
}

// DeleteVolume permanently removes a volume.
func (a *API) DeleteVolume(ctx context.Context, id int) error {
	return doDelete(ctx, a.d, "delete_volume", fmt.Sprintf("/volumes/%d", id))
}
