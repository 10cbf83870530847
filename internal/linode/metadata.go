package linode

import "context"

// Catalogue endpoints change rarely, so their results are served through
// the client's TTL cache. Concurrent fetches for the same catalogue are
// collapsed into a single upstream request.

// ListRegions returns the available deployment regions.
func (a *API) ListRegions(ctx context.Context) (*PagedResponse[Region], error) {
	return cachedList[Region](ctx, a, "regions", "list_regions", "/regions")
}

// ListTypes returns the purchasable compute plans.
func (a *API) ListTypes(ctx context.Context) (*PagedResponse[InstanceType], error) {
	return cachedList[InstanceType](ctx, a, "types", "list_types", "/linode/types")
}

// ListImages returns the deployable disk images.
func (a *API) ListImages(ctx context.Context) (*PagedResponse[Image], error) {
	return cachedList[Image](ctx, a, "images", "list_images", "/images")
}

func cachedList[T any](ctx context.Context, a *API, key, op, path string) (*PagedResponse[T], error) {
	if a.meta == nil {
		return doList[T](ctx, a.d, op, path)
	}
	v, err := a.meta.get(ctx, key, func() (any, error) {
		return doList[T](ctx, a.d, op, path)
	})
	if err != nil {
		return nil, err
	}
	page, ok := v.(*PagedResponse[T])
	if !ok {
		// Cache key collision across types; fall back to a direct fetch.
		return doList[T](ctx, a.d, op, path)
	}
	return page, nil
}
