package linode

import (
	"context"
	"fmt"
	"net/url"
)

// ListObjectStorageClusters returns the regions hosting object storage.
func (a *API) ListObjectStorageClusters(ctx context.Context) (*PagedResponse[ObjectStorageCluster], error) {
	return doList[ObjectStorageCluster](ctx, a.d, "list_object_storage_clusters", "/object-storage/clusters")
}

// ListObjectStorageBuckets returns a page of buckets across all clusters.
func (a *API) ListObjectStorageBuckets(ctx context.Context) (*PagedResponse[ObjectStorageBucket], error) {
	return doList[ObjectStorageBucket](ctx, a.d, "list_object_storage_buckets", "/object-storage/buckets")
}

// CreateObjectStorageBucket creates a bucket in the given cluster.
func (a *API) CreateObjectStorageBucket(ctx context.Context, opts ObjectStorageBucketCreateOptions) (*ObjectStorageBucket, error) {
	return doPost[ObjectStorageBucket](ctx, a.d, "create_object_storage_bucket", "/object-storage/buckets", opts)
}

// DeleteObjectStorageBucket removes an empty bucket.
func (a *API) DeleteObjectStorageBucket(ctx context.Context, cluster, label string) error {
	path := fmt.Sprintf("/object-storage/buckets/%s/%s", url.PathEscape(cluster), url.PathEscape(label))
	return doDelete(ctx, a.d, "delete_object_storage_bucket", path)
}

// ListObjectStorageKeys returns a page of object storage access keys.
func (a *API) ListObjectStorageKeys(ctx context.Context) (*PagedResponse[ObjectStorageKey], error) {
	return doList[ObjectStorageKey](ctx, a.d, "list_object_storage_keys", "/object-storage/keys")
}

// CreateObjectStorageKey creates an access key pair. The secret key is
// only returned by this call and cannot be retrieved again.
func (a *API) CreateObjectStorageKey(ctx context.Context, opts ObjectStorageKeyCreateOptions) (*ObjectStorageKey, error) {
	return doPost[ObjectStorageKey](ctx, a.d, "create_object_storage_key", "/object-storage/keys", opts)
}

// RevokeObjectStorageKey revokes an access key pair.
func (a *API) RevokeObjectStorageKey(ctx context.Context, id int) error {
	return doDelete(ctx, a.d, "revoke_object_storage_key", fmt.Sprintf("/object-storage/keys/%d", id))
}
