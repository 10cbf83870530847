// Package linode provides a typed client for the Linode v4 REST API.
//
// The package is built in two layers:
//
//   - Client: the base client. It owns the pooled HTTP transport, injects
//     bearer authentication, serializes request bodies, and translates every
//     failure into one of the package's error types. It performs exactly one
//     HTTP round trip per operation and never retries.
//
//   - RetryingClient: wraps a Client and re-executes failed operations with
//     exponential backoff and jitter. Rate-limit (429) and server (5xx)
//     responses as well as transport failures are retried; authentication
//     (401) and forbidden (403) responses fail fast. On exhaustion the last
//     error is returned unchanged, so callers can match on the same error
//     types whether or not retries occurred.
//
// Both layers expose the identical operation surface: one method per remote
// operation, defined once on the embedded API struct.
//
// Errors form a closed set: *APIError for structured API failures,
// *NetworkError for transport failures, and *RetryableError to force retry
// semantics onto an otherwise fatal error. KindOf reports which variant an
// error is; IsRetryable implements the retry classification used by
// RetryingClient and is exported for callers making their own policy
// decisions.
//
// Example usage:
//
//	base, err := linode.NewClient("https://api.linode.com/v4", token,
//		linode.WithTimeout(30*time.Second),
//		linode.WithRateLimit(20, 30),
//	)
//	if err != nil {
//		return err
//	}
//	client := linode.NewRetryingClient(base, linode.DefaultRetryPolicy())
//	defer client.Close()
//
//	instances, err := client.ListInstances(ctx)
//	if err != nil {
//		var apiErr *linode.APIError
//		if errors.As(err, &apiErr) && apiErr.IsAuthenticationError() {
//			// token is invalid; retrying would not have helped
//		}
//		return err
//	}
package linode
