// Package instrumentation provides OpenTelemetry metrics for the
// mcp-linode server.
//
// Metrics are exported through the Prometheus exporter and served on a
// dedicated /metrics endpoint by the HTTP transport. Instrumentation is
// disabled by default for zero overhead; set INSTRUMENTATION_ENABLED=true
// to activate it. All Record* methods are nil-safe so call sites never
// need to guard against a disabled provider.
//
// Exposed metrics:
//
//   - mcp_tool_invocations_total: counter of tool calls by tool and status
//   - mcp_tool_invocation_duration_seconds: histogram of tool call durations
//   - linode_api_requests_total: counter of API round trips by operation
//     and status class
//   - linode_api_request_duration_seconds: histogram of API round trip
//     durations
//   - linode_api_retries_total: counter of retry attempts by operation
//
// Cardinality: labels are limited to the fixed tool and operation names
// plus coarse status values, so the label space is bounded by the size of
// the tool catalogue.
package instrumentation
