package linode

import (
	"context"
	"fmt"
)

// ListFirewalls returns a page of cloud firewalls.
func (a *API) ListFirewalls(ctx context.Context) (*PagedResponse[Firewall], error) {
	return doList[Firewall](ctx, a.d, "list_firewalls", "/networking/firewalls")
}

// GetFirewall returns a single firewall by ID.
func (a *API) GetFirewall(ctx context.Context, id int) (*Firewall, error) {
	return doGet[Firewall](ctx, a.d, "get_firewall", fmt.Sprintf("/networking/firewalls/%d", id))
}

// CreateFirewall creates a cloud firewall with an initial rule set.
func (a *API) CreateFirewall(ctx context.Context, opts FirewallCreateOptions) (*Firewall, error) {
	return doPost[Firewall](ctx, a.d, "create_firewall", "/networking/firewalls", opts)
}

// DeleteFirewall removes a firewall. Devices it was assigned to keep
// running without it.
func (a *API) DeleteFirewall(ctx context.Context, id int) error {
	return doDelete(ctx, a.d, "delete_firewall", fmt.Sprintf("/networking/firewalls/%d", id))
}

// UpdateFirewallRules replaces the complete rule set of a firewall.
func (a *API) UpdateFirewallRules(ctx context.Context, id int, rules FirewallRuleSet) (*FirewallRuleSet, error) {
	return doPut[FirewallRuleSet](ctx, a.d, "update_firewall_rules", fmt.Sprintf("/networking/firewalls/%d/rules", id), rules)
}
