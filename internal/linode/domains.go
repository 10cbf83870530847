package linode

import (
	"context"
	"fmt"
)

// ListDomains returns a page of DNS zones.
func (a *API) ListDomains(ctx context.Context) (*PagedResponse[Domain], error) {
	return doList[Domain](ctx, a.d, "list_domains", "/domains")
}

// GetDomain returns a single domain by ID.
func (a *API) GetDomain(ctx context.Context, id int) (*Domain, error) {
	return doGet[Domain](ctx, a.d, "get_domain", fmt.Sprintf("/domains/%d", id))
}

// CreateDomain adds a DNS zone.
func (a *API) CreateDomain(ctx context.Context, opts DomainCreateOptions) (*Domain, error) {
	return doPost[Domain](ctx, a.d, "create_domain", "/domains", opts)
}

// DeleteDomain removes a DNS zone and all of its records.
func (a *API) DeleteDomain(ctx context.Context, id int) error {
	return doDelete(ctx, a.d, "delete_domain", fmt.Sprintf("/domains/%d", id))
}

// ListDomainRecords returns a page of records within a domain.
func (a *API) ListDomainRecords(ctx context.Context, domainID int) (*PagedResponse[DomainRecord], error) {
	return doList[DomainRecord](ctx, a.d, "list_domain_records", fmt.Sprintf("/domains/%d/records", domainID))
}

// CreateDomainRecord adds a record to a domain.
func (a *API) CreateDomainRecord(ctx context.Context, domainID int, opts DomainRecordCreateOptions) (*DomainRecord, error) {
	return doPost[DomainRecord](ctx, a.d, "create_domain_record", fmt.Sprintf("/domains/%d/records", domainID), opts)
}

// DeleteDomainRecord removes a record from a domain.
func (a *API) DeleteDomainRecord(ctx context.Context, domainID, recordID int) error {
	return doDelete(ctx, a.d, "delete_domain_record", fmt.Sprintf("/domains/%d/records/%d", domainID, recordID))
}
