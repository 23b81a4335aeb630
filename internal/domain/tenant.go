package domain

// TenantContext is the per-request identity resolved from the auth token.
// CompanyID may be empty when the token predates multi-tenancy or is
// misconfigured; scoped operations must treat that as ErrMissingTenant.
type TenantContext struct {
	CompanyID     string
	CompanyName   string
	UserID        string
	UserName      string
	UserEmail     string
	Role          string
	Authenticated bool
	Claims        map[string]string
}

// HasTenant reports whether the context carries a usable company id.
func (t TenantContext) HasTenant() bool {
	return t.CompanyID != ""
}
