package model

// Identity is the verified caller record attached to a request by the
// identity middleware. The authorization engine trusts it completely and
// performs no token verification of its own.
type Identity struct {
	ID               string `json:"id"`
	Role             string `json:"role"` // "SuperAdmin", "Admin", "User"
	OrganizationID   string `json:"organization_id"`
	DepartmentID     string `json:"department_id,omitempty"`
	IsPlatformMember bool   `json:"is_platform_member"`
}
