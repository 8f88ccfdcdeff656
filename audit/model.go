// api/audit/model.go
package audit

import "time"

// DecisionLog is the audit record for one authorization decision, allow or
// deny. Denials carry the internal reason; the reason never reaches the
// caller.
type DecisionLog struct {
	Timestamp      time.Time `json:"timestamp"`
	UserID         string    `json:"user_id"`
	Role           string    `json:"role"`
	OrganizationID string    `json:"organization_id"`
	Resource       string    `json:"resource"`
	Operation      string    `json:"operation"`
	Granted        bool      `json:"granted"`
	Scope          string    `json:"scope,omitempty"`
	Context        string    `json:"context,omitempty"`
	CrossOrgSource string    `json:"cross_org_source,omitempty"`
	Reason         string    `json:"reason,omitempty"`
}
