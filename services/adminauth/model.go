package adminauth

// Principal is the authenticated identity behind a request.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AdminRecord grants its principal administrative access; its existence alone is the grant.
type AdminRecord struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type Reason string

const (
	ReasonNone                Reason = ""
	ReasonUnauthenticated     Reason = "Not authenticated"
	ReasonAdminAccessRequired Reason = "Admin access required"
	ReasonDatabaseError       Reason = "Database error"
)

// Decision is the outcome of an admin check: not-authenticated, not-admin or admin(role).
type Decision struct {
	IsAdmin   bool       `json:"isAdmin"`
	AdminRole string     `json:"adminRole,omitempty"`
	User      *Principal `json:"user,omitempty"`
	Error     Reason     `json:"error,omitempty"`
}

func unauthenticated() Decision {
	return Decision{IsAdmin: false, Error: ReasonUnauthenticated}
}
