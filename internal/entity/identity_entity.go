package entity

// Role is the acting user's permission class. There is no authentication:
// identity is a display string supplied explicitly on every call.
type Role string

const (
	RoleRecruiter     Role = "Recruiter"
	RoleHiringManager Role = "HiringManager"
)

// Identity is threaded explicitly into every pipeline and approval call
// instead of being read from ambient session state.
type Identity struct {
	Name string
	Role Role
}

// CanMutatePipeline reports whether the role may mutate pipeline boards.
// Hiring managers are read-only viewers, even over their own requisitions.
func (i Identity) CanMutatePipeline() bool {
	return i.Role == RoleRecruiter
}
