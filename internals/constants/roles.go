package constants

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleViewer = "viewer"
)

var (
	AllRoles = []string{
		RoleAdmin,
		RoleStaff,
		RoleViewer,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
