package dto

type PreferencesRequest struct {
	TargetRoles      []string `json:"target_roles"`
	Locations        []string `json:"locations"`
	RemotePreference string   `json:"remote_preference"`
	MinSalary        *int     `json:"min_salary"`
	TechStack        []string `json:"tech_stack"`
	AutoApplyEnabled bool     `json:"auto_apply_enabled"`
}

type PreferencesResponse struct {
	TargetRoles      []string `json:"target_roles"`
	Locations        []string `json:"locations"`
	RemotePreference string   `json:"remote_preference"`
	MinSalary        *int     `json:"min_salary"`
	TechStack        []string `json:"tech_stack"`
	AutoApplyEnabled bool     `json:"auto_apply_enabled"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}
