package dto

// ── project module DTOs ──

// CreateProjectRequest creates a project.
type CreateProjectRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=150"`
	Code        string `json:"code"        binding:"omitempty,max=30"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateProjectRequest edits a project.
type UpdateProjectRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=150"`
	Code        *string `json:"code"        binding:"omitempty,max=30"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Status      *string `json:"status"      binding:"omitempty,oneof=active archived"`
}

// ProjectListRequest is the project list query.
type ProjectListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=active archived"`
}

// ProjectResponse is the project view.
type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}
