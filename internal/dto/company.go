package dto

// ── company module DTOs ──

// CreateCompanyRequest sets up a new company; the caller becomes its owner.
type CreateCompanyRequest struct {
	Name             string `json:"name"              binding:"required,min=2,max=200"`
	Industry         string `json:"industry"          binding:"omitempty,max=100"`
	Address          string `json:"address"           binding:"omitempty,max=300"`
	Phone            string `json:"phone"             binding:"omitempty,max=50"`
	Email            string `json:"email"             binding:"omitempty,email"`
	Website          string `json:"website"           binding:"omitempty,max=255"`
	Timezone         string `json:"timezone"          binding:"omitempty,max=64"`
	SubscriptionPlan string `json:"subscription_plan" binding:"omitempty,oneof=starter professional enterprise"`
}

// UpdateCompanyRequest edits company settings.
type UpdateCompanyRequest struct {
	Name             *string `json:"name"              binding:"omitempty,min=2,max=200"`
	Industry         *string `json:"industry"          binding:"omitempty,max=100"`
	Address          *string `json:"address"           binding:"omitempty,max=300"`
	Phone            *string `json:"phone"             binding:"omitempty,max=50"`
	Email            *string `json:"email"             binding:"omitempty,email"`
	Website          *string `json:"website"           binding:"omitempty,max=255"`
	Timezone         *string `json:"timezone"          binding:"omitempty,max=64"`
	SubscriptionPlan *string `json:"subscription_plan" binding:"omitempty,oneof=starter professional enterprise"`
}

// CompanyResponse is the company view.
type CompanyResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Industry         string `json:"industry,omitempty"`
	Address          string `json:"address,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	Website          string `json:"website,omitempty"`
	Timezone         string `json:"timezone"`
	SubscriptionPlan string `json:"subscription_plan"`
	OwnerEmail       string `json:"owner_email"`
	TrialEndsAt      string `json:"trial_ends_at,omitempty"`
	CreatedAt        string `json:"created_at"`
}
