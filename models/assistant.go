package models

import "time"

// Assistant is a configured voice agent belonging to one company.
type Assistant struct {
	Id               string    `json:"id"`
	CompanyId        string    `json:"company_id"`
	Name             string    `json:"assistant_name"`
	Description      string    `json:"description"`
	AgentDescription string    `json:"agent_description"`
	Language         string    `json:"language"`
	Specialization   string    `json:"specialization"`
	CallPreference   string    `json:"call_preference"`
	WebsiteUrl       string    `json:"website_url"`
	DefaultPhone     string    `json:"default_phone"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateAssistantRequest struct {
	CompanyId        string `json:"company_id"`
	Name             string `json:"assistant_name" binding:"required"`
	Description      string `json:"description"`
	AgentDescription string `json:"agent_description"`
	Language         string `json:"language"`
	Specialization   string `json:"specialization"`
	CallPreference   string `json:"call_preference"`
	WebsiteUrl       string `json:"website_url"`
	DefaultPhone     string `json:"default_phone"`
	IsActive         bool   `json:"is_active"`
}

type UpdateAssistantRequest struct {
	Name             *string `json:"assistant_name,omitempty"`
	Description      *string `json:"description,omitempty"`
	AgentDescription *string `json:"agent_description,omitempty"`
	Language         *string `json:"language,omitempty"`
	Specialization   *string `json:"specialization,omitempty"`
	CallPreference   *string `json:"call_preference,omitempty"`
	WebsiteUrl       *string `json:"website_url,omitempty"`
	DefaultPhone     *string `json:"default_phone,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

type GetAllAssistantsRequest struct {
	CompanyId string
	Search    string
	Limit     int
	Offset    int
}

type GetAllAssistantsResponse struct {
	Count      int         `json:"count"`
	Assistants []Assistant `json:"assistants"`
}
