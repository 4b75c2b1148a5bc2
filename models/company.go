package models

import "time"

type Company struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	WebsiteUrl string    `json:"website_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateCompanyRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	WebsiteUrl string `json:"website_url"`
}

type UpdateCompanyRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	WebsiteUrl *string `json:"website_url,omitempty"`
}

type GetAllCompaniesRequest struct {
	Search string
	Limit  int
	Offset int
}

type GetAllCompaniesResponse struct {
	Count     int       `json:"count"`
	Companies []Company `json:"companies"`
}
