package models

import "time"

// Contact is one outbound-call target inside a campaign. The field set
// mirrors the sample contact sheet the dashboard offers for download.
type Contact struct {
	Phone         string `json:"phone"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	Date          string `json:"date"`
	ProductName   string `json:"product_name"`
	ServiceNumber string `json:"service_number"`
}

// Campaign is a scheduled bulk outbound-call run for one assistant.
type Campaign struct {
	Id          string     `json:"id"`
	AssistantId string     `json:"assistant_id"`
	Name        string     `json:"campaign_name"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Contacts    []Contact  `json:"contacts"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateCampaignRequest struct {
	AssistantId string     `json:"assistant_id" binding:"required"`
	Name        string     `json:"campaign_name" binding:"required"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Contacts    []Contact  `json:"contacts"`
}

type GetAllCampaignsRequest struct {
	AssistantId string
	Status      string
	Limit       int
	Offset      int
}

type GetAllCampaignsResponse struct {
	Count     int        `json:"count"`
	Campaigns []Campaign `json:"campaigns"`
}
