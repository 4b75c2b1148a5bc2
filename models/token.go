package models

import "time"

// ApiToken authorizes one organization's dashboard against the API.
// Tokens are presented as "<id>.<secret>"; only the bcrypt hash of the
// secret is stored.
type ApiToken struct {
	Id         string    `json:"id"`
	Label      string    `json:"label"`
	SecretHash string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
