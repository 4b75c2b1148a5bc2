package config

const (
	ColumnTypeString  = "string"
	ColumnTypeNumber  = "number"
	ColumnTypeBoolean = "boolean"
	ColumnTypeDate    = "date"
)

// ColumnTypes is the set of types a table column may carry.
var ColumnTypes = map[string]bool{
	ColumnTypeString:  true,
	ColumnTypeNumber:  true,
	ColumnTypeBoolean: true,
	ColumnTypeDate:    true,
}

const (
	CampaignStatusScheduled = "scheduled"
	CampaignStatusRunning   = "running"
	CampaignStatusCompleted = "completed"
)
