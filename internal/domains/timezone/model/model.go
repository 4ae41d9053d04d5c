package model

const (
	TableName  = "timezones"
	EntityName = "timezone"

	FieldUsername = "username"
	FieldTimezone = "timezone"
)

// Timezone is one stored preference: a lowercased username and the IANA zone
// it chose.
type Timezone struct {
	Username string `db:"username" json:"username"`
	Timezone string `db:"timezone" json:"timezone"`
}
