package admin

// StatsOutput for GET /admin/stats
type StatsOutput struct {
	Body Stats
}

// ProfilesListOutput carries the RFC 8288 pagination links.
type ProfilesListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ProfilesData
}
