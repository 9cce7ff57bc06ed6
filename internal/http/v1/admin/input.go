package admin

import "github.com/janisto/digicard/internal/platform/pagination"

// StatsInput for GET /admin/stats
type StatsInput struct {
	Days int `query:"days" default:"30" doc:"Length of the daily series in days: 7, 30 or 90"`
}

// ProfilesListInput for GET /admin/profiles
type ProfilesListInput struct {
	pagination.Params
}
