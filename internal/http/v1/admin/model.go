package admin

import (
	"github.com/janisto/digicard/internal/analytics"
	"github.com/janisto/digicard/internal/platform/timeutil"
)

// Stats is the service-wide usage report.
type Stats struct {
	Totals         analytics.Totals   `json:"totals"`
	ConversionRate float64            `json:"conversionRate" doc:"Contacts saved per view, 0 without views" example:"0.25"`
	Series         []analytics.Bucket `json:"series"         doc:"One bucket per UTC day, oldest first"`
}

// ProfileSummary is one row of the admin profile list.
type ProfileSummary struct {
	ID          string           `json:"id"          doc:"Owner user ID"`
	Username    string           `json:"username"    doc:"Public username" example:"jeandupont"`
	DisplayName string           `json:"displayName" doc:"Name shown on the card"`
	CardURL     string           `json:"cardUrl"     doc:"Shareable public card URL"`
	Counts      analytics.Counts `json:"counts"`
	CreatedAt   timeutil.Time    `json:"createdAt"   doc:"Registration timestamp" example:"2024-01-15T10:30:00.000Z"`
}

// ProfilesData is the paginated profile list.
type ProfilesData struct {
	Profiles []ProfileSummary `json:"profiles" doc:"Profiles, oldest first"`
	Total    int              `json:"total"    doc:"Number of registered profiles" example:"42"`
}
