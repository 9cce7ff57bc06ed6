// Package analytics aggregates card usage events into the admin report.
package analytics

import (
	"errors"
	"slices"
	"time"
)

// EventType is the kind of a recorded card interaction.
type EventType string

const (
	EventView          EventType = "view"
	EventContactSaved  EventType = "contact_saved"
	EventWhatsAppClick EventType = "whatsapp_click"
	EventLinkedInClick EventType = "linkedin_click"
)

// EventTypes lists the recognized vocabulary.
var EventTypes = []EventType{EventView, EventContactSaved, EventWhatsAppClick, EventLinkedInClick}

// Valid reports whether t belongs to the recognized vocabulary.
func (t EventType) Valid() bool {
	switch t {
	case EventView, EventContactSaved, EventWhatsAppClick, EventLinkedInClick:
		return true
	}
	return false
}

// Event is an immutable interaction with a public card.
type Event struct {
	ProfileID string
	Type      EventType
	CreatedAt time.Time
}

// ProfileInfo is the slice of a profile the aggregator needs.
type ProfileInfo struct {
	ID        string
	CreatedAt time.Time
}

// RecentWindow is the trailing period counted by Totals.RecentUsers.
const RecentWindow = 7 * 24 * time.Hour

// Totals are the service-wide counters of a report.
type Totals struct {
	TotalUsers          int `json:"totalUsers"          doc:"Number of registered profiles"`
	RecentUsers         int `json:"recentUsers"         doc:"Profiles created in the last 7 days"`
	TotalViews          int `json:"totalViews"          doc:"Card views"`
	TotalContacts       int `json:"totalContacts"       doc:"Contacts saved"`
	TotalWhatsAppClicks int `json:"totalWhatsAppClicks" doc:"WhatsApp link clicks"`
	TotalLinkedInClicks int `json:"totalLinkedInClicks" doc:"LinkedIn link clicks"`
}

// Counts are the per-profile counters of a report.
type Counts struct {
	Views    int `json:"views"    doc:"Card views"`
	Contacts int `json:"contacts" doc:"Contacts saved"`
}

// Report is the result of Aggregate.
type Report struct {
	Totals     Totals
	PerProfile map[string]Counts
}

// Profile returns the counters of id, zero when the profile has no events.
func (r Report) Profile(id string) Counts {
	return r.PerProfile[id]
}

// Aggregate folds profiles and events into a Report. Events of unknown type are
// ignored.
func Aggregate(profiles []ProfileInfo, events []Event, now time.Time) Report {
	r := Report{PerProfile: make(map[string]Counts, len(profiles))}
	r.Totals.TotalUsers = len(profiles)

	since := now.Add(-RecentWindow)
	for _, p := range profiles {
		if !p.CreatedAt.Before(since) && !p.CreatedAt.After(now) {
			r.Totals.RecentUsers++
		}
	}

	for _, e := range events {
		c := r.PerProfile[e.ProfileID]
		switch e.Type {
		case EventView:
			r.Totals.TotalViews++
			c.Views++
		case EventContactSaved:
			r.Totals.TotalContacts++
			c.Contacts++
		case EventWhatsAppClick:
			r.Totals.TotalWhatsAppClicks++
			continue
		case EventLinkedInClick:
			r.Totals.TotalLinkedInClicks++
			continue
		default:
			continue
		}
		r.PerProfile[e.ProfileID] = c
	}
	return r
}

// ConversionRate is contacts saved per card view, 0 without views.
func ConversionRate(t Totals) float64 {
	if t.TotalViews == 0 {
		return 0
	}
	return float64(t.TotalContacts) / float64(t.TotalViews)
}

// ErrInvalidWindow is returned by Series for an unsupported number of days.
var ErrInvalidWindow = errors.New("invalid window: days must be 7, 30 or 90")

// Windows lists the supported Series lengths in days.
var Windows = []int{7, 30, 90}

// Bucket is the activity of one UTC calendar day.
type Bucket struct {
	Date           string `json:"date"           doc:"UTC day" example:"2025-01-31"`
	Views          int    `json:"views"`
	Contacts       int    `json:"contacts"`
	WhatsAppClicks int    `json:"whatsappClicks"`
	LinkedInClicks int    `json:"linkedinClicks"`
}

const dayLayout = "2006-01-02"

// Series returns one bucket per UTC day from today-days+1 through today, oldest
// first. Days without events report zeros.
func Series(events []Event, days int, now time.Time) ([]Bucket, error) {
	if !slices.Contains(Windows, days) {
		return nil, ErrInvalidWindow
	}

	today := now.UTC().Truncate(24 * time.Hour)
	buckets := make([]Bucket, days)
	index := make(map[string]int, days)
	for i := range days {
		d := today.AddDate(0, 0, i-days+1).Format(dayLayout)
		buckets[i].Date = d
		index[d] = i
	}

	for _, e := range events {
		i, ok := index[e.CreatedAt.UTC().Format(dayLayout)]
		if !ok {
			continue
		}
		b := &buckets[i]
		switch e.Type {
		case EventView:
			b.Views++
		case EventContactSaved:
			b.Contacts++
		case EventWhatsAppClick:
			b.WhatsAppClicks++
		case EventLinkedInClick:
			b.LinkedInClicks++
		}
	}
	return buckets, nil
}
