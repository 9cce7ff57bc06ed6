// Package stats builds the admin usage report from stored profiles and
// events.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/janisto/digicard/internal/analytics"
	"github.com/janisto/digicard/internal/service/events"
	"github.com/janisto/digicard/internal/service/profile"
)

// Overview is the service-wide report for one series window.
type Overview struct {
	Totals         analytics.Totals
	ConversionRate float64
	Series         []analytics.Bucket
}

// ProfileStats pairs a profile with its interaction counters.
type ProfileStats struct {
	Profile *profile.Profile
	Counts  analytics.Counts
}

// Service loads profiles and events and aggregates them on demand.
type Service struct {
	profiles profile.Service
	events   events.Service
	now      func() time.Time
}

// New creates a stats service.
func New(profiles profile.Service, ev events.Service) *Service {
	return &Service{profiles: profiles, events: ev, now: time.Now}
}

func (s *Service) load(ctx context.Context) ([]*profile.Profile, analytics.Report, []analytics.Event, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, analytics.Report{}, nil, fmt.Errorf("load profiles: %w", err)
	}
	evs, err := s.events.List(ctx)
	if err != nil {
		return nil, analytics.Report{}, nil, fmt.Errorf("load events: %w", err)
	}

	infos := make([]analytics.ProfileInfo, 0, len(profiles))
	for _, p := range profiles {
		infos = append(infos, analytics.ProfileInfo{ID: p.ID, CreatedAt: p.CreatedAt})
	}
	return profiles, analytics.Aggregate(infos, evs, s.now()), evs, nil
}

// Overview returns totals, the conversion rate and a daily series over the
// last days days. days must be one of analytics.Windows.
func (s *Service) Overview(ctx context.Context, days int) (*Overview, error) {
	_, report, evs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	series, err := analytics.Series(evs, days, s.now())
	if err != nil {
		return nil, err
	}
	return &Overview{
		Totals:         report.Totals,
		ConversionRate: analytics.ConversionRate(report.Totals),
		Series:         series,
	}, nil
}

// Profiles returns every profile, oldest first, with its counters.
func (s *Service) Profiles(ctx context.Context) ([]ProfileStats, error) {
	profiles, report, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProfileStats, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ProfileStats{Profile: p, Counts: report.Profile(p.ID)})
	}
	return out, nil
}
