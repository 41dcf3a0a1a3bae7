package services

import (
	"context"
	"sort"
	"time"

	resp "tuliptour/internal/models/response_models"
	"tuliptour/internal/repositories"
	"tuliptour/pkg/utils"
)

// UnknownPackageTitle is the bucket for bookings whose package reference
// is missing; such bookings are counted, never dropped.
const UnknownPackageTitle = "Unknown"

const (
	defaultCohortMonths = 6
	defaultTopPackages  = 5
	monthlyTopPackages  = 3
)

type AnalyticsServiceInterface interface {
	BuildDashboard(ctx context.Context, months, topN int, loc *time.Location) (*resp.DashboardReport, error)
}

type AnalyticsService struct {
	repo repositories.AnalyticsRepositoryInterface
	now  func() time.Time
}

func NewAnalyticsService(repo repositories.AnalyticsRepositoryInterface) AnalyticsServiceInterface {
	return &AnalyticsService{repo: repo, now: time.Now}
}

func (s *AnalyticsService) BuildDashboard(ctx context.Context, months, topN int, loc *time.Location) (*resp.DashboardReport, error) {
	if months <= 0 {
		months = defaultCohortMonths
	}
	if topN <= 0 {
		topN = defaultTopPackages
	}
	if loc == nil {
		loc = time.UTC
	}

	totalPackages, err := s.repo.CountPackages(ctx)
	if err != nil {
		return nil, err
	}

	bookingRows, err := s.repo.BookingRows(ctx)
	if err != nil {
		return nil, err
	}

	messageRows, err := s.repo.MessageRows(ctx)
	if err != nil {
		return nil, err
	}

	samples := make([]bookingSample, 0, len(bookingRows))
	for _, row := range bookingRows {
		samples = append(samples, bookingSample{
			title:     row.Title,
			createdAt: time.Unix(row.CreatedAt, 0).In(loc),
		})
	}

	return &resp.DashboardReport{
		Timezone: loc.String(),
		Totals: resp.DashboardTotals{
			Bookings: int64(len(bookingRows)),
			Packages: totalPackages,
			Messages: int64(len(messageRows)),
		},
		Messages:    splitMessages(messageRows),
		TopPackages: rankPackages(samples, topN),
		Months:      monthlyCohorts(samples, months, s.now(), loc),
	}, nil
}

type bookingSample struct {
	title     string
	createdAt time.Time
}

// rankPackages groups bookings by package title, counts occurrences and
// returns the titles sorted by count descending, truncated to topN.
// Ties keep the first-seen order of the title in the input, which the
// stable sort preserves.
func rankPackages(bookings []bookingSample, topN int) []resp.PackageCount {
	counts := make(map[string]int64)
	order := make([]string, 0)

	for _, b := range bookings {
		title := b.title
		if title == "" {
			title = UnknownPackageTitle
		}
		if _, seen := counts[title]; !seen {
			order = append(order, title)
		}
		counts[title]++
	}

	ranked := make([]resp.PackageCount, 0, len(order))
	for _, title := range order {
		ranked = append(ranked, resp.PackageCount{Title: title, Count: counts[title]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// splitMessages partitions messages into replied vs pending;
// pending is always total minus replied.
func splitMessages(messages []repositories.MessageRow) resp.MessageSplit {
	var replied int64
	for _, m := range messages {
		if m.IsReplied {
			replied++
		}
	}
	total := int64(len(messages))
	return resp.MessageSplit{
		Total:   total,
		Replied: replied,
		Pending: total - replied,
	}
}

// monthlyCohorts buckets bookings into a trailing window of calendar
// months, oldest first. Each bucket covers the inclusive range
// [first of month 00:00, last of month 23:59:59...] in loc and carries a
// top-3 ranking recomputed over just that month's bookings.
func monthlyCohorts(bookings []bookingSample, months int, now time.Time, loc *time.Location) []resp.MonthlyCohort {
	cohorts := make([]resp.MonthlyCohort, 0, months)

	for offset := months - 1; offset >= 0; offset-- {
		first, last := utils.MonthWindow(now, offset, loc)

		var inMonth []bookingSample
		for _, b := range bookings {
			if b.createdAt.Before(first) || b.createdAt.After(last) {
				continue
			}
			inMonth = append(inMonth, b)
		}

		cohorts = append(cohorts, resp.MonthlyCohort{
			Month:       first.Format("2006-01"),
			Start:       first,
			End:         last,
			Bookings:    int64(len(inMonth)),
			TopPackages: rankPackages(inMonth, monthlyTopPackages),
		})
	}

	return cohorts
}
