package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fittrack/internal/app"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/repository"
)

type historyService struct {
	progress repository.ProgressRepo
	profiles repository.ProfileRepo
	defaults domain.UserMaxes
	now      Clock
}

func NewHistoryService(
	progress repository.ProgressRepo,
	profiles repository.ProfileRepo,
	defaults domain.UserMaxes,
	now Clock,
) HistoryService {
	return &historyService{
		progress: progress,
		profiles: profiles,
		defaults: defaults,
		now:      clockOrSystem(now),
	}
}

// Month lays out a calendar month with planned and completed days flagged.
// Completed days outside the plan are still flagged.
func (s *historyService) Month(ctx context.Context, year int, month time.Month) (*app.MonthView, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	p, err := loadProgress(ctx, s.progress, s.defaults)
	if err != nil {
		return nil, err
	}

	planned := make(map[domain.Date]string)
	for _, w := range planFor(profile, p) {
		planned[w.Date] = w.ID
	}
	completed := p.CompletedDates()
	today := domain.DateOf(s.now())

	first := domain.Date{Year: year, Month: month, Day: 1}
	view := &app.MonthView{
		Year:    year,
		Month:   month,
		Leading: (int(first.Weekday()) + 6) % 7,
	}
	for d := first; d.Month == month; d = d.AddDays(1) {
		id, isPlanned := planned[d]
		cell := app.DayCell{
			Date:      d,
			WorkoutID: id,
			Planned:   isPlanned,
			Completed: completed[d],
			Today:     d == today,
		}
		if cell.Planned {
			view.Planned++
		}
		if cell.Completed {
			view.Completed++
		}
		view.Days = append(view.Days, cell)
	}
	return view, nil
}
