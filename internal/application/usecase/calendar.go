package usecase

import (
	"context"
	"sort"
	"time"

	"courseadmin/internal/domain"
)

const dayLayout = "2006-01-02"

type CalendarDay struct {
	Date   string         `json:"date"`
	Events []domain.Event `json:"events"`
}

type CalendarMonth struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Timezone string        `json:"timezone"`
	Days     []CalendarDay `json:"days"`
}

type CalendarUseCase struct {
	events *ResourceService[domain.Event]
}

func NewCalendarUseCase(events *ResourceService[domain.Event]) *CalendarUseCase {
	return &CalendarUseCase{events: events}
}

// Month returns the events overlapping a month, grouped by local day. An
// event spanning several days is listed on each of them.
func (uc *CalendarUseCase) Month(ctx context.Context, session domain.Session, year, month int, loc *time.Location) (CalendarMonth, error) {
	if year < 1970 || year > 9999 || month < 1 || month > 12 {
		return CalendarMonth{}, domain.ErrInvalidMonth
	}
	if loc == nil {
		loc = time.UTC
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	// upstream сравнивает даты без зоны: берем по дню с каждой стороны,
	// лишнее обрежет groupByDay
	events, err := collectAll(ctx, uc.events, session, map[string]string{
		"from": first.AddDate(0, 0, -1).Format(dayLayout),
		"to":   next.Format(dayLayout),
	})
	if err != nil {
		return CalendarMonth{}, err
	}

	return CalendarMonth{
		Year:     year,
		Month:    month,
		Timezone: loc.String(),
		Days:     groupByDay(events, first, next),
	}, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func groupByDay(events []domain.Event, first, next time.Time) []CalendarDay {
	loc := first.Location()
	byDay := make(map[string][]domain.Event)

	for _, e := range events {
		start := e.StartsAt.In(loc)
		end := e.EndsAt.In(loc)
		if end.Before(start) {
			end = start
		}
		// событие до полуночи не должно попадать на следующий день
		if end.After(start) && end.Equal(startOfDay(end)) {
			end = end.Add(-time.Nanosecond)
		}
		if !start.Before(next) || end.Before(first) {
			continue
		}

		day := startOfDay(start)
		if day.Before(first) {
			day = first
		}
		lastDay := startOfDay(end)
		if !lastDay.Before(next) {
			lastDay = next.AddDate(0, 0, -1)
		}
		for d := day; !d.After(lastDay); d = d.AddDate(0, 0, 1) {
			key := d.Format(dayLayout)
			byDay[key] = append(byDay[key], e)
		}
	}

	days := make([]CalendarDay, 0, len(byDay))
	for date, list := range byDay {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].StartsAt.Equal(list[j].StartsAt) {
				return list[i].ID < list[j].ID
			}
			return list[i].StartsAt.Before(list[j].StartsAt)
		})
		days = append(days, CalendarDay{Date: date, Events: list})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
