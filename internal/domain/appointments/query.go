package appointments

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MaxSummaryDays acota el rango del resumen para no iterar años enteros.
const MaxSummaryDays = 366

type DaySummary struct {
	Date      string
	Total     int
	Scheduled int
	Completed int
	Cancelled int
}

// Summary cuenta citas por día y estado en [from, to]. Sin rango: hoy..hoy+6.
// Devuelve una fila por cada día del rango, aunque no tenga citas.
func (s *Service) Summary(ctx context.Context, from, to string) ([]DaySummary, error) {
	var start, end time.Time

	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		y, m, d := s.now().UTC().Date()
		start = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 0, 6)
	} else {
		var err error
		if start, err = time.Parse(DateLayout, strings.TrimSpace(from)); err != nil {
			return nil, fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidInput)
		}
		if end, err = time.Parse(DateLayout, strings.TrimSpace(to)); err != nil {
			return nil, fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	if end.Before(start) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}
	if end.Sub(start) > MaxSummaryDays*24*time.Hour {
		return nil, fmt.Errorf("%w: range too large", ErrInvalidInput)
	}

	items, err := s.repo.List(ctx, ListFilter{
		From: start.Format(DateLayout),
		To:   end.Format(DateLayout),
	})
	if err != nil {
		return nil, err
	}

	byDate := map[string]*DaySummary{}
	for _, a := range items {
		ds, ok := byDate[a.Date]
		if !ok {
			ds = &DaySummary{Date: a.Date}
			byDate[a.Date] = ds
		}
		ds.Total++
		switch a.Status {
		case StatusScheduled:
			ds.Scheduled++
		case StatusCompleted:
			ds.Completed++
		case StatusCancelled:
			ds.Cancelled++
		}
	}

	out := make([]DaySummary, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateLayout)
		if ds, ok := byDate[key]; ok {
			out = append(out, *ds)
			continue
		}
		out = append(out, DaySummary{Date: key})
	}
	return out, nil
}

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type HistoryQuery struct {
	Q      string // owner name / owner phone / pet name
	From   string
	To     string
	Status Status
	Page   int
	Limit  int
}

type HistoryPage struct {
	Items   []Appointment
	Page    int
	Limit   int
	Total   int
	HasMore bool
}

// History: filtra date/status en el store, resuelve pet/owner y aplica el texto en memoria.
func (s *Service) History(ctx context.Context, q HistoryQuery) (HistoryPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	if q.Status != "" && !q.Status.Valid() {
		return HistoryPage{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, q.Status)
	}

	items, err := s.repo.List(ctx, ListFilter{
		From:   strings.TrimSpace(q.From),
		To:     strings.TrimSpace(q.To),
		Status: q.Status,
		Newest: true,
	})
	if err != nil {
		return HistoryPage{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(q.Q))
	filtered := make([]Appointment, 0, len(items))
	for _, a := range items {
		a = s.resolve(ctx, a)
		if needle != "" && !matchesHistory(a, needle) {
			continue
		}
		filtered = append(filtered, a)
	}

	// page-1 se acota antes de multiplicar para que skip no desborde.
	skip := len(filtered)
	if page-1 <= len(filtered)/limit {
		skip = (page - 1) * limit
	}
	pageItems := make([]Appointment, 0)
	if skip < len(filtered) {
		end := skip + limit
		if end > len(filtered) {
			end = len(filtered)
		}
		pageItems = filtered[skip:end]
	}

	return HistoryPage{
		Items:   pageItems,
		Page:    page,
		Limit:   limit,
		Total:   len(filtered),
		HasMore: skip+len(pageItems) < len(filtered),
	}, nil
}

func matchesHistory(a Appointment, needle string) bool {
	var hay []string
	if a.Owner != nil {
		hay = append(hay, a.Owner.Name, a.Owner.Phone)
	}
	if a.Pet != nil {
		hay = append(hay, a.Pet.Name)
	}
	for _, h := range hay {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
