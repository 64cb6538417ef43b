package person

import (
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/cases"

	"github.com/trezcool/edcentre/core"
)

var (
	maxSuggestions = 3
	suggestMinSim  = .7
)

type (
	// Repository keeps Records in insertion order.
	Repository interface {
		AppendRecord(rec Record) error
		QueryAllRecords() ([]Record, error)
		// GetRecordByName returns the first Record, in insertion order, whose name equals `name` ignoring case.
		GetRecordByName(name string) (Record, error)
		// RemoveRecordByID removes the first Record with the given ID.
		RemoveRecordByID(id uuid.UUID) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Append validates `rec` and adds it at the end of the roster. Records sharing a name are allowed.
func (svc *Service) Append(rec Record) error {
	if rec == nil {
		return ErrInvalidRole
	}
	if err := rec.Base().Validate(); err != nil {
		return err
	}
	if err := svc.repo.AppendRecord(rec); err != nil {
		return errors.Wrap(err, "append record")
	}
	svc.log.Info("record added", rec)
	return nil
}

// ListAll yields every Record in insertion order.
func (svc *Service) ListAll() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		recs, err := svc.repo.QueryAllRecords()
		if err != nil {
			svc.log.Error("query records", err)
			return
		}
		for _, rec := range recs {
			if !yield(rec) {
				return
			}
		}
	}
}

// FilterByRole yields the Records whose role matches `filter`, ignoring case.
// An unknown role yields nothing.
func (svc *Service) FilterByRole(filter string) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		role, err := ParseRole(filter)
		if err != nil {
			svc.log.Debug("filter by role", err, map[string]interface{}{"filter": filter})
			return
		}
		for rec := range svc.ListAll() {
			if rec.Role() != role {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// FindByName returns the first Record whose name equals `name` ignoring case.
// A blank query is never looked up.
func (svc *Service) FindByName(name string) (Record, error) {
	if core.IsBlank(name) {
		return nil, ErrNotFound
	}
	return svc.repo.GetRecordByName(name)
}

// Update logs the changes made in place to `rec` by RunGuidedEdit and checks they kept it valid.
func (svc *Service) Update(rec Record) error {
	if err := rec.Base().Validate(); err != nil {
		return err
	}
	svc.log.Info("record updated", rec)
	return nil
}

// Remove deletes `rec` from the roster.
func (svc *Service) Remove(rec Record) error {
	if err := svc.repo.RemoveRecordByID(rec.Base().ID); err != nil {
		return err
	}
	svc.log.Info("record removed", rec)
	return nil
}

// Suggest returns up to 3 distinct stored names close to `name`, best match first.
func (svc *Service) Suggest(name string) []string {
	fold := cases.Fold()
	query := fold.String(core.CleanString(name))
	if query == "" {
		return nil
	}

	type candidate struct {
		name  string
		ratio float64
	}
	seen := make(map[string]bool)
	candidates := make([]candidate, 0)
	for rec := range svc.ListAll() {
		recName := rec.Base().Name
		key := fold.String(core.CleanString(recName))
		if seen[key] {
			continue
		}
		seen[key] = true
		if ratio := similarity(query, key); ratio >= suggestMinSim {
			candidates = append(candidates, candidate{name: recName, ratio: ratio})
		}
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		switch {
		case a.ratio > b.ratio:
			return -1
		case a.ratio < b.ratio:
			return 1
		default:
			return 0
		}
	})

	names := make([]string, 0, maxSuggestions)
	for _, c := range candidates {
		if len(names) == maxSuggestions {
			break
		}
		names = append(names, c.name)
	}
	return names
}

func similarity(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}
