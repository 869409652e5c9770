package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/chronogrog/internal/errors"
)

// Validate checks the structural guarantees of a built plan: ids are unique,
// dependencies stay within their recipe and form no cycle, and each recipe's
// phases run back to back from its start.
func (p *Plan) Validate() error {
	ids := make(map[int]bool)
	for i, r := range p.Recipes {
		if ids[r.ID] {
			return errors.New(errors.ErrCodePlanInvalid,
				fmt.Sprintf("duplicate id %d at recipe index %d", r.ID, i))
		}
		ids[r.ID] = true

		for _, ph := range r.Phases {
			if ids[ph.ID] {
				return errors.New(errors.ErrCodePlanInvalid,
					fmt.Sprintf("duplicate id %d in recipe %q", ph.ID, r.Name))
			}
			ids[ph.ID] = true
		}
	}

	for _, r := range p.Recipes {
		if err := r.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (r Recipe) validate() error {
	own := make(map[int]bool, len(r.Phases))
	for _, ph := range r.Phases {
		own[ph.ID] = true
	}

	cursor := r.StartDate
	for i, ph := range r.Phases {
		if !ph.StartDate.Equal(cursor) {
			return errors.New(errors.ErrCodePlanInvalid,
				fmt.Sprintf("phase %d of recipe %q starts at %s, expected %s",
					ph.ID, r.Name, ph.StartDate.Format("2006-01-02 15:04:05"), cursor.Format("2006-01-02 15:04:05")))
		}
		cursor = cursor.Add(ph.Duration)

		for j, dep := range ph.Dependencies {
			if !own[dep] {
				return errors.New(errors.ErrCodePlanInvalid,
					fmt.Sprintf("phase %d of recipe %q depends on %d, which is not one of its phases", ph.ID, r.Name, dep))
			}
			if j > 0 && ph.Dependencies[j-1] >= dep {
				return errors.New(errors.ErrCodePlanInvalid,
					fmt.Sprintf("dependencies of phase %d at index %d are not strictly ascending", ph.ID, i))
			}
		}
	}

	return r.checkCircularDependencies()
}

// checkCircularDependencies detects cycles in the phase dependency graph
func (r Recipe) checkCircularDependencies() error {
	graph := make(map[int][]int, len(r.Phases))
	for _, ph := range r.Phases {
		graph[ph.ID] = ph.Dependencies
	}

	visited := make(map[int]bool)
	recStack := make(map[int]bool)

	var hasCycle func(id int, path []string) error
	hasCycle = func(id int, path []string) error {
		visited[id] = true
		recStack[id] = true
		path = append(path, strconv.Itoa(id))

		for _, dep := range graph[id] {
			if !visited[dep] {
				if err := hasCycle(dep, path); err != nil {
					return err
				}
			} else if recStack[dep] {
				cyclePath := append(path, strconv.Itoa(dep))
				return errors.New(errors.ErrCodePlanCyclicDep,
					fmt.Sprintf("circular dependency detected in recipe %q: %s", r.Name, strings.Join(cyclePath, " -> ")))
			}
		}

		recStack[id] = false
		return nil
	}

	for _, ph := range r.Phases {
		if !visited[ph.ID] {
			if err := hasCycle(ph.ID, nil); err != nil {
				return err
			}
		}
	}

	return nil
}
