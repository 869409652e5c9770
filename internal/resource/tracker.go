package resource

import (
	"fmt"
	"sort"
	"time"

	"github.com/felixgeelhaar/chronogrog/internal/interval"
)

// step is the gap placed between the end of one booking and the earliest
// start of the next.
const step = time.Second

// tracked pairs a resource with its bookings, kept sorted by start and
// pairwise non-overlapping.
type tracked struct {
	resource  Resource
	allocated []interval.Interval
}

// Tracker owns a pool of resources and the intervals each one is booked for.
//
// Allocation is first-fit by ascending resource id, so repeated runs over the
// same input make the same decisions. A Tracker is not safe for concurrent
// use; callers that allocate from several goroutines must serialize access.
type Tracker struct {
	resources map[int]*tracked
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{resources: make(map[int]*tracked)}
}

// Track registers res, replacing any resource already tracked under the same
// id. The registered resource starts with no bookings.
func (t *Tracker) Track(res Resource) {
	t.resources[res.ID] = &tracked{resource: res}
}

// Len returns the number of tracked resources.
func (t *Tracker) Len() int {
	return len(t.resources)
}

// Resource returns the tracked resource with the given id.
func (t *Tracker) Resource(id int) (Resource, bool) {
	tr, ok := t.resources[id]
	if !ok {
		return Resource{}, false
	}
	return tr.resource, true
}

// Resources returns every tracked resource in ascending id order.
func (t *Tracker) Resources() []Resource {
	out := make([]Resource, 0, len(t.resources))
	for _, tr := range t.sorted() {
		out = append(out, tr.resource)
	}
	return out
}

// Allocations returns a copy of the bookings held by the resource with the
// given id, sorted by start.
func (t *Tracker) Allocations(id int) []interval.Interval {
	tr, ok := t.resources[id]
	if !ok {
		return nil
	}
	out := make([]interval.Interval, len(tr.allocated))
	copy(out, tr.allocated)
	return out
}

// IsAllocated reports whether period intersects any booking of the resource
// with the given id. Unknown ids are never allocated.
func (t *Tracker) IsAllocated(id int, period interval.Interval) bool {
	tr, ok := t.resources[id]
	if !ok {
		return false
	}
	return tr.intersects(period)
}

// IsTypeFreeForPeriod reports whether at least one resource of typ has no
// booking intersecting period.
func (t *Tracker) IsTypeFreeForPeriod(typ Type, period interval.Interval) bool {
	for _, tr := range t.resources {
		if tr.resource.Type == typ && !tr.intersects(period) {
			return true
		}
	}
	return false
}

// EarliestFreeDate returns the earliest start at or after period.Start from
// which a period of the same length fits on the resource with the given id.
//
// If the resource is free for period, period.Start is returned. Otherwise the
// candidates are one second past the end of each booking that does not end
// before period.Start, tried in order. The resource must be tracked and must
// hold at least one such booking; EarliestFreeDate panics otherwise.
func (t *Tracker) EarliestFreeDate(id int, period interval.Interval) time.Time {
	tr, ok := t.resources[id]
	if !ok {
		panic(fmt.Sprintf("resource: EarliestFreeDate on untracked resource %d", id))
	}
	if !tr.intersects(period) {
		return period.Start
	}

	for _, booked := range tr.allocated {
		if booked.End.Before(period.Start) {
			continue
		}
		candidate := booked.End.Add(step)
		if !tr.intersects(period.Shift(candidate)) {
			return candidate
		}
	}

	panic(fmt.Sprintf("resource: no free slot for resource %d after %s", id, period.Start.Format(time.RFC3339)))
}

// Allocate books period on the free resource of typ with the smallest id and
// returns it. The boolean is false when no resource of typ is free for the
// whole period; nothing is booked in that case.
func (t *Tracker) Allocate(typ Type, period interval.Interval) (Resource, bool) {
	for _, tr := range t.sorted() {
		if tr.resource.Type != typ || tr.intersects(period) {
			continue
		}
		tr.insert(period)
		return tr.resource, true
	}
	return Resource{}, false
}

// NextAvailableDateForType returns the earliest date at which some resource
// of typ can take a period of the same length as period. The boolean is
// false when no resource of typ is tracked.
func (t *Tracker) NextAvailableDateForType(typ Type, period interval.Interval) (time.Time, bool) {
	var (
		earliest time.Time
		found    bool
	)
	for _, tr := range t.sorted() {
		if tr.resource.Type != typ {
			continue
		}
		free := t.EarliestFreeDate(tr.resource.ID, period)
		if !found || free.Before(earliest) {
			earliest = free
			found = true
		}
	}
	return earliest, found
}

func (t *Tracker) sorted() []*tracked {
	out := make([]*tracked, 0, len(t.resources))
	for _, tr := range t.resources {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].resource.ID < out[j].resource.ID
	})
	return out
}

func (tr *tracked) intersects(period interval.Interval) bool {
	for _, booked := range tr.allocated {
		if booked.Intersects(period) {
			return true
		}
	}
	return false
}

func (tr *tracked) insert(period interval.Interval) {
	i := sort.Search(len(tr.allocated), func(i int) bool {
		return tr.allocated[i].Start.After(period.Start)
	})
	tr.allocated = append(tr.allocated, interval.Interval{})
	copy(tr.allocated[i+1:], tr.allocated[i:])
	tr.allocated[i] = period
}
