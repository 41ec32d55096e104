package workflow

import (
	"sort"
)

// Tracker derives a ticket's step sequence and position from progress rows.
// It is pure; callers load the inputs and persist the outcome.
type Tracker struct{}

func NewTracker() *Tracker {
	return &Tracker{}
}

// ResolveSequence picks the step list that governs a ticket, in priority
// order: the ticket's own override, then the job type's enabled steps, then
// the system default. Job-type keys are ordered by the catalog and unknown
// or inactive keys are dropped; a ticket override is taken verbatim.
func (t *Tracker) ResolveSequence(
	ticketSteps []string,
	jobTypeSteps []string,
	systemDefault []string,
	catalog []*Step,
) []string {
	if len(ticketSteps) > 0 {
		return append([]string(nil), ticketSteps...)
	}
	if len(jobTypeSteps) > 0 {
		ordered := orderByCatalog(jobTypeSteps, catalog)
		if len(ordered) > 0 {
			return ordered
		}
	}
	return append([]string(nil), systemDefault...)
}

func orderByCatalog(keys []string, catalog []*Step) []string {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	type entry struct {
		key   string
		order int
	}
	entries := make([]entry, 0, len(keys))
	for _, s := range catalog {
		if s.IsActive() && wanted[s.Key()] {
			entries = append(entries, entry{key: s.Key(), order: s.StepOrder()})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].order < entries[j].order
	})

	ordered := make([]string, 0, len(entries))
	for _, e := range entries {
		ordered = append(ordered, e.key)
	}
	return ordered
}

// CurrentStep returns the first step in the sequence without a completed
// progress row, or nil when every step is done. Progress rows for steps
// outside the sequence are ignored.
func (t *Tracker) CurrentStep(sequence []string, progress []*Progress) *string {
	completed := make(map[string]bool, len(progress))
	for _, p := range progress {
		if p.IsCompleted() {
			completed[p.StepKey()] = true
		}
	}

	for _, key := range sequence {
		if !completed[key] {
			k := key
			return &k
		}
	}
	return nil
}

// IsSequenceComplete reports whether every step in the sequence has a
// completed progress row. An empty sequence is never complete; a ticket
// with no steps cannot finish production implicitly.
func (t *Tracker) IsSequenceComplete(sequence []string, progress []*Progress) bool {
	if len(sequence) == 0 {
		return false
	}
	return t.CurrentStep(sequence, progress) == nil
}

// IsFirstStep reports whether key heads the sequence.
func (t *Tracker) IsFirstStep(sequence []string, key string) bool {
	return len(sequence) > 0 && sequence[0] == key
}

// Contains reports whether key is part of the sequence.
func (t *Tracker) Contains(sequence []string, key string) bool {
	for _, k := range sequence {
		if k == key {
			return true
		}
	}
	return false
}
