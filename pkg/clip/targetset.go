package clip

import (
	"golang.org/x/exp/slices"
)

// TargetSet maps contig names to their targets, remembering the order in which
// contigs were first added. Adding a name that is already present replaces its
// target but keeps its position.
type TargetSet struct {
	order      []string
	targets    map[string]Target
	duplicates []string
}

func NewTargetSet() *TargetSet {
	return &TargetSet{
		order:   make([]string, 0),
		targets: make(map[string]Target),
	}
}

func (TS *TargetSet) Add(T Target) {
	if _, ok := TS.targets[T.Name]; ok {
		if !slices.Contains(TS.duplicates, T.Name) {
			TS.duplicates = append(TS.duplicates, T.Name)
		}
	} else {
		TS.order = append(TS.order, T.Name)
	}
	TS.targets[T.Name] = T
}

func (TS *TargetSet) Len() int {
	return len(TS.order)
}

func (TS *TargetSet) Get(name string) (Target, bool) {
	T, ok := TS.targets[name]
	return T, ok
}

// Names returns the contig names in input order
func (TS *TargetSet) Names() []string {
	return slices.Clone(TS.order)
}

// Targets returns the targets in input order
func (TS *TargetSet) Targets() []Target {
	ts := make([]Target, 0, len(TS.order))
	for _, name := range TS.order {
		ts = append(ts, TS.targets[name])
	}
	return ts
}

// Duplicates returns the names that were added more than once, in the order
// they were first repeated
func (TS *TargetSet) Duplicates() []string {
	return slices.Clone(TS.duplicates)
}

// Equal reports whether two sets hold the same targets in the same order
func (TS *TargetSet) Equal(other *TargetSet) bool {
	if !slices.Equal(TS.order, other.order) {
		return false
	}
	for _, name := range TS.order {
		if TS.targets[name] != other.targets[name] {
			return false
		}
	}
	return true
}
