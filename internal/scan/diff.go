package scan

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

type ChangeKind int

const (
	KindChanged ChangeKind = iota
	KindDeleted
)

func (k ChangeKind) String() string {
	if k == KindDeleted {
		return "deleted"
	}
	return "changed"
}

type Change struct {
	Path string
	Kind ChangeKind
}

// String tags deleted entries so they stand out in commit logs and console
// output, matching the path list shown to the user.
func (c Change) String() string {
	if c.Kind == KindDeleted {
		return c.Path + " (deleted)"
	}
	return c.Path
}

type ChangeList []Change

// Diff computes the change list between two consecutive snapshots. A path is
// changed if it is new or its mtime differs; deleted if it left the tree.
// Changed entries come first, then deleted, each group sorted by path.
func Diff(previous, current Snapshot) ChangeList {
	var changes ChangeList

	changed := make([]string, 0)
	for path, info := range current {
		prev, ok := previous[path]
		if !ok || !prev.ModTime.Equal(info.ModTime) {
			changed = append(changed, path)
		}
	}
	sort.Strings(changed)
	for _, path := range changed {
		changes = append(changes, Change{Path: path, Kind: KindChanged})
	}

	deleted := previous.keys().Difference(current.keys()).ToSlice()
	sort.Strings(deleted)
	for _, path := range deleted {
		changes = append(changes, Change{Path: path, Kind: KindDeleted})
	}

	return changes
}

func (s Snapshot) keys() mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for path := range s {
		set.Add(path)
	}
	return set
}
