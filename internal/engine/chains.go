package engine

import (
	"sort"

	"gtd-task-management/internal/model"
)

// Chains finds the maximal dependency paths in the task set. The graph has
// an edge dep → task whenever task waits on dep. Paths start at roots (tasks
// with no dependencies), end at leaves (tasks nothing waits on), and only
// paths longer than one task are kept, longest first. Cycles are handled by
// treating a revisited task as a dead end.
func Chains(tasks []model.Task) []Chain {
	all := NewIndex(tasks)
	dependents := dependentEdges(tasks, all)

	var chains []Chain
	for _, t := range tasks {
		if t.HasDependencies() {
			continue // not a root
		}
		visited := map[string]bool{}
		walk(t, all, dependents, visited, Chain{}, &chains)
	}

	sort.SliceStable(chains, func(i, j int) bool {
		return len(chains[i]) > len(chains[j])
	})
	return chains
}

// CriticalPath returns the single longest root-to-leaf dependency chain,
// the bottleneck sequence bounding overall completion time. Ties go to the
// first chain found. Returns nil when no chain exists.
func CriticalPath(tasks []model.Task) Chain {
	var longest Chain
	for _, chain := range Chains(tasks) {
		if len(chain) > len(longest) {
			longest = chain
		}
	}
	return longest
}

// dependentEdges maps each task ID to the tasks waiting on it, in input
// order. Edges to unknown IDs are dropped.
func dependentEdges(tasks []model.Task, all Index) map[string][]model.Task {
	edges := make(map[string][]model.Task)
	for _, t := range tasks {
		for _, depID := range t.WaitingForTaskIDs {
			if _, ok := all[depID]; !ok {
				continue
			}
			edges[depID] = append(edges[depID], t)
		}
	}
	return edges
}

func walk(t model.Task, all Index, dependents map[string][]model.Task, visited map[string]bool, path Chain, chains *[]Chain) {
	if visited[t.ID] {
		return
	}
	visited[t.ID] = true
	defer delete(visited, t.ID)

	path = append(path, t)

	extended := false
	for _, next := range dependents[t.ID] {
		if visited[next.ID] {
			continue
		}
		extended = true
		walk(next, all, dependents, visited, path, chains)
	}

	if !extended && len(path) > 1 {
		chain := make(Chain, len(path))
		copy(chain, path)
		*chains = append(*chains, chain)
	}
}
