package workflow

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
)

// SortedJobs returns the jobs in an order that satisfies every needs edge.
// Jobs without dependency relations keep their declaration order. A cycle
// in the needs graph is an error.
func (w *Workflow) SortedJobs() (Jobs, error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	index := make(map[string]int, len(w.Jobs))
	for i, job := range w.Jobs {
		index[job.Name] = i
		if err := g.AddVertex(job.Name); err != nil {
			return nil, fmt.Errorf("add the job %s to the needs graph: %w", job.Name, err)
		}
	}
	for _, job := range w.Jobs {
		for _, need := range job.Needs {
			if _, ok := index[need]; !ok {
				return nil, fmt.Errorf("job %s needs an unknown job: %s", job.Name, need)
			}
			err := g.AddEdge(need, job.Name)
			if errors.Is(err, graph.ErrEdgeCreatesCycle) {
				return nil, fmt.Errorf("needs of the job %s create a cycle: %w", job.Name, err)
			}
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("add a needs edge %s -> %s: %w", need, job.Name, err)
			}
		}
	}
	names, err := graph.StableTopologicalSort(g, func(a, b string) bool {
		return index[a] < index[b]
	})
	if err != nil {
		return nil, fmt.Errorf("sort jobs by needs: %w", err)
	}
	sorted := make(Jobs, len(names))
	for i, name := range names {
		sorted[i] = w.Jobs.Get(name)
	}
	return sorted, nil
}
