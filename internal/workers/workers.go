package workers

type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers so the server can start and stop
// them as one unit.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down Stoppable workers in reverse start order and blocks
// until each has exited.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stoppable); ok {
			s.Stop()
		}
	}
}
