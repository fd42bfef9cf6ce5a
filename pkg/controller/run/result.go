package run

import "time"

type Conclusion int8

const (
	ConclusionSuccess Conclusion = iota
	ConclusionFailure
	ConclusionCancelled
	ConclusionSkipped
)

func (c Conclusion) String() string {
	switch c {
	case ConclusionSuccess:
		return "success"
	case ConclusionFailure:
		return "failure"
	case ConclusionCancelled:
		return "cancelled"
	case ConclusionSkipped:
		return "skipped"
	}
	return "unknown"
}

type StepResult struct {
	Name       string
	Conclusion Conclusion
	Err        error
	Duration   time.Duration
}

type InstanceResult struct {
	ID          string
	Conclusion  Conclusion
	Steps       []*StepResult
	StartedAt   time.Time
	CompletedAt time.Time
}

type JobResult struct {
	Name       string
	Conclusion Conclusion
	Instances  []*InstanceResult
}

// conclude folds instance conclusions into the job conclusion. A job with
// any failed instance fails; a fully skipped job is skipped.
func (j *JobResult) conclude() {
	skipped := len(j.Instances) > 0
	for _, inst := range j.Instances {
		switch inst.Conclusion {
		case ConclusionFailure, ConclusionCancelled:
			j.Conclusion = ConclusionFailure
			return
		case ConclusionSuccess:
			skipped = false
		case ConclusionSkipped:
		}
	}
	if skipped {
		j.Conclusion = ConclusionSkipped
		return
	}
	j.Conclusion = ConclusionSuccess
}
