package tracker

// Task represents a single task inside a project.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Project represents a named, ordered list of tasks.
type Project struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Collection is the full ordered set of projects for one user.
type Collection []Project

// Outcome is the informational result of a repository operation.
type Outcome int

const (
	// OutcomeFound means a read operation located what it was asked for.
	OutcomeFound Outcome = iota
	// OutcomeAdded means a project or task was appended.
	OutcomeAdded
	// OutcomeCompleted means a task transitioned to completed.
	OutcomeCompleted
	// OutcomeProjectExists means a project with the same name already exists.
	OutcomeProjectExists
	// OutcomeProjectNotFound means no project has the requested name.
	OutcomeProjectNotFound
	// OutcomeTaskNotFound means the project has no task with the requested id.
	OutcomeTaskNotFound
	// OutcomeAlreadyCompleted means the task was completed before.
	OutcomeAlreadyCompleted
	// OutcomeTaskIDsExhausted means the next task id would exceed MaxTaskID.
	OutcomeTaskIDsExhausted
)

// MaxTaskID is the largest task id, the unsigned 32-bit limit.
const MaxTaskID = 1<<32 - 1

var outcomeNames = map[Outcome]string{
	OutcomeFound:            "found",
	OutcomeAdded:            "added",
	OutcomeCompleted:        "completed",
	OutcomeProjectExists:    "project exists",
	OutcomeProjectNotFound:  "project not found",
	OutcomeTaskNotFound:     "task not found",
	OutcomeAlreadyCompleted: "already completed",
	OutcomeTaskIDsExhausted: "task ids exhausted",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Changed reports whether the operation mutated the collection.
func (o Outcome) Changed() bool {
	return o == OutcomeAdded || o == OutcomeCompleted
}

// Summary is the per-project progress shown by the full listing, the viewer
// and doctor.
type Summary struct {
	Project   Project
	Completed int
	Total     int
	Ratio     float64
}
