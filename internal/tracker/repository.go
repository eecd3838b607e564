package tracker

// FindProject returns the project with the exact name, or nil if not found.
// The returned pointer aliases the collection's storage.
func (c Collection) FindProject(name string) *Project {
	for i := range c {
		if c[i].Name == name {
			return &c[i]
		}
	}
	return nil
}

// AddProject appends a project with no tasks unless the name is taken.
func (c *Collection) AddProject(name string) Outcome {
	if c.FindProject(name) != nil {
		return OutcomeProjectExists
	}
	*c = append(*c, Project{Name: name, Tasks: []Task{}})
	return OutcomeAdded
}

// ProjectNames returns the project names in insertion order.
func (c Collection) ProjectNames() []string {
	names := make([]string, 0, len(c))
	for _, p := range c {
		names = append(names, p.Name)
	}
	return names
}

// AddTask appends an incomplete task to the named project.
func (c *Collection) AddTask(project, description string) (Task, Outcome) {
	p := c.FindProject(project)
	if p == nil {
		return Task{}, OutcomeProjectNotFound
	}
	id := p.NextTaskID()
	if int64(id) > MaxTaskID {
		return Task{}, OutcomeTaskIDsExhausted
	}
	task := Task{
		ID:          id,
		Description: description,
	}
	p.Tasks = append(p.Tasks, task)
	return task, OutcomeAdded
}

// Tasks returns a copy of the named project's tasks.
func (c Collection) Tasks(project string) ([]Task, Outcome) {
	p := c.FindProject(project)
	if p == nil {
		return nil, OutcomeProjectNotFound
	}
	tasks := make([]Task, len(p.Tasks))
	copy(tasks, p.Tasks)
	return tasks, OutcomeFound
}

// CompleteTask marks a task as completed. Completion is one-way.
func (c *Collection) CompleteTask(project string, id int) Outcome {
	p := c.FindProject(project)
	if p == nil {
		return OutcomeProjectNotFound
	}
	task := p.FindTask(id)
	if task == nil {
		return OutcomeTaskNotFound
	}
	if task.Completed {
		return OutcomeAlreadyCompleted
	}
	task.Completed = true
	return OutcomeCompleted
}

// Summaries returns progress for every project, in order.
func (c Collection) Summaries() []Summary {
	summaries := make([]Summary, 0, len(c))
	for _, p := range c {
		summaries = append(summaries, Summary{
			Project:   p,
			Completed: p.CompletedCount(),
			Total:     len(p.Tasks),
			Ratio:     p.Progress(),
		})
	}
	return summaries
}

// FindTask returns the task with the given id, or nil if not found.
func (p *Project) FindTask(id int) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// NextTaskID returns the id for a new task: the last task's id plus one,
// or 1 for a project without tasks.
func (p Project) NextTaskID() int {
	if len(p.Tasks) == 0 {
		return 1
	}
	return p.Tasks[len(p.Tasks)-1].ID + 1
}

// CompletedCount returns the number of completed tasks.
func (p Project) CompletedCount() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// Progress returns the completed/total ratio, or 0 for a project without tasks.
func (p Project) Progress() float64 {
	if len(p.Tasks) == 0 {
		return 0
	}
	return float64(p.CompletedCount()) / float64(len(p.Tasks))
}
