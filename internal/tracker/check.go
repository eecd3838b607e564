package tracker

import "fmt"

// Check reports invariant violations that the schema cannot express:
// duplicate project names, duplicate task ids within a project, and task
// ids that are not strictly increasing. Files written by this package never
// trip these; hand-edited files might.
func (c Collection) Check() []error {
	var errs []error

	seenNames := make(map[string]int, len(c))
	for i, p := range c {
		path := fmt.Sprintf("[%d]", i)
		if first, ok := seenNames[p.Name]; ok {
			errs = append(errs, &ValidationError{
				Path: path + ".name",
				Err:  fmt.Errorf("duplicate project name %q (first at [%d])", p.Name, first),
			})
		} else {
			seenNames[p.Name] = i
		}

		seenIDs := make(map[int]bool, len(p.Tasks))
		for j, t := range p.Tasks {
			taskPath := fmt.Sprintf("%s.tasks[%d].id", path, j)
			if seenIDs[t.ID] {
				errs = append(errs, &ValidationError{
					Path: taskPath,
					Err:  fmt.Errorf("duplicate task id %d in project %q", t.ID, p.Name),
				})
			} else if j > 0 && t.ID <= p.Tasks[j-1].ID {
				errs = append(errs, &ValidationError{
					Path: taskPath,
					Err:  fmt.Errorf("task id %d does not follow %d; new ids may collide", t.ID, p.Tasks[j-1].ID),
				})
			}
			seenIDs[t.ID] = true
		}
	}

	return errs
}
