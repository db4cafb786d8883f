package classify

import (
	"encoding/json"
	"slices"
)

// Task identifies a classification axis.
type Task string

// Valid classification tasks.
const (
	TaskJurisdiction Task = "jurisdiction"
	TaskCounterparty Task = "counterparty"
)

var tasks = []Task{
	TaskJurisdiction,
	TaskCounterparty,
}

// Tasks returns the list of valid classification tasks.
func Tasks() []Task {
	return tasks
}

// UnmarshalJSON validates that the decoded string is a known task value.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Task(raw)
	if !slices.Contains(tasks, v) {
		return ErrInvalidTask
	}
	*t = v
	return nil
}

// ParseTask validates a string as a known classification task.
// Returns ErrInvalidTask if the value is not recognized.
func ParseTask(s string) (Task, error) {
	v := Task(s)
	if !slices.Contains(tasks, v) {
		return "", ErrInvalidTask
	}
	return v, nil
}
