package tracker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMalformedData matches every *MalformedDataError via errors.Is.
var ErrMalformedData = errors.New("malformed data")

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MalformedDataError reports a non-empty document that does not decode
// into a Collection.
type MalformedDataError struct {
	Errors []error
}

func (e *MalformedDataError) Error() string {
	switch len(e.Errors) {
	case 0:
		return ErrMalformedData.Error()
	case 1:
		return fmt.Sprintf("%s: %s", ErrMalformedData, e.Errors[0])
	default:
		return fmt.Sprintf("%s: %s (and %d more)", ErrMalformedData, e.Errors[0], len(e.Errors)-1)
	}
}

// Is reports whether target is ErrMalformedData.
func (e *MalformedDataError) Is(target error) bool {
	return target == ErrMalformedData
}

// Unwrap returns the individual problems.
func (e *MalformedDataError) Unwrap() []error {
	return e.Errors
}

// Decode parses a data file. Zero-length input yields an empty collection.
func Decode(data []byte) (Collection, error) {
	if len(data) == 0 {
		return Collection{}, nil
	}

	doc, err := parseDocument(data)
	if err != nil {
		return nil, &MalformedDataError{Errors: []error{&ValidationError{Err: err}}}
	}

	if err := compiledSchema.Validate(doc); err != nil {
		return nil, &MalformedDataError{Errors: schemaErrors(err)}
	}

	c, err := collectionFromDocument(doc)
	if err != nil {
		return nil, &MalformedDataError{Errors: []error{err}}
	}
	return c, nil
}

// Encode serializes the collection with 2-space indentation and a trailing newline.
func Encode(c Collection) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalize(c)); err != nil {
		return nil, fmt.Errorf("marshal collection: %w", err)
	}
	return buf.Bytes(), nil
}

// parseDocument decodes exactly one JSON value, keeping numbers exact for
// schema validation.
func parseDocument(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("document contains only whitespace")
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.New("document is truncated")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return doc, nil
}

// normalize returns a copy where nil slices are replaced by empty ones, so
// encoding never writes null.
func normalize(c Collection) Collection {
	out := make(Collection, len(c))
	for i, p := range c {
		tasks := make([]Task, len(p.Tasks))
		copy(tasks, p.Tasks)
		out[i] = Project{Name: p.Name, Tasks: tasks}
	}
	return out
}

// collectionFromDocument builds a Collection from a schema-valid document.
// Keys are matched exactly; case variants such as "Name" are unknown fields
// and ignored.
func collectionFromDocument(doc interface{}) (Collection, error) {
	items, ok := doc.([]interface{})
	if !ok {
		return nil, &ValidationError{Err: errors.New("expected an array of projects")}
	}

	c := make(Collection, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("[%d]", i)
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, &ValidationError{Path: path, Err: errors.New("expected an object")}
		}
		name, ok := obj["name"].(string)
		if !ok {
			return nil, &ValidationError{Path: path + ".name", Err: errors.New("expected a string")}
		}
		rawTasks, ok := obj["tasks"].([]interface{})
		if !ok {
			return nil, &ValidationError{Path: path + ".tasks", Err: errors.New("expected an array")}
		}

		tasks := make([]Task, 0, len(rawTasks))
		for j, rawTask := range rawTasks {
			task, err := taskFromDocument(rawTask, fmt.Sprintf("%s.tasks[%d]", path, j))
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, task)
		}
		c = append(c, Project{Name: name, Tasks: tasks})
	}
	return c, nil
}

func taskFromDocument(v interface{}, path string) (Task, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return Task{}, &ValidationError{Path: path, Err: errors.New("expected an object")}
	}
	num, ok := obj["id"].(json.Number)
	if !ok {
		return Task{}, &ValidationError{Path: path + ".id", Err: errors.New("expected an integer")}
	}
	id, err := integerValue(num)
	if err != nil {
		return Task{}, &ValidationError{Path: path + ".id", Err: err}
	}
	description, ok := obj["description"].(string)
	if !ok {
		return Task{}, &ValidationError{Path: path + ".description", Err: errors.New("expected a string")}
	}
	completed, ok := obj["completed"].(bool)
	if !ok {
		return Task{}, &ValidationError{Path: path + ".completed", Err: errors.New("expected a boolean")}
	}
	return Task{ID: id, Description: description, Completed: completed}, nil
}

// integerValue converts a schema-checked id. The schema bounds ids to the
// unsigned 32-bit range, so any integral value fits in int64.
func integerValue(n json.Number) (int, error) {
	i, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%s is not an integer", n)
	}
	return int(i), nil
}

func schemaErrors(err error) []error {
	var errs []error
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return append(errs, &ValidationError{Err: err})
	}
	collectSchemaErrors(&errs, ve)
	if len(errs) == 0 {
		errs = append(errs, &ValidationError{Err: err})
	}
	return errs
}

func collectSchemaErrors(errs *[]error, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}

// jsonPointerToPath converts "/0/tasks/1/id" into "[0].tasks[1].id".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
