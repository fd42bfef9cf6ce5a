package workflow

import (
	"fmt"
	"path"

	"github.com/goccy/go-yaml"
)

// Triggers is the workflow's on section. The YAML source accepts three
// forms: a scalar event name, a sequence of event names, and a mapping from
// event name to filters.
type Triggers struct {
	Events []*Event
}

type Event struct {
	Name     string
	Branches []string
}

type eventFilter struct {
	Branches []string `yaml:"branches"`
}

func (t *Triggers) UnmarshalYAML(b []byte) error {
	var s string
	if err := yaml.Unmarshal(b, &s); err == nil {
		t.Events = []*Event{{Name: s}}
		return nil
	}
	var list []string
	if err := yaml.Unmarshal(b, &list); err == nil {
		events := make([]*Event, len(list))
		for i, name := range list {
			events[i] = &Event{Name: name}
		}
		t.Events = events
		return nil
	}
	ms := yaml.MapSlice{}
	if err := yaml.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("on must be a string, a list of strings, or a mapping: %w", err)
	}
	events := make([]*Event, 0, len(ms))
	for _, item := range ms {
		name, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("event name must be a string: %v", item.Key)
		}
		ev := &Event{Name: name}
		if item.Value != nil {
			raw, err := yaml.Marshal(item.Value)
			if err != nil {
				return fmt.Errorf("marshal the filter of the event %s: %w", name, err)
			}
			filter := &eventFilter{}
			if err := yaml.Unmarshal(raw, filter); err != nil {
				return fmt.Errorf("unmarshal the filter of the event %s: %w", name, err)
			}
			ev.Branches = filter.Branches
		}
		events = append(events, ev)
	}
	t.Events = events
	return nil
}

// Match reports whether an event schedules the workflow. branch may be
// empty, in which case branch filters are ignored.
func (t *Triggers) Match(eventName, branch string) (bool, error) {
	if t == nil {
		return false, nil
	}
	for _, ev := range t.Events {
		if ev.Name != eventName {
			continue
		}
		if len(ev.Branches) == 0 || branch == "" {
			return true, nil
		}
		for _, pattern := range ev.Branches {
			matched, err := path.Match(pattern, branch)
			if err != nil {
				return false, fmt.Errorf("match a branch filter as a glob: %w", err)
			}
			if matched {
				return true, nil
			}
		}
	}
	return false, nil
}
