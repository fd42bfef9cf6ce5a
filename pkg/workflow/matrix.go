package workflow

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Matrix is an ordered set of parameter axes. Expansion order follows the
// declaration order: the first axis varies slowest.
type Matrix struct {
	Axes []*Axis
}

type Axis struct {
	Name   string
	Values []string
	// floats marks values that were written as unquoted YAML floats.
	// Such values lose trailing zeros (3.10 decodes to "3.1").
	floats []bool
}

// FloatValues returns the axis values that were decoded from YAML floats.
func (a *Axis) FloatValues() []string {
	var values []string
	for i, f := range a.floats {
		if f {
			values = append(values, a.Values[i])
		}
	}
	return values
}

func (m *Matrix) UnmarshalYAML(b []byte) error {
	ms := yaml.MapSlice{}
	if err := yaml.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("unmarshal matrix as a mapping: %w", err)
	}
	axes := make([]*Axis, 0, len(ms))
	for _, item := range ms {
		name, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("matrix axis name must be a string: %v", item.Key)
		}
		list, ok := item.Value.([]any)
		if !ok {
			return fmt.Errorf("matrix axis %s must be a list", name)
		}
		axis := &Axis{
			Name:   name,
			Values: make([]string, len(list)),
			floats: make([]bool, len(list)),
		}
		for i, v := range list {
			axis.Values[i] = formatScalar(v)
			_, axis.floats[i] = v.(float64)
		}
		axes = append(axes, axis)
	}
	m.Axes = axes
	return nil
}

// Size returns the number of cells the matrix expands to.
func (m *Matrix) Size() int {
	if m == nil || len(m.Axes) == 0 {
		return 1
	}
	n := 1
	for _, axis := range m.Axes {
		n *= len(axis.Values)
	}
	return n
}

// Cell is one combination of matrix parameters. Keys preserve axis order.
type Cell struct {
	Keys   []string
	Values map[string]string
}

// String renders the cell the way the platform labels job instances,
// parameter values joined by commas.
func (c *Cell) String() string {
	values := make([]string, len(c.Keys))
	for i, k := range c.Keys {
		values[i] = c.Values[k]
	}
	return strings.Join(values, ", ")
}

// Expand produces the cross product of all axes in deterministic order.
// An empty matrix expands to a single cell with no parameters, while an
// axis without values makes the cross product empty.
func (m *Matrix) Expand() []*Cell {
	if m == nil || len(m.Axes) == 0 {
		return []*Cell{{}}
	}
	for _, axis := range m.Axes {
		if len(axis.Values) == 0 {
			return nil
		}
	}
	keys := make([]string, len(m.Axes))
	for i, axis := range m.Axes {
		keys[i] = axis.Name
	}
	cells := make([]*Cell, 0, m.Size())
	indexes := make([]int, len(m.Axes))
	for {
		values := make(map[string]string, len(m.Axes))
		for i, axis := range m.Axes {
			values[axis.Name] = axis.Values[indexes[i]]
		}
		cells = append(cells, &Cell{Keys: keys, Values: values})
		// Advance the odometer, last axis fastest.
		i := len(indexes) - 1
		for ; i >= 0; i-- {
			indexes[i]++
			if indexes[i] < len(m.Axes[i].Values) {
				break
			}
			indexes[i] = 0
		}
		if i < 0 {
			return cells
		}
	}
}
