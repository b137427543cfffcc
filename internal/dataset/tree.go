package dataset

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"chartdeck/internal/chart"
)

type treeNode struct {
	Name     string     `json:"name"`
	Value    float64    `json:"value"`
	Children []treeNode `json:"children"`
}

// LoadTree reads a value-weighted hierarchy from a JSON file of nested
// {name, value, children} objects.
func LoadTree(path string) (*chart.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening tree")
	}
	defer f.Close()
	n, err := ParseTree(f)
	return n, errors.Wrapf(err, "parsing %s", path)
}

// ParseTree reads a hierarchy from JSON content. A tree whose values sum
// to zero is accepted; an unnamed root gets a placeholder name.
func ParseTree(r io.Reader) (*chart.Node, error) {
	var root treeNode
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, errors.Wrap(err, "decoding tree")
	}
	n := convert(root)
	if n.Name == "" {
		n.Name = "root"
	}
	return n, nil
}

func convert(t treeNode) *chart.Node {
	n := &chart.Node{Name: t.Name, Value: t.Value}
	for _, c := range t.Children {
		n.Children = append(n.Children, convert(c))
	}
	return n
}
