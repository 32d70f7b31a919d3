// Package json encodes chatview visual trees as tagged JSON.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/chatview"
)

// envelope is the v1 wire format for an encoded tree.
type envelope struct {
	Version int       `json:"version"`
	Role    string    `json:"role"`
	Kind    string    `json:"kind"`
	Nodes   []nodeDTO `json:"nodes"`
}

// MarshalTree serializes a Tree to indented JSON in v1 envelope format.
func MarshalTree(t chatview.Tree) ([]byte, error) {
	nodes, err := marshalNodes(t.Nodes)
	if err != nil {
		return nil, err
	}
	env := envelope{
		Version: 1,
		Role:    string(t.Role),
		Kind:    t.Kind.String(),
		Nodes:   nodes,
	}
	return json.MarshalIndent(env, "", "  ")
}

func marshalNodes(nodes []chatview.Node) ([]nodeDTO, error) {
	result := make([]nodeDTO, len(nodes))
	for i, n := range nodes {
		dto, err := marshalNode(n)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		result[i] = dto
	}
	return result, nil
}
