package output

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Render serializes a document to YAML with deterministic key order.
//
// Namespaces and keys are NFC-normalized and sorted, so two documents
// that fold to the same content always render to the same bytes. Values
// are encoded by yaml.v3 as-is; value-internal map ordering is the
// caller's concern.
func Render(doc Document) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, ns := range sortedKeys(doc) {
		nsNode := &yaml.Node{Kind: yaml.MappingNode}

		keys := doc[ns]
		for _, k := range sortedKeys(keys) {
			valNode := &yaml.Node{}
			if err := valNode.Encode(keys[k]); err != nil {
				return nil, fmt.Errorf("encode %s/%s: %w", ns, k, err)
			}
			nsNode.Content = append(nsNode.Content, scalar(k), valNode)
		}

		root.Content = append(root.Content, scalar(ns), nsNode)
	}

	return yaml.Marshal(root)
}

// scalar builds a string scalar node.
func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

// sortedKeys returns map keys sorted by their NFC-normalized form.
// Normalizing before comparison keeps ordering stable across visually
// identical but differently composed Unicode keys.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return norm.NFC.String(keys[i]) < norm.NFC.String(keys[j])
	})
	return keys
}
