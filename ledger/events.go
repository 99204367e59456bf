package ledger

import (
	"fmt"
	"sort"
	"strings"
)

// Event is deposited by pallets on successful dispatch.
type Event struct {
	Pallet string
	Name   string
	Fields map[string]string
}

func (e Event) String() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s::%s{%s}", e.Pallet, e.Name, strings.Join(parts, ", "))
}
