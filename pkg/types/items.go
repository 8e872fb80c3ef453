package types

import (
	"bytes"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Items maps item keys to items and remembers the order in which keys were
// first added. Decoding from JSON keeps the document order.
type Items struct {
	m *orderedmap.OrderedMap[string, *Item]
}

func NewItems() Items {
	return Items{m: orderedmap.New[string, *Item]()}
}

// Set adds or replaces the item stored under key. Replacing an existing key
// keeps its first position.
func (it *Items) Set(key string, item *Item) {
	if it.m == nil {
		it.m = orderedmap.New[string, *Item]()
	}
	it.m.Set(key, item)
}

func (it Items) Get(key string) (*Item, bool) {
	if it.m == nil {
		return nil, false
	}
	return it.m.Get(key)
}

func (it Items) Len() int {
	if it.m == nil {
		return 0
	}
	return it.m.Len()
}

func (it Items) Keys() []string {
	keys := make([]string, 0, it.Len())
	if it.m == nil {
		return keys
	}
	for pair := it.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (it Items) First() (*Item, bool) {
	if it.m == nil {
		return nil, false
	}
	pair := it.m.Oldest()
	if pair == nil {
		return nil, false
	}
	return pair.Value, true
}

func (it *Items) UnmarshalJSON(b []byte) error {
	*it = NewItems()
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	return it.m.UnmarshalJSON(b)
}

func (it Items) MarshalJSON() ([]byte, error) {
	if it.m == nil {
		return []byte("{}"), nil
	}
	return it.m.MarshalJSON()
}
