package types

type SyncResult struct {
	Items   Items    `json:"items"`
	Created []string `json:"created"`
	Updated []string `json:"updated"`
	Deleted []string `json:"deleted"`
}

type Library struct {
	Type string `json:"type,omitempty"`
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

type Link struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

type Links struct {
	Self      Link `json:"self"`
	Alternate Link `json:"alternate"`
}

type Item struct {
	Key     string   `json:"key"`
	Version int64    `json:"version,omitempty"`
	Library Library  `json:"library"`
	Links   Links    `json:"links"`
	Data    ItemData `json:"data"`
}

type ItemData struct {
	Key      string `json:"key,omitempty"`
	ItemType string `json:"itemType,omitempty"`
	Title    string `json:"title,omitempty"`
	Note     string `json:"note,omitempty"`
}

// Library returns the library of the first item in items, which stands
// for the library of the whole sync result.
func (s *SyncResult) Library() (Library, bool) {
	item, ok := s.Items.First()
	if !ok || item == nil {
		return Library{}, false
	}
	return item.Library, true
}
