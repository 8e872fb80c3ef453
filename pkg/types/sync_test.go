package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncResultUnmarshalKeepsItemOrder(t *testing.T) {
	sync := &SyncResult{}
	err := json.Unmarshal([]byte(`{
  "items": {
    "ZZZ": {"key": "ZZZ", "library": {"type": "group", "id": 2, "name": "university2"}, "links": {"alternate": {"href": "http://x/2"}}, "data": {"title": "B"}},
    "AAA": {"key": "AAA", "library": {"type": "group", "id": 1, "name": "university1"}, "links": {"alternate": {"href": "http://x/1"}}, "data": {"note": "<p>n</p>"}}
  },
  "created": ["AAA", "ZZZ"],
  "updated": [],
  "deleted": ["QQQ"]
}`), sync)
	require.NoError(t, err)

	assert.Equal(t, []string{"ZZZ", "AAA"}, sync.Items.Keys())
	assert.Equal(t, 2, sync.Items.Len())
	assert.Equal(t, []string{"AAA", "ZZZ"}, sync.Created)
	assert.Equal(t, []string{"QQQ"}, sync.Deleted)

	library, ok := sync.Library()
	assert.True(t, ok)
	assert.Equal(t, Library{Type: "group", ID: 2, Name: "university2"}, library)

	item, ok := sync.Items.Get("AAA")
	require.True(t, ok)
	assert.Equal(t, "http://x/1", item.Links.Alternate.Href)
	assert.Equal(t, "<p>n</p>", item.Data.Note)
}

func TestItemsUnmarshalNullAndEmpty(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "missing", json: `{"created": []}`},
		{name: "null", json: `{"items": null}`},
		{name: "empty", json: `{"items": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync := &SyncResult{}
			require.NoError(t, json.Unmarshal([]byte(tt.json), sync))
			assert.Equal(t, 0, sync.Items.Len())
			_, ok := sync.Library()
			assert.False(t, ok)
		})
	}
}

func TestItemsUnmarshalRejectsNonObject(t *testing.T) {
	sync := &SyncResult{}
	err := json.Unmarshal([]byte(`{"items": ["a"]}`), sync)
	assert.Error(t, err)
}

func TestItemsSetKeepsFirstPosition(t *testing.T) {
	items := NewItems()
	items.Set("a", &Item{Key: "a", Data: ItemData{Title: "first"}})
	items.Set("b", &Item{Key: "b"})
	items.Set("a", &Item{Key: "a", Data: ItemData{Title: "second"}})

	assert.Equal(t, []string{"a", "b"}, items.Keys())
	first, ok := items.First()
	require.True(t, ok)
	assert.Equal(t, "second", first.Data.Title)
}

func TestItemsMarshalRoundTripOrder(t *testing.T) {
	var items Items
	items.Set("k2", &Item{Key: "k2"})
	items.Set("k1", &Item{Key: "k1"})

	b, err := json.Marshal(items)
	require.NoError(t, err)

	var decoded Items
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, []string{"k2", "k1"}, decoded.Keys())
}

func TestSyncResultLibraryNilFirstItem(t *testing.T) {
	sync := &SyncResult{}
	sync.Items.Set("k1", nil)
	sync.Items.Set("k2", &Item{Library: Library{Name: "lib"}})

	library, ok := sync.Library()
	assert.False(t, ok)
	assert.Equal(t, Library{}, library)
}

func TestItemsZeroValue(t *testing.T) {
	var items Items
	assert.Equal(t, 0, items.Len())
	assert.Empty(t, items.Keys())
	_, ok := items.Get("k1")
	assert.False(t, ok)

	b, err := json.Marshal(items)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestItemDataLabel(t *testing.T) {
	tests := []struct {
		name     string
		data     ItemData
		expected string
	}{
		{
			name:     "title",
			data:     ItemData{Title: "Paper A", Note: "<p>ignored</p>"},
			expected: "Paper A",
		},
		{
			name:     "short note",
			data:     ItemData{Note: "<p>Hello <i>world</i></p>\n"},
			expected: "Hello world",
		},
		{
			name:     "long note",
			data:     ItemData{Note: "<p>Some <b>note</b> text\nwith markup that exceeds sixty-four characters total length here</p>"},
			expected: "Some note textwith markup that exceeds sixty-four characters tot",
		},
		{
			name:     "multibyte note",
			data:     ItemData{Note: "<p>" + strings.Repeat("é", 70) + "</p>"},
			expected: strings.Repeat("é", 64),
		},
		{
			name:     "nothing",
			data:     ItemData{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.data.Label())
		})
	}
}

func TestItemDataLabelLength(t *testing.T) {
	label := ItemData{Note: "<p>Some <b>note</b> text\nwith markup that exceeds sixty-four characters total length here</p>"}.Label()
	assert.Len(t, []rune(label), maxNoteLabelLength)
}
