package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"text/template"
	"time"

	"github.com/arkivo/arkivo-slack/pkg/types"
)

// Default renders the header line followed by one Slack link per created
// item.
const Default = `{{len .Created}} item{{if gt (len .Created) 1}}s{{end}} added to {{.Library.Name}} library:` +
	`{{range .Created}}
<{{.URL}}|{{.Title}}>{{end}}`

type Entry struct {
	Key   string
	URL   string
	Title string
	Item  *types.Item
}

type Vars struct {
	Sync    *types.SyncResult
	Library types.Library
	Created []Entry
}

// NewVars resolves the created keys of sync against its items.
func NewVars(library types.Library, sync *types.SyncResult) (*Vars, error) {
	vars := &Vars{
		Sync:    sync,
		Library: library,
		Created: make([]Entry, 0, len(sync.Created)),
	}

	for _, key := range sync.Created {
		item, ok := sync.Items.Get(key)
		if !ok || item == nil {
			return nil, fmt.Errorf("created item %q not found in items", key)
		}
		vars.Created = append(vars.Created, Entry{
			Key:   key,
			URL:   EncodeURI(item.Links.Alternate.Href),
			Title: item.Data.Label(),
			Item:  item,
		})
	}

	return vars, nil
}

type Template struct {
	inner *template.Template
}

func Parse(s string) (*Template, error) {
	funcs := map[string]interface{}{
		"encodeURI":      EncodeURI,
		"urlQueryEscape": url.QueryEscape,
		"json":           marshalToJSON,
		"timeNow":        timeNow,
	}
	t, err := template.New("template").Funcs(funcs).Parse(s)
	if err != nil {
		return nil, err
	}
	return &Template{inner: t}, nil
}

func MustParse(s string) *Template {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) Execute(vars *Vars) (string, error) {
	var buf bytes.Buffer
	if err := t.inner.Execute(&buf, vars); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func marshalToJSON(obj interface{}) (string, error) {
	jsonb, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(jsonb), nil
}

func timeNow() time.Time {
	return time.Now()
}
