// Package frontmatter splits a markdown document into its metadata block
// and its body.
//
// Three formats are recognized by their opening line:
//
//	---          +++          {
//	title: YAML  title = "x"    "title": "JSON"
//	---          +++          }
//
// Documents that open with anything else have no frontmatter.
package frontmatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/pelletier/go-toml/v2"

	"github.com/alnah/go-md2html/internal/dateutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// ErrInvalidFrontmatter indicates a frontmatter block that cannot be decoded.
var ErrInvalidFrontmatter = errors.New("invalid frontmatter")

// formats lists the supported blocks. JSON keeps its braces as part of the
// decoded data and must be followed by an empty line.
var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", skipEmpty(yamlutil.Unmarshal)),
	frontmatter.NewFormat("+++", "+++", skipEmpty(toml.Unmarshal)),
	{
		Start:           "{",
		End:             "}",
		Unmarshal:       json.Unmarshal,
		UnmarshalDelims: true,
		RequiresNewLine: true,
	},
}

// skipEmpty lets an empty block decode to an empty map.
func skipEmpty(unmarshal frontmatter.UnmarshalFunc) frontmatter.UnmarshalFunc {
	return func(data []byte, v interface{}) error {
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		return unmarshal(data, v)
	}
}

// Frontmatter holds the decoded metadata of a page.
type Frontmatter map[string]any

// Parse splits content into frontmatter and body. Leading newlines are
// ignored. Content without a frontmatter block yields an empty Frontmatter
// and the content itself.
func Parse(content string) (Frontmatter, string, error) {
	content = strings.TrimLeft(content, "\n")
	fm := Frontmatter{}

	if !hasOpening(content) {
		return fm, content, nil
	}

	rest, err := frontmatter.Parse(strings.NewReader(content), &fm, formats...)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}
	// The parser hands back the whole document when the block never closes.
	if len(rest) == len(content) {
		return nil, "", fmt.Errorf("%w: block is not closed", ErrInvalidFrontmatter)
	}
	if fm == nil {
		fm = Frontmatter{}
	}
	return fm, string(rest), nil
}

func hasOpening(content string) bool {
	first, _, _ := strings.Cut(content, "\n")
	switch strings.TrimSpace(first) {
	case "---", "+++", "{":
		return true
	}
	return false
}

// Has reports whether key is set.
func (f Frontmatter) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// String returns the value of key as text, or "" when unset.
func (f Frontmatter) String(key string) string {
	switch v := f[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// Strings returns a list value. A single string is split on commas so that
// "tags: go, web" and "tags: [go, web]" are equivalent.
func (f Frontmatter) Strings(key string) []string {
	var out []string
	switch v := f[key].(type) {
	case []string:
		out = append(out, v...)
	case []any:
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
	case string:
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// Bool returns the value of key as a boolean. Strings such as "true" or
// "1" are accepted.
func (f Frontmatter) Bool(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	}
	return false
}

// Time returns the value of key as a date. TOML dates, YAML timestamps and
// strings in the layouts accepted by dateutil.ParseDate are supported.
func (f Frontmatter) Time(key string) (time.Time, bool) {
	switch v := f[key].(type) {
	case time.Time:
		return v, true
	case toml.LocalDate:
		return v.AsTime(time.UTC), true
	case toml.LocalDateTime:
		return v.AsTime(time.UTC), true
	case string:
		t, err := dateutil.ParseDate(v)
		return t, err == nil
	}
	return time.Time{}, false
}
