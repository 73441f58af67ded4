// Package library holds the read-only video catalog and its loaders.
package library

import (
	"fmt"
	"strings"
)

// Video is an immutable catalog entry.
type Video struct {
	ID    string   `json:"id" jsonschema:"required,minLength=1,description=Unique video identifier"`
	Title string   `json:"title" jsonschema:"required,description=Display title"`
	Tags  []string `json:"tags,omitempty" jsonschema:"description=Ordered tags such as #cat"`
}

// TagList renders the tags space-separated in square brackets.
func (v *Video) TagList() string {
	return "[" + strings.Join(v.Tags, " ") + "]"
}

// String renders the video as "title (id) [tag1 tag2]".
func (v *Video) String() string {
	return fmt.Sprintf("%s (%s) %s", v.Title, v.ID, v.TagList())
}
