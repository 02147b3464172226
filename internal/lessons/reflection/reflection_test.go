package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email,omitempty"`
	NoTag  string
	hidden int `json:"hidden"`
}

func TestTagNames(t *testing.T) {
	s := sample{hidden: 1}

	assert.Equal(t, []string{"name", "email"}, TagNames(s, "json"), "omitempty option is stripped, unexported and untagged fields skipped")
	assert.Equal(t, []string{"required"}, TagNames(s, "validate"))
}

func TestTagNames_NonStruct(t *testing.T) {
	assert.Nil(t, TagNames(42, "json"))
	assert.Nil(t, TagNames(nil, "json"))
}

func TestExportedFields(t *testing.T) {
	s := sample{Name: "ada", Email: "a@b.c", NoTag: "x", hidden: 7}
	fields := ExportedFields(s)

	assert.Equal(t, map[string]any{"Name": "ada", "Email": "a@b.c", "NoTag": "x"}, fields)
	assert.NotContains(t, fields, "hidden")
}

func TestExportedFields_NonStruct(t *testing.T) {
	assert.Nil(t, ExportedFields("not a struct"))
	assert.Nil(t, ExportedFields(nil))
}
