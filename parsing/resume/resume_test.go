package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestJSONIndentOmitsUndeterminedFields(t *testing.T) {
	r := &Record{
		Name:          strptr("Jane Doe"),
		PrimarySkills: []string{"Python"},
	}

	data, err := r.JSONIndent()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"name": "Jane Doe"`)
	assert.Contains(t, s, `"primarySkills"`)
	assert.NotContains(t, s, `"phone"`)
	assert.NotContains(t, s, `"email"`)
	assert.NotContains(t, s, `"secondarySkills"`)
}

func TestJSONDistinguishesEmptyFromAbsent(t *testing.T) {
	r := &Record{Summary: strptr("")}

	data, err := r.JSONIndent()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"summary": ""`)
}

func TestMarkdown(t *testing.T) {
	r := &Record{
		Name:            strptr("Jane Doe"),
		Email:           strptr("jane@x.com"),
		Position:        strptr("Software Engineer"),
		Summary:         strptr("Ten years of backend work."),
		PrimarySkills:   []string{"Python", "SQL"},
		SecondarySkills: []string{"Docker"},
		SkillsSource:    strptr("experience"),
	}

	md := r.Markdown()
	assert.Contains(t, md, "# Resume Parsing Results")
	assert.Contains(t, md, "- **Name:** Jane Doe")
	assert.Contains(t, md, "- **Email:** jane@x.com")
	assert.Contains(t, md, "- **Phone:** Not found")
	assert.Contains(t, md, "## Summary\nTen years of backend work.")
	assert.Contains(t, md, "## Primary Skills\nPython, SQL")
	assert.Contains(t, md, "## Secondary Skills\nDocker")
	assert.Contains(t, md, "## Skills Source\nexperience")
}

func TestMarkdownEmptyRecord(t *testing.T) {
	md := (&Record{}).Markdown()
	assert.Contains(t, md, "- **Name:** Not found")
	assert.NotContains(t, md, "## Skills Source")
}

func TestBatchResultCounts(t *testing.T) {
	br := BatchResult{
		{Filename: "a.txt", Success: true},
		{Filename: "b.txt", Success: false, Error: "boom"},
		{Filename: "c.txt", Success: true},
	}
	assert.Equal(t, 2, br.Succeeded())
	assert.Equal(t, 1, br.Failed())
	assert.Equal(t, 0, BatchResult(nil).Succeeded())
}
