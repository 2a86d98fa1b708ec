package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenDocxContent(t *testing.T) {
	const content = `<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane </w:t></w:r><w:r><w:t xml:space="preserve">Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`</w:body></w:document>`

	assert.Equal(t, "Jane Doe\nSoftware Engineer\n", flattenDocxContent(content))
}

func TestFlattenDocxContentUnescapesEntities(t *testing.T) {
	const content = `<w:p><w:r><w:t>R&amp;D lead, C# &amp; C++ &lt;2019&#8211;2024&gt;</w:t></w:r></w:p>`

	assert.Equal(t, "R&D lead, C# & C++ <2019–2024>", flattenDocxContent(content))
}

func TestFlattenDocxContentEmpty(t *testing.T) {
	assert.Equal(t, "", flattenDocxContent(""))
	assert.Equal(t, "", flattenDocxContent("<w:document></w:document>"))
}
