package commonsense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvestLinks(t *testing.T) {
	page := `<html><body>
	<a href="/url?q=https://www.commonsense.org/node/111&amp;sa=U&amp;ved=abc">result 1</a>
	<a href="https://www.commonsense.org/node/222#comments">result 2</a>
	<a href="https://www.commonsense.org/node/111">dup</a>
	<a href="https://www.commonsense.org/education/app/kahoot">product</a>
	<a href="/url?q=https%3A%2F%2Fwww.commonsense.org%2Fnode%2F333&amp;sa=U">encoded</a>
	<a>no href</a>
	</body></html>`

	urls, err := HarvestLinks([]byte(page), "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.commonsense.org/node/111",
		"https://www.commonsense.org/node/222",
	}, urls[:2])
	// 编码过的跳转链接本身不含 pattern，不会被选中
	assert.Len(t, urls, 2)
}

func TestHarvestLinksCustomPattern(t *testing.T) {
	page := `<a href="https://www.commonsense.org/education/node/9#top">x</a>`
	urls, err := HarvestLinks([]byte(page), "/education/node/")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.commonsense.org/education/node/9"}, urls)
}
