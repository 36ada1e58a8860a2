package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgsdk/apischema/goquery"
)

// classifyOne classifies the content and returns its single block.
func classifyOne(t *testing.T, content string) goquery.Block {
	t.Helper()

	blocks, err := goquery.Classify(page(content))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	return blocks[0]
}

func TestBlock_DecodeTable(t *testing.T) {
	t.Parallel()

	t.Run("decodes header and rows", func(t *testing.T) {
		t.Parallel()

		block := classifyOne(t, `
<table class="table">
<thead><tr><th>Field</th><th>Type</th><th>Description</th></tr></thead>
<tbody>
<tr><td>id</td><td>Integer</td><td>Unique identifier</td></tr>
<tr><td>first_name</td><td>String</td><td>First name</td></tr>
</tbody>
</table>`)

		table := block.DecodeTable()

		assert.Equal(t, []string{"Field", "Type", "Description"}, table.Columns)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, goquery.Row{"Field": "id", "Type": "Integer", "Description": "Unique identifier"}, table.Rows[0])
		assert.Equal(t, goquery.Row{"Field": "first_name", "Type": "String", "Description": "First name"}, table.Rows[1])
	})

	t.Run("trims cell text", func(t *testing.T) {
		t.Parallel()

		block := classifyOne(t, `
<table class="table">
<thead><tr><th> Field </th></tr></thead>
<tbody><tr><td>
  id
</td></tr></tbody>
</table>`)

		table := block.DecodeTable()

		assert.Equal(t, []string{"Field"}, table.Columns)
		assert.Equal(t, "id", table.Rows[0]["Field"])
	})

	t.Run("ragged row is partially filled", func(t *testing.T) {
		t.Parallel()

		block := classifyOne(t, `
<table class="table">
<thead><tr><th>Field</th><th>Type</th><th>Description</th></tr></thead>
<tbody><tr><td>id</td><td>Integer</td></tr></tbody>
</table>`)

		table := block.DecodeTable()

		require.Len(t, table.Rows, 1)
		assert.Equal(t, goquery.Row{"Field": "id", "Type": "Integer"}, table.Rows[0])
		assert.NotContains(t, table.Rows[0], "Description")
	})

	t.Run("extra cells beyond the header are dropped", func(t *testing.T) {
		t.Parallel()

		block := classifyOne(t, `
<table class="table">
<thead><tr><th>Field</th></tr></thead>
<tbody><tr><td>id</td><td>stray</td></tr></tbody>
</table>`)

		table := block.DecodeTable()

		assert.Equal(t, goquery.Row{"Field": "id"}, table.Rows[0])
	})

	t.Run("missing header means zero columns", func(t *testing.T) {
		t.Parallel()

		block := classifyOne(t, `
<table class="table">
<tbody><tr><td>id</td></tr></tbody>
</table>`)

		table := block.DecodeTable()

		assert.Empty(t, table.Columns)
		require.Len(t, table.Rows, 1)
		assert.Empty(t, table.Rows[0])
	})

	t.Run("missing body means zero rows", func(t *testing.T) {
		t.Parallel()

		block := classifyOne(t, `
<table class="table">
<thead><tr><th>Field</th></tr></thead>
</table>`)

		table := block.DecodeTable()

		assert.Equal(t, []string{"Field"}, table.Columns)
		assert.Empty(t, table.Rows)
	})

	t.Run("non-table block decodes empty", func(t *testing.T) {
		t.Parallel()

		block := classifyOne(t, `<p>text</p>`)

		table := block.DecodeTable()

		assert.Empty(t, table.Columns)
		assert.Empty(t, table.Rows)
	})
}

func TestBlock_DecodeList(t *testing.T) {
	t.Parallel()

	t.Run("collects trimmed item text", func(t *testing.T) {
		t.Parallel()

		block := classifyOne(t, `
<ul>
<li> InlineQueryResultArticle </li>
<li>InlineQueryResultPhoto</li>
</ul>`)

		assert.Equal(t, []string{"InlineQueryResultArticle", "InlineQueryResultPhoto"}, block.DecodeList())
	})

	t.Run("drops blank items and collapses duplicates", func(t *testing.T) {
		t.Parallel()

		block := classifyOne(t, `
<ul>
<li>First</li>
<li>   </li>
<li>First</li>
<li>Second</li>
</ul>`)

		assert.Equal(t, []string{"First", "Second"}, block.DecodeList())
	})

	t.Run("non-list block decodes nil", func(t *testing.T) {
		t.Parallel()

		block := classifyOne(t, `<p>text</p>`)

		assert.Nil(t, block.DecodeList())
	})
}
