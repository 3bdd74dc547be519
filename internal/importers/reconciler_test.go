package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		current         []string
		allowDuplicates bool
		expectedItems   []string
		expectedCount   int
		expectedSkipped string
	}{
		{
			name:          "import into empty collection",
			raw:           "a\nb",
			current:       nil,
			expectedItems: []string{"a", "b"},
			expectedCount: 2,
		},
		{
			name:          "appends after current items",
			raw:           "c\nd",
			current:       []string{"a", "b"},
			expectedItems: []string{"a", "b", "c", "d"},
			expectedCount: 2,
		},
		{
			name:            "self duplicates collapsed first occurrence wins",
			raw:             "a\nb\na",
			current:         nil,
			expectedItems:   []string{"a", "b"},
			expectedCount:   2,
			expectedSkipped: "，已跳过 1 个重复内容",
		},
		{
			name:            "existing duplicates skipped",
			raw:             "a\nc",
			current:         []string{"a", "b"},
			expectedItems:   []string{"a", "b", "c"},
			expectedCount:   1,
			expectedSkipped: "，已跳过 1 个已存在内容",
		},
		{
			name:            "both duplicate kinds reported",
			raw:             "a\na\nb",
			current:         []string{"b"},
			expectedItems:   []string{"b", "a"},
			expectedCount:   1,
			expectedSkipped: "，已跳过 1 个重复内容，1 个已存在内容",
		},
		{
			name:            "allow duplicates appends everything",
			raw:             "a\na",
			current:         []string{"a"},
			allowDuplicates: true,
			expectedItems:   []string{"a", "a", "a"},
			expectedCount:   2,
		},
		{
			name:          "comma paste goes through the parser",
			raw:           "x,y，z",
			current:       nil,
			expectedItems: []string{"x", "y", "z"},
			expectedCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Reconcile(tt.raw, tt.current, tt.allowDuplicates)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedItems, result.Items)
			assert.Equal(t, tt.expectedCount, result.Imported)
			assert.Equal(t, tt.expectedSkipped, result.SkippedInfo)
		})
	}
}

func TestReconcileErrors(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		current         []string
		expectedMessage string
	}{
		{
			name:            "empty input",
			raw:             "",
			expectedMessage: "请输入要导入的内容",
		},
		{
			name:            "whitespace input",
			raw:             "   \n\t ",
			expectedMessage: "请输入要导入的内容",
		},
		{
			name:            "no valid items parsed",
			raw:             "[]",
			expectedMessage: "未找到有效的内容",
		},
		{
			name:            "single item already present",
			raw:             "a",
			current:         []string{"a"},
			expectedMessage: "所有内容都重复，共跳过 1 个重复项",
		},
		{
			name:            "skip total counts both duplicate kinds",
			raw:             "a\na\nb",
			current:         []string{"a", "b"},
			expectedMessage: "所有内容都重复，共跳过 3 个重复项",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Reconcile(tt.raw, tt.current, false)
			require.Error(t, err)
			assert.Nil(t, result)

			var importErr *Error
			require.ErrorAs(t, err, &importErr)
			assert.Equal(t, tt.expectedMessage, importErr.Message)
		})
	}
}

func TestReconcileDefaultDeduplicates(t *testing.T) {
	result, err := ReconcileDefault("a\na\nb", []string{"b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, result.Items)
	assert.Equal(t, 1, result.Imported)
	assert.Contains(t, result.SkippedInfo, "1 个重复内容")
	assert.Contains(t, result.SkippedInfo, "1 个已存在内容")
}

func TestReconcileDoesNotMutateCurrent(t *testing.T) {
	current := []string{"a", "b"}

	result, err := Reconcile("c", current, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, current)
	result.Items[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, current)
}

func TestReconcileAllowDuplicatesWithEmptyError(t *testing.T) {
	// The duplicate policy never rescues empty or unparseable input.
	_, err := Reconcile("", []string{"a"}, true)
	require.Error(t, err)

	_, err = Reconcile("[]", []string{"a"}, true)
	require.Error(t, err)
}
