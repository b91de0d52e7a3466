package counter

import (
	"testing"

	"github.com/lumipallolabs/codemap/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	records := []Record{
		{Language: "Go", Lines: 10, Code: 8, Blank: 1, Comment: 1},
		{Language: "Markdown", Lines: 5, Code: 4, Blank: 1},
	}

	assert.Equal(t, model.Stats{Lines: 15, Code: 12, Blank: 2, Comment: 1}, Sum(records))
	assert.Equal(t, model.Stats{}, Sum(nil))
}
