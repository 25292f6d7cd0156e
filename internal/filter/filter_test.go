package filter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/us-bikeshare/explorer/internal/city"
	"github.com/us-bikeshare/explorer/internal/prompt"
)

func TestCollect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Selection
	}{
		{
			name:     "no filter",
			input:    "chicago\nnot\n",
			expected: Selection{City: city.Chicago, Month: city.All, Day: city.All},
		},
		{
			name:     "month filter forces day to all",
			input:    "New York City\nmonth\nMarch\n",
			expected: Selection{City: city.NewYorkCity, Month: "march", Day: city.All},
		},
		{
			name:     "day filter forces month to all",
			input:    "washington\n DAY \nsunday\n",
			expected: Selection{City: city.Washington, Month: city.All, Day: "sunday"},
		},
		{
			name:     "invalid answers are retried",
			input:    "boston\nchicago\nweek\nmonth\njuly\njune\n",
			expected: Selection{City: city.Chicago, Month: "june", Day: city.All},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := prompt.New(strings.NewReader(tc.input), out)

			sel, err := Collect(p)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, sel)
			assert.True(t, strings.HasSuffix(out.String(), Separator+"\n"))
		})
	}
}

func TestCollect_AtMostOneAxis(t *testing.T) {
	for _, axis := range []string{"month\nmay\n", "day\nfriday\n", "not\n"} {
		p := prompt.New(strings.NewReader("chicago\n"+axis), &bytes.Buffer{})

		sel, err := Collect(p)

		require.NoError(t, err)
		assert.True(t, sel.Month == city.All || sel.Day == city.All, "selection %s filters on both axes", sel)
	}
}

func TestCollect_InputClosed(t *testing.T) {
	p := prompt.New(strings.NewReader("chicago\n"), &bytes.Buffer{})

	_, err := Collect(p)

	assert.ErrorIs(t, err, prompt.ErrInputClosed)
}

func TestSeparatorWidth(t *testing.T) {
	assert.Len(t, Separator, 40)
}
