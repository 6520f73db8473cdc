package csvsource

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombine_SumsPerPlayer(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"player_id,player_name,position,age,team_id,goals,xg,minutes",
		"p1,Alex Morgan,FW,34-120,t1,5,3.5,900",
		"p2,Sam Mewis,MF,31-010,t1,1,,450",
		"p1,Alex Morgan,FW,34-120,t2,2,1.25,NaN",
		"p3,Nobody,DF,,t3,,,",
	}, "\n")

	src, err := NewReader("players.csv", strings.NewReader(input))
	require.NoError(t, err)

	var out bytes.Buffer
	result, err := Combine(src, &out, DefaultCombineOptions())
	require.NoError(t, err)
	require.Equal(t, 4, result.InputRows)
	require.Equal(t, 3, result.OutputRows)
	require.Equal(t, []string{"goals", "xg", "minutes"}, result.Summed)
	require.Equal(t, []string{"team_id"}, result.Dropped)

	want := strings.Join([]string{
		"player_id,player_name,position,age,goals,xg,minutes",
		"p1,Alex Morgan,FW,34-120,7,4.75,900",
		"p2,Sam Mewis,MF,31-010,1,,450",
		"p3,Nobody,DF,,,,",
		"",
	}, "\n")
	require.Equal(t, want, out.String())
}

func TestCombine_RequiresKey(t *testing.T) {
	t.Parallel()

	src, err := NewReader("x.csv", strings.NewReader("name\nA\n"))
	require.NoError(t, err)

	_, err = Combine(src, &bytes.Buffer{}, DefaultCombineOptions())
	require.Error(t, err)
}
