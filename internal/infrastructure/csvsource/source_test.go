package csvsource

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReader_HeaderAndCells(t *testing.T) {
	t.Parallel()

	input := "\ufeffteam_id, team_name ,points\n" +
		"a6a4e67d,Manchester City,45\n" +
		"\n" +
		"b1,\"Chelsea, FC\"\n"

	src, err := NewReader("clubs.csv", strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, "clubs.csv", src.Name())
	require.Equal(t, []string{"team_id", "team_name", "points"}, src.Columns())
	require.Equal(t, 2, src.Len())

	value, ok := src.Cell(0, "team_name")
	require.True(t, ok)
	require.Equal(t, "Manchester City", value)

	value, ok = src.Cell(1, "team_name")
	require.True(t, ok)
	require.Equal(t, "Chelsea, FC", value)

	value, ok = src.Cell(1, "points")
	require.True(t, ok, "short rows still have the column")
	require.Equal(t, "", value)

	_, ok = src.Cell(0, "rank")
	require.False(t, ok)
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = Open(empty)
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable for empty file, got %v", err)
	}
}

func TestOpen_ReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "players.csv")
	require.NoError(t, os.WriteFile(path, []byte("player_id,player_name\np1,Sam Kerr\n"), 0o600))

	src, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, "players.csv", src.Name())
	require.Equal(t, 1, src.Len())
}
