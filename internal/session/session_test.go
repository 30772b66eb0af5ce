package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesolver"
)

func TestStoreCreateGetDelete(t *testing.T) {
	store := NewStore()

	id := store.Create()
	require.NotEmpty(t, id)
	require.Equal(t, 1, store.Len())

	tr, err := store.Get(id)
	require.NoError(t, err)
	require.True(t, tr.IsSolved())

	store.Delete(id)
	require.Equal(t, 0, store.Len())

	_, err = store.Get(id)
	require.ErrorIs(t, err, cubesolver.ErrNoActiveCube)
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	store := NewStore()
	a := store.Create()
	b := store.Create()

	trA, err := store.Get(a)
	require.NoError(t, err)
	trA.ApplyMove(cubesolver.R)

	trB, err := store.Get(b)
	require.NoError(t, err)
	require.True(t, trB.IsSolved(), "moves on one session must not leak into another")
}

func TestStateFileRoundTrip(t *testing.T) {
	sf := NewStateFile(filepath.Join(t.TempDir(), "state.json"))

	tr := cubesolver.NewTracker()
	tr.ApplyMoves(cubesolver.SexyMove)
	require.NoError(t, sf.Save(tr))

	loaded, err := sf.Load()
	require.NoError(t, err)
	require.True(t, loaded.Cube().Equal(tr.Cube()))
	require.Equal(t, cubesolver.FormatMoves(tr.History()), cubesolver.FormatMoves(loaded.History()))
}

func TestStateFileLoadMissingGivesSolved(t *testing.T) {
	sf := NewStateFile(filepath.Join(t.TempDir(), "absent.json"))
	tr, err := sf.Load()
	require.NoError(t, err)
	require.True(t, tr.IsSolved())
}

func TestStateFileRejectsInvalidFacelets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	// 54 white stickers: structurally shaped but invalid color counts.
	blob := `{"faces":{` +
		`"U":["W","W","W","W","W","W","W","W","W"],` +
		`"D":["W","W","W","W","W","W","W","W","W"],` +
		`"F":["W","W","W","W","W","W","W","W","W"],` +
		`"B":["W","W","W","W","W","W","W","W","W"],` +
		`"R":["W","W","W","W","W","W","W","W","W"],` +
		`"L":["W","W","W","W","W","W","W","W","W"]}}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0644))

	_, err := NewStateFile(path).Load()
	require.ErrorIs(t, err, cubesolver.ErrInvalidState)
}

func TestStateFileRejectsUnknownColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	blob := `{"faces":{` +
		`"U":["X","W","W","W","W","W","W","W","W"],` +
		`"D":["Y","Y","Y","Y","Y","Y","Y","Y","Y"],` +
		`"F":["G","G","G","G","G","G","G","G","G"],` +
		`"B":["B","B","B","B","B","B","B","B","B"],` +
		`"R":["R","R","R","R","R","R","R","R","R"],` +
		`"L":["O","O","O","O","O","O","O","O","O"]}}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0644))

	_, err := NewStateFile(path).Load()
	require.ErrorIs(t, err, cubesolver.ErrInvalidState)
}

func TestStateFileRemove(t *testing.T) {
	sf := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, sf.Save(cubesolver.NewTracker()))
	require.NoError(t, sf.Remove())
	require.NoError(t, sf.Remove()) // idempotent

	_, err := os.Stat(sf.Path())
	require.True(t, os.IsNotExist(err))
}
