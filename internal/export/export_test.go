package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/lorenzq/internal/dynamo"
	"github.com/san-kum/lorenzq/internal/ensemble"
	"github.com/san-kum/lorenzq/internal/frame"
	"github.com/san-kum/lorenzq/internal/scene"
)

func smallEnsemble(t *testing.T) *ensemble.Ensemble {
	t.Helper()
	params := ensemble.DefaultParameterSet()
	params.Trajectories = 2

	opts := ensemble.DefaultOptions()
	opts.Horizon = 0.5
	opts.Samples = 20

	ens, err := ensemble.Integrate(context.Background(), params, opts)
	require.NoError(t, err)
	return ens
}

func TestEncodeGIF(t *testing.T) {
	ens := smallEnsemble(t)
	s := frame.New(ens, frame.DefaultOptions())
	sc := scene.New(ens.Len())

	opts := GIFOptions{FPS: 30, Width: 120, Height: 100}
	var buf bytes.Buffer
	require.NoError(t, EncodeGIF(&buf, s, sc, opts))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, s.Len())
	assert.Equal(t, 10, s.Len())
	for _, d := range g.Delay {
		assert.Equal(t, 3, d)
	}
	assert.Equal(t, 120, g.Config.Width)
	assert.Equal(t, 100, g.Config.Height)
}

func TestEncodeGIFFrameCount(t *testing.T) {
	ens := smallEnsemble(t)
	s := frame.New(ens, frame.DefaultOptions())

	var buf bytes.Buffer
	require.NoError(t, EncodeGIF(&buf, s, scene.New(ens.Len()), GIFOptions{Frames: 4, FPS: 10, Width: 60, Height: 60}))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, 4)
	assert.Equal(t, []int{10, 10, 10, 10}, g.Delay)
}

func TestEncodeGIFInvalidSize(t *testing.T) {
	ens := smallEnsemble(t)
	s := frame.New(ens, frame.DefaultOptions())

	err := EncodeGIF(&bytes.Buffer{}, s, scene.New(ens.Len()), GIFOptions{Width: 0, Height: 10})
	assert.Error(t, err)
}

func TestDelayFor(t *testing.T) {
	assert.Equal(t, 3, DelayFor(30))
	assert.Equal(t, 4, DelayFor(25))
	assert.Equal(t, 3, DelayFor(0))
	assert.Equal(t, 1, DelayFor(1000))
}

func TestWriteGIFFailureReportsPath(t *testing.T) {
	ens := smallEnsemble(t)
	s := frame.New(ens, frame.DefaultOptions())

	path := filepath.Join(t.TempDir(), "missing", "out.gif")
	err := WriteGIF(path, s, scene.New(ens.Len()), DefaultGIFOptions())
	require.Error(t, err)

	assert.True(t, errors.Is(err, dynamo.ErrExport))
	var exportErr *Error
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, path, exportErr.Path)
	assert.Equal(t, "create", exportErr.Op)
	assert.Contains(t, err.Error(), path)
}

func TestWriteGIF(t *testing.T) {
	ens := smallEnsemble(t)
	s := frame.New(ens, frame.DefaultOptions())

	path := filepath.Join(t.TempDir(), "out.gif")
	require.NoError(t, WriteGIF(path, s, scene.New(ens.Len()), GIFOptions{Frames: 2, FPS: 30, Width: 50, Height: 50}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestEncodeSVG(t *testing.T) {
	ens := smallEnsemble(t)
	s := frame.New(ens, frame.DefaultOptions())

	var buf bytes.Buffer
	require.NoError(t, EncodeSVG(&buf, s.Frame(8), scene.New(ens.Len()), 400, 300))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="400" height="300"`)
	assert.Contains(t, out, "<line")
	assert.Contains(t, out, "<circle")
	assert.Contains(t, out, "|0⟩")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestEncodeJSON(t *testing.T) {
	ens := smallEnsemble(t)

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, ens))

	var data RunData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.NotEmpty(t, data.ID)
	assert.Equal(t, ens.Seed, data.Seed)
	assert.Equal(t, ens.Params, data.Params)
	assert.Len(t, data.Times, 20)
	require.Len(t, data.Trajectories, 2)
	assert.Len(t, data.Trajectories[1].States, 20)
	assert.Equal(t, 20, data.Trajectories[1].Valid)
	assert.Empty(t, data.Trajectories[1].Error)
}

func TestNewRunDataUniqueIDs(t *testing.T) {
	ens := smallEnsemble(t)
	assert.NotEqual(t, NewRunData(ens).ID, NewRunData(ens).ID)
}

func TestEncodeCSV(t *testing.T) {
	ens := smallEnsemble(t)

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, ens))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+2*20)
	assert.Equal(t, []string{"time", "trajectory", "x", "y", "z", "valid"}, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "0", rows[1][1])
	assert.Equal(t, "1", rows[len(rows)-1][1])
	assert.Equal(t, "1", rows[len(rows)-1][5])
}

func TestEncodeCSVMarksPaddedTail(t *testing.T) {
	ens := smallEnsemble(t)
	ens.Trajectories[0].Valid = 5

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, ens))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "1", rows[5][5])
	assert.Equal(t, "0", rows[6][5])
}

func TestWriteData(t *testing.T) {
	ens := smallEnsemble(t)
	dir := t.TempDir()

	for _, name := range []string{"run.json", "run.csv"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteData(path, ens), name)
		_, err := os.Stat(path)
		assert.NoError(t, err, name)
	}

	err := WriteData(filepath.Join(dir, "run.txt"), ens)
	assert.ErrorIs(t, err, dynamo.ErrExport)
}
