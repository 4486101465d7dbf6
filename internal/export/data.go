package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/lorenzq/internal/ensemble"
)

type TrajectoryData struct {
	Index   int         `json:"index"`
	Initial []float64   `json:"initial"`
	Valid   int         `json:"valid"`
	Steps   int         `json:"steps"`
	Error   string      `json:"error,omitempty"`
	States  [][]float64 `json:"states"`
}

type RunData struct {
	ID           string                `json:"id"`
	CreatedAt    time.Time             `json:"created_at"`
	Params       ensemble.ParameterSet `json:"params"`
	Seed         int64                 `json:"seed"`
	Integrator   string                `json:"integrator"`
	Times        []float64             `json:"times"`
	Trajectories []TrajectoryData      `json:"trajectories"`
}

// NewRunData snapshots an ensemble under a fresh run ID.
func NewRunData(ens *ensemble.Ensemble) RunData {
	data := RunData{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Params:       ens.Params,
		Seed:         ens.Seed,
		Integrator:   ens.Integrator,
		Times:        ens.Grid,
		Trajectories: make([]TrajectoryData, len(ens.Trajectories)),
	}
	for i, tr := range ens.Trajectories {
		td := TrajectoryData{
			Index:   tr.Index,
			Initial: tr.Initial,
			Valid:   tr.Valid,
			Steps:   tr.Steps,
			States:  make([][]float64, len(tr.States)),
		}
		if tr.Err != nil {
			td.Error = tr.Err.Error()
		}
		for j, s := range tr.States {
			td.States[j] = s
		}
		data.Trajectories[i] = td
	}
	return data
}

func EncodeJSON(w io.Writer, ens *ensemble.Ensemble) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewRunData(ens))
}

// EncodeCSV writes one row per grid timestamp and trajectory. The valid
// column is 0 for the padded tail of a divergent trajectory.
func EncodeCSV(w io.Writer, ens *ensemble.Ensemble) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "trajectory", "x", "y", "z", "valid"}); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, tr := range ens.Trajectories {
		for j, s := range tr.States {
			valid := "1"
			if j >= tr.Valid {
				valid = "0"
			}
			row := []string{f(ens.Grid[j]), strconv.Itoa(tr.Index), f(s[0]), f(s[1]), f(s[2]), valid}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteData picks the encoding from the file extension.
func WriteData(path string, ens *ensemble.Ensemble) error {
	var encode func(io.Writer, *ensemble.Ensemble) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		encode = EncodeJSON
	case ".csv":
		encode = EncodeCSV
	default:
		return &Error{Op: "encode", Path: path, Err: fmt.Errorf("unsupported format %q", filepath.Ext(path))}
	}
	return writeFile(path, func(w io.Writer) error {
		return encode(w, ens)
	})
}
