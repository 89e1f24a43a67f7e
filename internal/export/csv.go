package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/trajsim/internal/trajectory"
)

var csvHeader = []string{"t", "x", "y", "r", "vx", "vy", "v", "ax", "ay", "a", "ke", "pe", "te"}

// WriteCSV writes one row per sample with the energy columns alongside the
// kinematics.
func WriteCSV(w io.Writer, s *trajectory.Series, e *trajectory.EnergySeries) error {
	if s.Len() != e.Len() {
		return fmt.Errorf("export: series has %d samples but energy has %d", s.Len(), e.Len())
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	cols := [][]float64{s.T, s.X, s.Y, s.R, s.VX, s.VY, s.V, s.AX, s.AY, s.A, e.KE, e.PE, e.TE}
	row := make([]string, len(cols))
	for i := 0; i < s.Len(); i++ {
		for j, col := range cols {
			row[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
