// Package export persists computed planes: a lossless JSON document for
// round-tripping full classification data, and a CSV summary for spreadsheet
// inspection.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/grid"
	"github.com/fractalab/fractalab/internal/plane"
)

// ErrCellCountMismatch indicates a document whose cell payload does not
// match its declared resolution.
var ErrCellCountMismatch = errors.New("export: cell count does not match grid resolution")

// PlaneDocument is the on-disk form of a computed plane.
type PlaneDocument struct {
	Family    string               `json:"family"`
	CreatedAt time.Time            `json:"created_at"`
	ResX      int                  `json:"res_x"`
	ResY      int                  `json:"res_y"`
	Bounds    grid.Bounds          `json:"bounds"`
	Cells     []dynamics.PointInfo `json:"cells"`
}

// WriteJSON encodes the plane losslessly.
func WriteJSON(w io.Writer, family string, ip *plane.IterPlane) error {
	doc := PlaneDocument{
		Family:    family,
		CreatedAt: time.Now().UTC(),
		ResX:      ip.Grid.ResX,
		ResY:      ip.Grid.ResY,
		Bounds:    ip.Grid.Bounds,
		Cells:     ip.Cells,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// ReadJSON decodes a document written by WriteJSON and rebuilds the plane.
func ReadJSON(r io.Reader) (string, *plane.IterPlane, error) {
	var doc PlaneDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return "", nil, err
	}
	g := grid.PointGrid{ResX: doc.ResX, ResY: doc.ResY, Bounds: doc.Bounds}
	if len(doc.Cells) != g.NumCells() {
		return "", nil, ErrCellCountMismatch
	}
	return doc.Family, &plane.IterPlane{Grid: g, Cells: doc.Cells}, nil
}

// SaveJSON writes the plane to a file.
func SaveJSON(path, family string, ip *plane.IterPlane) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, family, ip)
}

// LoadJSON reads a plane back from a file.
func LoadJSON(path string) (string, *plane.IterPlane, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer file.Close()
	return ReadJSON(file)
}

// WriteCSV emits one row per classification kind with its cell count and
// fraction of the plane.
func WriteCSV(w io.Writer, ip *plane.IterPlane) error {
	counts := ip.CountKinds()
	total := float64(len(ip.Cells))

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kind", "count", "fraction"}); err != nil {
		return err
	}
	for kind := dynamics.PointBounded; kind <= dynamics.PointUnknown; kind++ {
		n := counts[kind]
		if n == 0 {
			continue
		}
		row := []string{
			kind.String(),
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%.6f", float64(n)/total),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the kind summary to a file.
func SaveCSV(path string, ip *plane.IterPlane) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, ip)
}
