// Package partisn assembles the numbered input blocks of a PARTISN-style
// discrete-ordinates deck from the resolved mesh, the deduplicated zones
// and the material library. Rendering the blocks into the solver's text
// format is a separate step; the Deck value is its input.
package partisn

import (
	"encoding/json"
	"time"

	"gonum.org/v1/gonum/mat"

	"sndeck/pkg/deck/zone"
)

// Title identifies one generated deck.
type Title struct {
	Name      string    `json:"name"`
	Generated time.Time `json:"generated"`
}

// Block1 holds the dimension and control parameters. The per-axis pairs
// (IM/IT, JM/JT, KM/KT) are only set for active axes; one fine mesh is used
// per coarse mesh, so the totals always equal the coarse counts.
type Block1 struct {
	IGEOM  string `json:"igeom"`
	NGroup int    `json:"ngroup"`
	ISN    int    `json:"isn"`
	NISO   int    `json:"niso"`
	MT     int    `json:"mt"`
	NZone  int    `json:"nzone"`
	IM     int    `json:"im,omitempty"`
	IT     int    `json:"it,omitempty"`
	JM     int    `json:"jm,omitempty"`
	JT     int    `json:"jt,omitempty"`
	KM     int    `json:"km,omitempty"`
	KT     int    `json:"kt,omitempty"`
}

// Block2 holds the geometry: the fine-mesh boundaries per active axis and
// the dense zone-number array.
type Block2 struct {
	XMesh []float64 `json:"xmesh,omitempty"`
	XInts int       `json:"xints,omitempty"`
	YMesh []float64 `json:"ymesh,omitempty"`
	YInts int       `json:"yints,omitempty"`
	ZMesh []float64 `json:"zmesh,omitempty"`
	ZInts int       `json:"zints,omitempty"`
	Zones [][]int   `json:"zones"`
}

// Block3 holds the cross-section library names.
type Block3 struct {
	Names []string `json:"names"`
}

// Block4 holds the material compositions in cross-section terms and the
// zone material assignments.
type Block4 struct {
	Matls  map[string]map[string]float64 `json:"matls"`
	Assign map[int]zone.Composition      `json:"assign"`
}

// Block5 holds the source: an isotropic first moment over every group and
// every interval of each active axis.
type Block5 struct {
	IEVT    int     `json:"ievt"`
	Source  Moments `json:"source"`
	SourceX Moments `json:"sourcx"`
	SourceY Moments `json:"sourcy"`
	SourceZ Moments `json:"sourcz"`
}

// Deck is the assembled block data of one input deck.
type Deck struct {
	Title  Title  `json:"title"`
	Block1 Block1 `json:"block1"`
	Block2 Block2 `json:"block2"`
	Block3 Block3 `json:"block3"`
	Block4 Block4 `json:"block4"`
	Block5 Block5 `json:"block5"`
}

// Moments is a dense (rows x moment-count) source matrix with the first
// moment column set to 1 and higher moments zero.
type Moments struct {
	*mat.Dense
}

// NewMoments builds an n x nmq moment matrix.
func NewMoments(n, nmq int) Moments {
	moments := mat.NewDense(n, nmq, nil)
	for i := 0; i < n; i++ {
		moments.Set(i, 0, 1.0)
	}
	return Moments{moments}
}

// MarshalJSON renders the matrix as a row-major nested array.
func (m Moments) MarshalJSON() ([]byte, error) {
	if m.Dense == nil {
		return []byte("null"), nil
	}
	rows, _ := m.Dims()
	values := make([][]float64, rows)
	for i := range values {
		values[i] = m.RawRowView(i)
	}
	return json.Marshal(values)
}
