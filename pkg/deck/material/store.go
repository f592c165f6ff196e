// Package material loads the persisted material library and translates its
// nuclide compositions into the cross-section terms of the solver input.
package material

import (
	"database/sql"

	// database/sql driver for the material store.
	_ "modernc.org/sqlite"

	"sndeck/pkg/deck"
)

// Nuclide is one nuclide row of a stored material.
type Nuclide struct {
	ID           int
	MassFraction float64
	AtomicMass   float64 // [g/mol]
}

// StoredMaterial is one material as persisted in the library store.
type StoredMaterial struct {
	Name     string
	Density  float64 // [g/cc]
	Nuclides []Nuclide
}

// Store is the persisted material library, an sqlite database with a
// materials(name, density) table and a nuclides(material, nucid,
// mass_fraction, atomic_mass) table.
type Store struct {
	db *sql.DB
}

// OpenStore opens the material library database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, deck.GeneralMatError("cannot open material store %s: %s", path, err)
	}
	if err := db.Ping(); err != nil {
		return nil, deck.GeneralMatError("cannot open material store %s: %s", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Materials reads every stored material with its nuclide composition.
// Materials come back ordered by name and nuclides by ascending id, so one
// store always yields the same library.
func (s *Store) Materials() ([]StoredMaterial, error) {
	rows, err := s.db.Query(`SELECT name, density FROM materials ORDER BY name`)
	if err != nil {
		return nil, deck.GeneralMatError("cannot read materials: %s", err)
	}
	defer rows.Close()

	materials := []StoredMaterial{}
	for rows.Next() {
		material := StoredMaterial{}
		if err := rows.Scan(&material.Name, &material.Density); err != nil {
			return nil, deck.GeneralMatError("cannot read materials: %s", err)
		}
		materials = append(materials, material)
	}
	if err := rows.Err(); err != nil {
		return nil, deck.GeneralMatError("cannot read materials: %s", err)
	}

	for i := range materials {
		nuclides, err := s.nuclides(materials[i].Name)
		if err != nil {
			return nil, err
		}
		materials[i].Nuclides = nuclides
	}
	return materials, nil
}

func (s *Store) nuclides(materialName string) ([]Nuclide, error) {
	rows, err := s.db.Query(
		`SELECT nucid, mass_fraction, atomic_mass FROM nuclides WHERE material = ? ORDER BY nucid`,
		materialName,
	)
	if err != nil {
		return nil, deck.MaterialIDError(materialName, "cannot read nuclides: %s", err)
	}
	defer rows.Close()

	nuclides := []Nuclide{}
	for rows.Next() {
		nuclide := Nuclide{}
		if err := rows.Scan(&nuclide.ID, &nuclide.MassFraction, &nuclide.AtomicMass); err != nil {
			return nil, deck.MaterialIDError(materialName, "cannot read nuclides: %s", err)
		}
		nuclides = append(nuclides, nuclide)
	}
	if err := rows.Err(); err != nil {
		return nil, deck.MaterialIDError(materialName, "cannot read nuclides: %s", err)
	}
	return nuclides, nil
}
