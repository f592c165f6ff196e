package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"sndeck/config"
	"sndeck/pkg/deck/material"
	"sndeck/pkg/deck/partisn"
	"sndeck/pkg/deck/problem"
)

func main() {
	conf := config.Read()
	log := config.NamedLogger("sndeck", conf.LoggingLevel)

	if err := run(conf, log); err != nil {
		log.Fatal(err)
	}
}

func run(conf config.Config, log *logrus.Logger) error {
	loaded, err := problem.Load(conf.ProblemPath)
	if err != nil {
		return err
	}

	store, err := material.OpenStore(conf.MaterialsPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stored, err := store.Materials()
	if err != nil {
		return err
	}
	library, err := material.BuildLibrary(stored)
	if err != nil {
		return err
	}

	names, err := material.LoadXSNames(conf.NamesPath)
	if err != nil {
		return err
	}

	generated, warnings, err := partisn.GenerateDeck(
		loaded.StructuredMesh(),
		loaded.MeshRecords(),
		loaded.Assignments,
		library,
		names,
		partisn.Params{NGroup: loaded.NGroup, ISN: loaded.ISN, NMQ: loaded.NMQ},
		partisn.TitleName(conf.ProblemPath),
	)
	if err != nil {
		return err
	}

	for _, warning := range warnings {
		log.Warn(warning.String())
	}

	data, err := json.MarshalIndent(generated, "", "  ")
	if err != nil {
		return err
	}
	outputPath := filepath.Join(conf.OutputDir, "deck.json")
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}

	log.Infof(
		"%s written: %s geometry, %d zones, %d materials",
		outputPath, generated.Block1.IGEOM, generated.Block1.NZone, generated.Block1.MT,
	)
	return nil
}
