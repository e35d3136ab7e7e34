package main

import (
	"fmt"
	"net/http"
)

// The adoptable pages are the public face of the shelter: no login, no
// personal data, only animals currently AVAILABLE.

func (server *Server) adoptableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := server.Queries.GetAnimalsByStatus(ctx, int32(ListingStatusAVAILABLE))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		logError(r, err)
		return
	}

	cd := &CommonData{BuildKey: server.BuildKey}
	_ = AdoptablePage(cd, server.Config.Shelter.Name, rows).Render(ctx, w)
}

func (server *Server) adoptableAnimalHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	animalID, err := server.getPathID(r, "animal")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	animal, err := server.Queries.GetAnimal(ctx, animalID)
	if err != nil || animal.Status() != ListingStatusAVAILABLE {
		// Non-available animals do not exist as far as the public is concerned
		http.Error(w, fmt.Sprintf("no adoptable animal with id %d", animalID), http.StatusNotFound)
		return
	}

	species, err := server.Queries.GetSpecies(ctx)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		logError(r, err)
		return
	}

	speciesName := ""
	if idx := Find(species, func(s Species) bool { return s.ID == animal.SpeciesID }); idx != -1 {
		speciesName = species[idx].Name
	}

	cd := &CommonData{BuildKey: server.BuildKey}
	_ = AdoptableAnimalPage(cd, animal, speciesName).Render(ctx, w)
}
