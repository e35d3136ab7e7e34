package main

import (
	"net/http"
)

func (server *Server) getSpeciesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commonData := MustLoadCommonData(ctx)

	species, err := server.Queries.GetSpecies(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	breeds, err := server.Queries.GetBreeds(ctx)
	if err != nil {
		server.renderError(w, r, commonData, err)
		return
	}

	speciesView := SliceToSlice(species, func(s Species) SpeciesWithBreeds {
		return SpeciesWithBreeds{
			Species: s,
			Breeds: FilterSlice(breeds, func(b Breed) bool {
				return b.SpeciesID == s.ID
			}),
		}
	})

	_ = SpeciesPage(commonData, speciesView).Render(ctx, w)
}

func (server *Server) postSpeciesHandler(w http.ResponseWriter, r *http.Request) {
	type reqT struct {
		Name string
	}
	jsonHandler(server, w, r, func(q *Queries, req reqT) error {
		_, err := q.AddSpecies(r.Context(), req.Name)
		return err
	})
}

func (server *Server) putSpeciesHandler(w http.ResponseWriter, r *http.Request) {
	type reqT struct {
		ID   int32
		Name string
	}
	jsonHandler(server, w, r, func(q *Queries, req reqT) error {
		return q.RenameSpecies(r.Context(), RenameSpeciesParams{
			ID:   req.ID,
			Name: req.Name,
		})
	})
}

func (server *Server) postBreedHandler(w http.ResponseWriter, r *http.Request) {
	type reqT struct {
		SpeciesID int32
		Name      string
	}
	jsonHandler(server, w, r, func(q *Queries, req reqT) error {
		_, err := q.AddBreed(r.Context(), AddBreedParams{
			SpeciesID: req.SpeciesID,
			Name:      req.Name,
		})
		return err
	})
}
