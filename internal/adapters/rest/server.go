package rest

import (
	"context"
	"net/http"

	core_port "listing-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(
	port string,
	corsOrigins []string,
	jwtSecret string,
	listingHandler *ListingHandler,
	propertyHandler *PropertyHandler,
	directoryHandler *DirectoryHandler,
	userHandler *UserHandler,
	baseLogger core_port.LoggerPort,
) *Server {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	requireAuth := AuthMiddleware(jwtSecret)

	r.Route("/api/v1", func(r chi.Router) {
		// public read surface
		r.Get("/listings", listingHandler.SearchListings)
		r.Get("/listings/autocomplete", listingHandler.Autocomplete)
		r.Get("/listings/{listingID}", listingHandler.GetListingDetails)
		r.Get("/listings/{listingID}/media", listingHandler.ListMedia)
		r.Get("/listings/{listingID}/open-houses", listingHandler.ListOpenHouses)

		r.Get("/properties/{propertyID}", propertyHandler.GetProperty)

		r.Get("/agencies", directoryHandler.ListAgencies)
		r.Get("/agencies/{agencyID}", directoryHandler.GetAgency)
		r.Get("/agents", directoryHandler.ListAgents)
		r.Get("/agents/{agentID}", directoryHandler.GetAgent)

		// authenticated surface
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/listings", listingHandler.CreateListing)
			r.Patch("/listings/{listingID}", listingHandler.UpdateListing)
			r.Delete("/listings/{listingID}", listingHandler.DeleteListing)

			r.Post("/listings/{listingID}/media", listingHandler.AddMedia)
			r.Delete("/media/{mediaID}", listingHandler.DeleteMedia)
			r.Post("/listings/{listingID}/open-houses", listingHandler.AddOpenHouse)
			r.Delete("/open-houses/{openHouseID}", listingHandler.DeleteOpenHouse)

			r.Post("/properties", propertyHandler.CreateProperty)
			r.Patch("/properties/{propertyID}", propertyHandler.UpdateProperty)
			r.Delete("/properties/{propertyID}", propertyHandler.DeleteProperty)
			r.Post("/locations", propertyHandler.CreateLocation)
			r.Patch("/locations/{locationID}", propertyHandler.UpdateLocation)

			r.Post("/agencies", directoryHandler.CreateAgency)
			r.Patch("/agencies/{agencyID}", directoryHandler.UpdateAgency)
			r.Delete("/agencies/{agencyID}", directoryHandler.DeleteAgency)
			r.Post("/agents", directoryHandler.CreateAgent)
			r.Patch("/agents/{agentID}", directoryHandler.UpdateAgent)
			r.Delete("/agents/{agentID}", directoryHandler.DeleteAgent)

			r.Get("/users", userHandler.ListUsers)
			r.Get("/me/saved-listings", userHandler.ListSavedListings)
			r.Post("/me/saved-listings", userHandler.SaveListing)
			r.Delete("/me/saved-listings/{listingID}", userHandler.RemoveSavedListing)
			r.Get("/me/saved-searches", userHandler.ListSavedSearches)
			r.Post("/me/saved-searches", userHandler.CreateSavedSearch)
			r.Patch("/me/saved-searches/{searchID}", userHandler.UpdateSavedSearch)
			r.Delete("/me/saved-searches/{searchID}", userHandler.DeleteSavedSearch)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
