package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/hoopstore/config"
	"github.com/MarcGrol/hoopstore/lib/myhttpclient"
	"github.com/MarcGrol/hoopstore/lib/mylog"
	"github.com/MarcGrol/hoopstore/lib/mypostgres"
	"github.com/MarcGrol/hoopstore/lib/mysupabase"
	"github.com/MarcGrol/hoopstore/services/adminauth"
	"github.com/MarcGrol/hoopstore/services/checkoutstripe"
	"github.com/MarcGrol/hoopstore/services/teams"
	"github.com/MarcGrol/hoopstore/services/warmup"
)

type endpointRegistrar interface {
	RegisterEndpoints(c context.Context, router *mux.Router) error
}

func main() {
	c := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}

	teamStore, adminFinder, cleanup, err := createDataSource(c, cfg)
	if err != nil {
		log.Fatalf("Error connecting to %s data source: %s", cfg.DataSource, err)
	}
	defer cleanup()

	resolver := adminauth.NewAnonymousResolver()
	if cfg.Supabase.HasREST() {
		resolver = adminauth.NewSupabaseResolver(mysupabase.NewAuthClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.Timeout))
	}

	router := mux.NewRouter()

	services := []endpointRegistrar{
		checkoutstripe.NewWebService(mylog.New("checkoutstripe"), checkoutstripe.NewPayer(cfg.Stripe.SecretKey, cfg.Stripe.Timeout)),
		adminauth.NewWebService(mylog.New("adminauth"), resolver, adminFinder),
		teams.NewWebService(mylog.New("teams"), teamStore),
		warmup.NewWebService(mylog.New("warmup"), string(cfg.DataSource), teamStore),
	}
	for _, s := range services {
		err = s.RegisterEndpoints(c, router)
		if err != nil {
			log.Fatalf("Error registering endpoints: %s", err)
		}
	}

	startWebServerBlocking(cfg.Port, router)
}

func createDataSource(c context.Context, cfg config.Config) (teams.TeamStore, adminauth.AdminRecordFinder, func(), error) {
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		pool, cleanup, err := mypostgres.Connect(c, cfg.Supabase.DatabaseURL, cfg.Supabase.Timeout)
		if err != nil {
			return nil, nil, nil, err
		}
		return teams.NewPostgresTeamStore(pool, cfg.Supabase.Timeout),
			adminauth.NewPostgresAdminFinder(pool, cfg.Supabase.Timeout),
			cleanup, nil

	case config.DataSourceSupabase:
		sender := myhttpclient.New(cfg.Supabase.Timeout)
		return teams.NewSupabaseTeamStore(mysupabase.NewRestClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, sender)),
			supabaseAdminFinder(cfg, sender),
			func() {}, nil

	default:
		teamStore, err := teams.NewLocalTeamStore()
		if err != nil {
			return nil, nil, nil, err
		}
		finder := adminauth.NewNoAdminFinder()
		if cfg.Supabase.HasREST() {
			finder = supabaseAdminFinder(cfg, myhttpclient.New(cfg.Supabase.Timeout))
		}
		return teamStore, finder, func() {}, nil
	}
}

func supabaseAdminFinder(cfg config.Config, sender myhttpclient.HTTPSender) adminauth.AdminRecordFinder {
	key := cfg.Supabase.ServiceRoleKey
	if key == "" {
		log.Printf("SUPABASE_SERVICE_ROLE_KEY not set: admin lookups use the anon key and are subject to row-level security")
		key = cfg.Supabase.AnonKey
	}
	return adminauth.NewSupabaseAdminFinder(mysupabase.NewRestClient(cfg.Supabase.URL, key, sender))
}

func startWebServerBlocking(port string, router *mux.Router) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
