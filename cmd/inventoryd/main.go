package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventar.org/internal/apiclient"
	"inventar.org/internal/auth"
	"inventar.org/internal/dashboard"
	"inventar.org/internal/inventory"
	"inventar.org/internal/inventory/seed"
	"inventar.org/internal/obs"
	"inventar.org/internal/stream"
)

var (
	version = "0.3.1"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	changes := stream.New()
	store := inventory.NewStore(
		inventory.WithInitialState(seed.State()),
		inventory.WithObserver(changes.Publish),
	)
	svc := dashboard.New(store)
	issuer := auth.NewService(store.Snapshot)

	addr := os.Getenv("INVENTAR_METRICS_ADDR")
	if addr == "" {
		addr = ":9100"
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", obs.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting inventoryd %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Log every committed change as a structured line.
	go func() {
		for change := range changes.Subscribe(ctx) {
			obs.LogEvent(map[string]any{
				"ts":         change.At.Format(time.RFC3339Nano),
				"type":       "change",
				"collection": string(change.Collection),
				"action":     string(change.Action),
				"entity_id":  change.EntityID,
			})
		}
	}()

	// Establish a session and run a small demo workload so a fresh instance
	// has data motion to scrape.
	go func() {
		loginCtx, loginCancel := context.WithTimeout(ctx, 5*time.Second)
		defer loginCancel()
		session, err := issuer.Login(loginCtx, "admin", auth.DemoPassword)
		if err != nil {
			log.Printf("demo login failed: %v", err)
			return
		}
		opCtx := auth.ContextWithUser(ctx, session.Principal.User.ID, session.Principal.PrivilegeNames())
		if _, err := svc.CheckoutAccessory(opCtx, "acc1"); err != nil {
			log.Printf("demo checkout failed: %v", err)
		}

		// Refresh the component register from the simulated remote API.
		remote := apiclient.New(seed.State())
		fetchCtx, fetchCancel := apiclient.WithTimeout(opCtx)
		defer fetchCancel()
		components, err := remote.FetchComponents(fetchCtx)
		if err != nil {
			log.Printf("component refresh failed: %v", err)
		} else {
			svc.Apply(opCtx, inventory.SetComponents(components))
		}

		stats := dashboard.ComputeStats(svc.Snapshot())
		obs.LogEvent(map[string]any{
			"type":         "stats",
			"total_assets": stats.TotalAssets,
			"total_value":  stats.TotalValue.StringFixed(2),
		})
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Println("Stopped")
}
