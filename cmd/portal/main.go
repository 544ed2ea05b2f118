package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Steven2002S/sga-docente/internal/api"
	"github.com/Steven2002S/sga-docente/internal/portal"
	"github.com/Steven2002S/sga-docente/internal/prefs"
	"github.com/Steven2002S/sga-docente/internal/push"
	"github.com/Steven2002S/sga-docente/internal/shared"
)

func main() {
	log.Println("INFO: Starting Teacher Portal...")

	// 1. Load Configuration
	shared.LoadEnv("")
	cfg, err := shared.LoadPortalConfig()
	if err != nil {
		log.Fatalf("FATAL: Configuration error: %v", err)
	}
	if err := shared.ValidatePortalConfig(cfg); err != nil {
		log.Fatalf("FATAL: Invalid configuration: %v", err)
	}

	// 2. Preference Store (load-at-init)
	store, err := prefs.Load(cfg.PrefsPath)
	if err != nil {
		log.Fatalf("FATAL: Failed to load preferences: %v", err)
	}
	store.Subscribe(func(p prefs.Preferences) {
		log.Printf("INFO: Preferences changed: dark_mode=%t sidebar_collapsed=%t", p.DarkMode, p.SidebarCollapsed)
	})

	// 3. Academic API Client
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	// 4. Realtime Push Channel (optional)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.PushURL != "" {
		go runPushListener(ctx, cfg)
	}

	// 5. Setup Routes and Middleware
	router := portal.SetupRoutes(cfg, client, store)

	// 6. Configure Server
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 7. Start Server in a Goroutine
	go func() {
		log.Printf("INFO: Teacher Portal listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("FATAL: HTTP server error: %v", err)
		}
	}()

	// 8. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("INFO: Shutting down Teacher Portal...")

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARN: Server shutdown error: %v", err)
	}

	log.Println("INFO: Teacher Portal stopped.")
}

// runPushListener consumes the realtime channel. Each event's obligation
// is a notice plus a refresh of the named resource; the portal assembles
// every view from fresh upstream fetches, so logging the notice is the
// whole job here. The loop reconnects after a fixed pause; the channel
// offers no delivery guarantees and none are added.
func runPushListener(ctx context.Context, cfg *shared.PortalConfig) {
	listener := push.NewListener(cfg.PushURL, shared.GetEnv("SGA_PUSH_TOKEN", ""))

	refresh := func(resource string) push.Handler {
		return func(e push.Event) {
			log.Printf("INFO: Notificacion %s (curso=%s modulo=%s tarea=%s): refrescar %s",
				e.Name, e.CourseID, e.ModuleID, e.AssignmentID, resource)
		}
	}

	listener.OnEvent(push.EventNewSubmission, refresh("entregas"))
	listener.OnEvent(push.EventSubmissionUpdated, refresh("entregas"))
	listener.OnEvent(push.EventAssignmentDelivered, refresh("entregas"))
	listener.OnEvent(push.EventGradeUpdated, refresh("calificaciones"))
	listener.OnEvent(push.EventSubmissionGraded, refresh("calificaciones"))
	listener.OnEvent(push.EventModuleCreated, refresh("modulos"))
	listener.OnEvent(push.EventNewAssignment, refresh("tareas"))

	for {
		err := listener.Listen(ctx)
		if ctx.Err() != nil {
			return
		}
		log.Printf("WARN: Push channel disconnected: %v; reconnecting", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}
