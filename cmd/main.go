package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"zenchat/auth"
	"zenchat/errors"
	"zenchat/infrastructure/api"
	"zenchat/infrastructure/ws"
	"zenchat/observability"
	"zenchat/repositories"
	"zenchat/runtime"
	"zenchat/runtime/workers"
	"zenchat/services"
	"zenchat/storage"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal or a server failure.
// Deferred cleanups run before main exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	charReplacement, err := CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Storage
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = writer.Close()
	}()

	media, err := storage.NewMediaStore(config.MediaDir, "/media", log)
	if err != nil {
		return fmt.Errorf("media directory: %w", err)
	}

	// 3. Services
	moderator, err := runtime.LoadModerator(log, charReplacement)
	if err != nil {
		return err
	}
	tokens := auth.NewTokenIssuer(config.JWTSecret, config.AuthTokenDuration)
	users := repositories.NewUserRepository(db)

	authService := services.NewAuthService(log, users, tokens, services.NewLogOTPSender(log), config.OTPDuration)
	userService := services.NewUserService(log, users, media)
	chatService := services.NewChatService(log,
		repositories.NewConversationRepository(db),
		repositories.NewMessageRepository(db, log, config.LimitMessages),
		users,
		repositories.NewMessageIndex(writer, log, config.SearchLimit),
		media,
		moderator,
	)
	statusService := services.NewStatusService(log,
		repositories.NewStatusRepository(db, time.Now), users, media, config.StatusTTL)

	// 4. Realtime layer & supervised workers
	metrics := observability.NewMetrics()
	orchestrator := runtime.NewOrchestrator(log,
		workers.NewSupervisor(log, config.RestartInterval),
		userService, chatService, metrics,
		config.DispatcherBufferSize, config.TypingTimeout,
	)
	telemetry := workers.NewTelemetryWorker(log, metrics, config.TelemetryInterval)

	// Nobody is online before the first session opens
	if err := userService.ResetPresence(context.Background(), time.Now()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The loop outlives the signal: closing sockets still posts to it
	orchestrator.Start(context.Background(), telemetry, workers.NewBadgerGCWorker(log, db, config.GCInterval))
	defer func() {
		orchestrator.Stop()
		<-orchestrator.Done()
	}()

	// 5. HTTP server: REST API and socket endpoint
	gateway := orchestrator.Gateway()
	socket := ws.NewServer(log, gateway, tokens, metrics, ws.Config{
		AllowedOrigins:          config.Origins(),
		MaxFrameSize:            config.MaxFrameSize,
		RateLimitBurst:          config.RateLimitBurst,
		RateLimitRefillInterval: config.RateLimitRefillInterval,
		SessionBufferSize:       config.SessionBufferSize,
		RequireAuth:             config.RequireSocketAuth,
	})
	router := api.NewRouter(log, tokens, api.RouterConfig{
		AllowedOrigins: config.Origins(),
		MediaDir:       config.MediaDir,
		MaxUploadSize:  storage.MaxMediaSize,
	}, api.Handlers{
		Auth:   api.NewAuthHandler(log, authService, userService, tokens),
		Chat:   api.NewChatHandler(log, chatService, gateway),
		Status: api.NewStatusHandler(log, statusService),
		Socket: socket,
		Stats:  telemetry,
	})

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 6. gRPC health endpoint
	healthAddress := fmt.Sprintf("%s:%d", config.Host, config.HealthPort)
	listener, err := net.Listen("tcp", healthAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", healthAddress, err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()
	go func() {
		log.Info("Starting gRPC health server", "address", healthAddress)
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case runErr = <-errChan:
		log.Error("Server failed, shutting down", "error", runErr)
	}

	// 8. Final Cleanup: sockets, then the loop, deferred closes follow
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	socket.Shutdown()
	if err := socket.WaitClosed(shutdownCtx); err != nil {
		log.Warn("Sockets still open at shutdown", "sessions", socket.Clients(), "error", err)
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown", "error", err)
	}
	if err := orchestrator.Drain(shutdownCtx); err != nil {
		log.Warn("Dispatcher not drained", "error", err)
	}
	grpcServer.GracefulStop()
	log.Info("Program stopped cleanly")

	return runErr
}
