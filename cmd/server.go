package cmd

import (
	"daybook/internal/config"
	"daybook/internal/core"
	"daybook/internal/db"
	"daybook/internal/http/handler"
	"daybook/internal/http/handler/middleware"
	"daybook/internal/http/payload"
	"daybook/internal/http/server"
	"daybook/internal/repository"
	"daybook/pkg/jwt"
	"daybook/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("daybook", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.TokenSecret))

	// repository
	repo := repository.NewJournalRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// journal service
	journal := core.NewJournal(
		logger,
		repo,
		jwtService)

	// handler
	journalHlr := handler.NewJournalHandler(
		logger,
		payload.DecodeValidator{},
		journal)

	// middleware
	authMw := middleware.NewAuthMiddleware(logger, jwtService)

	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes; sign-up and sign-in are the only unauthenticated ones
	mux.HandleFunc(handler.SignUp, journalHlr.HandleSignUp)
	mux.HandleFunc(handler.SignIn, journalHlr.HandleSignIn)
	mux.Handle(handler.ListEntries, authMw.Authenticate(http.HandlerFunc(journalHlr.HandleListEntries)))
	mux.Handle(handler.GetEntry, authMw.Authenticate(http.HandlerFunc(journalHlr.HandleGetEntry)))
	mux.Handle(handler.CreateEntry, authMw.Authenticate(http.HandlerFunc(journalHlr.HandleCreateEntry)))
	mux.Handle(handler.UpdateEntry, authMw.Authenticate(http.HandlerFunc(journalHlr.HandleUpdateEntry)))
	mux.Handle(handler.DeleteEntry, authMw.Authenticate(http.HandlerFunc(journalHlr.HandleDeleteEntry)))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
