package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/questx-lab/scratchcard/internal/middleware"
	"github.com/questx-lab/scratchcard/pkg/prometheus"
	"github.com/questx-lab/scratchcard/pkg/router"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadRepos()
	s.loadStatistic()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx).ApiServer
	mux := http.NewServeMux()
	mux.Handle("/metrics", prometheus.NewHandler())
	mux.Handle("/", cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(s.router.Handler()))

	s.server = &http.Server{
		Addr:              cfg.Address(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot shutdown server: %v", err)
		}
	}()

	xcontext.Logger(s.ctx).Infof("Starting server on %s", cfg.Address())
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	cfg := xcontext.Configs(s.ctx)

	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	// Public API.
	router.POST(s.router, "/login", s.authDomain.Login)
	router.GET(s.router, "/getPrizes", s.scratchDomain.GetPrizes)
	router.GET(s.router, "/getLeaderboard", s.statisticDomain.GetLeaderboard)
	router.GET(s.router, "/getUniqueWinner", s.statisticDomain.GetUniqueWinner)
	router.GET(s.router, "/getDonors", s.statisticDomain.GetDonors)

	// These following APIs need authentication.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier(s.tokenEngine).Middleware())
	{
		router.GET(authRouter, "/getMe", s.authDomain.GetMe)
		router.GET(authRouter, "/getScratchStatus", s.scratchDomain.GetStatus)
		router.GET(authRouter, "/getCollection", s.scratchDomain.GetCollection)
	}

	scratchRouter := authRouter.Branch()
	rateLimiter := middleware.NewRateLimiter(cfg.Scratch.RateLimit, cfg.Scratch.RateBurst)
	scratchRouter.Before(rateLimiter.Middleware())
	{
		router.POST(scratchRouter, "/scratch", s.scratchDomain.Scratch)
	}

	adminRouter := authRouter.Branch()
	adminRouter.Before(middleware.NewOnlyAdmin(s.userRepo).Middleware())
	{
		router.GET(adminRouter, "/admin/getMembers", s.adminDomain.GetMembers)
		router.GET(adminRouter, "/admin/getInventoryStats", s.adminDomain.GetInventoryStats)
		router.POST(adminRouter, "/admin/assignBonusScratch", s.adminDomain.AssignBonusScratch)
		router.POST(adminRouter, "/admin/revokeBonusScratch", s.adminDomain.RevokeBonusScratch)
	}
}
