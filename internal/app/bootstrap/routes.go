// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	authfeature "github.com/seedscope/seedscope/internal/app/features/authgoogle"
	companiesfeature "github.com/seedscope/seedscope/internal/app/features/companies"
	grantsfeature "github.com/seedscope/seedscope/internal/app/features/grants"
	healthfeature "github.com/seedscope/seedscope/internal/app/features/health"
	investorsfeature "github.com/seedscope/seedscope/internal/app/features/investors"
	lookupsfeature "github.com/seedscope/seedscope/internal/app/features/lookups"
	newsfeature "github.com/seedscope/seedscope/internal/app/features/news"
	peoplefeature "github.com/seedscope/seedscope/internal/app/features/people"
	rangesfeature "github.com/seedscope/seedscope/internal/app/features/ranges"
	uploadsfeature "github.com/seedscope/seedscope/internal/app/features/uploads"
	webhooksfeature "github.com/seedscope/seedscope/internal/app/features/webhooks"
	"github.com/seedscope/seedscope/internal/app/populate"
	investorstore "github.com/seedscope/seedscope/internal/app/store/investors"
	lookupstore "github.com/seedscope/seedscope/internal/app/store/lookups"
	"github.com/seedscope/seedscope/internal/app/store/oauthstate"
	peoplestore "github.com/seedscope/seedscope/internal/app/store/people"
	"github.com/seedscope/seedscope/internal/app/store/queries"
	rangestore "github.com/seedscope/seedscope/internal/app/store/ranges"
	userstore "github.com/seedscope/seedscope/internal/app/store/users"
	"github.com/seedscope/seedscope/internal/app/system/auth"
	"github.com/seedscope/seedscope/internal/app/system/newsclient"
	"github.com/seedscope/seedscope/internal/app/system/storage"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for the SeedScope API.
//
// WAFFLE calls this after configuration, DB connection, schema setup,
// and the Startup hook have completed. It builds the shared stores,
// the populator, the session manager, and mounts every feature router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Shared stores and the reference populator.
	investors := investorstore.New(db, appCfg.InvestorGlobalPaging)
	users := userstore.New(db)
	pop := populate.New(populate.Deps{
		Categories:         lookupstore.New(db, lookupstore.Categories),
		FundingTypes:       lookupstore.New(db, lookupstore.FundingTypes),
		SDGFocuses:         lookupstore.New(db, lookupstore.SDGFocuses),
		Sectors:            lookupstore.New(db, lookupstore.Sectors),
		FundingInstruments: lookupstore.New(db, lookupstore.FundingInstruments),
		FundingRounds:      lookupstore.New(db, lookupstore.FundingRounds),
		TicketSizes:        rangestore.New(db, rangestore.TicketSizes),
		InvestmentAsks:     rangestore.New(db, rangestore.InvestmentAsks),
		People:             peoplestore.New(db),
	}, logger)
	related := queries.NewRelatedFinder(
		db.Collection("companies"),
		investors.BaseCollection(),
	)

	r := chi.NewRouter()

	// Loads the SessionUser into context on every request.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.MongoClient, logger)))

	// Authentication.
	authHandler := authfeature.NewHandler(db, sessionMgr, users, oauthstate.New(db),
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	r.Route("/auth", authHandler.MountRoutes)

	// Directory entities.
	companiesHandler := companiesfeature.NewHandler(db, pop, related, logger)
	r.Route("/companies", func(r chi.Router) { companiesHandler.MountRoutes(r, sessionMgr) })

	investorsHandler := investorsfeature.NewHandler(db, appCfg.InvestorGlobalPaging, pop, related, logger)
	r.Route("/investors", func(r chi.Router) { investorsHandler.MountRoutes(r, sessionMgr) })

	peopleHandler := peoplefeature.NewHandler(db, investors, logger)
	r.Route("/people", func(r chi.Router) { peopleHandler.MountRoutes(r, sessionMgr) })

	grantsHandler := grantsfeature.NewHandler(db, logger)
	r.Route("/grants", func(r chi.Router) { grantsHandler.MountRoutes(r, sessionMgr) })

	// Taxonomy and range tables.
	lookupsHandler := lookupsfeature.NewHandler(db, logger)
	r.Route("/lookups", func(r chi.Router) { lookupsHandler.MountRoutes(r, sessionMgr) })

	rangesHandler := rangesfeature.NewHandler(db, logger)
	r.Route("/ranges", func(r chi.Router) { rangesHandler.MountRoutes(r, sessionMgr) })

	// News feed, when an API key is configured.
	if appCfg.NewsAPIKey != "" {
		newsHandler := newsfeature.NewHandler(
			newsclient.New(appCfg.NewsBaseURL, appCfg.NewsAPIKey, appCfg.NewsTimeout, logger),
			logger)
		r.Route("/news", newsHandler.MountRoutes)
	}

	// Image uploads, when a bucket is configured.
	if appCfg.S3Bucket != "" {
		uploader, err := storage.NewUploader(context.Background(), storage.S3Config{
			Region:          appCfg.S3Region,
			Bucket:          appCfg.S3Bucket,
			AccessKeyID:     appCfg.S3AccessKeyID,
			SecretAccessKey: appCfg.S3SecretAccessKey,
		}, logger)
		if err != nil {
			logger.Error("s3 uploader init failed", zap.Error(err))
			return nil, err
		}
		uploadsHandler := uploadsfeature.NewHandler(uploader, logger)
		r.Route("/uploads", func(r chi.Router) { uploadsHandler.MountRoutes(r, sessionMgr) })
	}

	// Identity-provider webhooks, when a secret is configured.
	if appCfg.WebhookSecret != "" {
		webhooksHandler := webhooksfeature.NewHandler(users, appCfg.WebhookSecret, logger)
		r.Route("/webhooks", webhooksHandler.MountRoutes)
	}

	return r, nil
}
