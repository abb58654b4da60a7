//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appCatalog "github.com/tiendamoderna/tienda/internal/application/catalog"
	appOrder "github.com/tiendamoderna/tienda/internal/application/order"
	appUser "github.com/tiendamoderna/tienda/internal/application/user"
	"github.com/tiendamoderna/tienda/internal/domain/category"
	"github.com/tiendamoderna/tienda/internal/domain/user"
	"github.com/tiendamoderna/tienda/internal/infrastructure/config"
	"github.com/tiendamoderna/tienda/internal/infrastructure/mq"
	"github.com/tiendamoderna/tienda/internal/infrastructure/persistence/mysql"
	"github.com/tiendamoderna/tienda/internal/infrastructure/persistence/redis"
	httpapi "github.com/tiendamoderna/tienda/internal/interface/http"
	"github.com/tiendamoderna/tienda/internal/interface/http/handler"
	"github.com/tiendamoderna/tienda/internal/interface/http/middleware"
	"github.com/tiendamoderna/tienda/pkg/jwt"
)

var infrastructureSet = wire.NewSet(
	mysql.NewDB,
	redis.NewClient,
	mq.NewPublisher,
	wire.Bind(new(appOrder.EventPublisher), new(*mq.Publisher)),
	wire.Bind(new(appUser.EventPublisher), new(*mq.Publisher)),
)

var repositorySet = wire.NewSet(
	mysql.NewTxManager,
	wire.Bind(new(appOrder.TxManager), new(*mysql.TxManager)),
	mysql.NewUserRepository,
	mysql.NewCategoryRepository,
	mysql.NewBrandRepository,
	mysql.NewProductRepository,
	mysql.NewOrderRepository,
	redis.NewTokenStore,
	wire.Bind(new(appUser.TokenBlacklist), new(*redis.TokenStore)),
	wire.Bind(new(middleware.Blacklist), new(*redis.TokenStore)),
	redis.NewSessionStore,
	wire.Bind(new(appUser.SessionStore), new(*redis.SessionStore)),
)

var domainSet = wire.NewSet(
	user.NewService,
	category.NewService,
)

var applicationSet = wire.NewSet(
	appUser.NewRegisterUseCase,
	appUser.NewLoginUseCase,
	appUser.NewLogoutUseCase,
	appUser.NewPasswordUseCase,
	appUser.NewVerifyEmailUseCase,
	appUser.NewProfileUseCase,
	appCatalog.NewProductUseCase,
	appCatalog.NewCategoryUseCase,
	appCatalog.NewBrandUseCase,
	appCatalog.NewImportProductsUseCase,
	appOrder.NewCreateOrderUseCase,
	appOrder.NewCancelOrderUseCase,
	appOrder.NewUpdateStatusUseCase,
	appOrder.NewQueryOrdersUseCase,
)

var middlewareSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
)

var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewProductHandler,
	handler.NewCatalogHandler,
	handler.NewOrderHandler,
	handler.NewAdminHandler,
)

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenExpire)
}

// InitializeApp assembles the full application from a loaded configuration.
// Run `wire gen ./cmd/api` after changing any provider set.
func InitializeApp(cfg *config.Config) (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		httpapi.NewRouter,
	)
	return nil, nil
}
