package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

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

func main() {
	// .env is optional; real deployments rely on TIENDA_* variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error al cargar la configuración: %v", err)
	}

	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("error al conectar con MySQL: %v", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("error al conectar con Redis: %v", err)
	}

	publisher, err := mq.NewPublisher(cfg)
	if err != nil {
		log.Fatalf("error al conectar con RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Infrastructure.
	txManager := mysql.NewTxManager(db)
	userRepo := mysql.NewUserRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	brandRepo := mysql.NewBrandRepository(db)
	productRepo := mysql.NewProductRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	tokenStore := redis.NewTokenStore(redisClient)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenExpire)

	// Domain services.
	userService := user.NewService()
	categoryService := category.NewService(categoryRepo)

	// Use cases.
	registerUC := appUser.NewRegisterUseCase(userRepo, userService, jwtManager, publisher)
	loginUC := appUser.NewLoginUseCase(userRepo, userService, jwtManager, sessionStore)
	logoutUC := appUser.NewLogoutUseCase(jwtManager, tokenStore, sessionStore)
	passwordUC := appUser.NewPasswordUseCase(userRepo, userService, publisher)
	verifyUC := appUser.NewVerifyEmailUseCase(userRepo)
	profileUC := appUser.NewProfileUseCase(userRepo)

	productUC := appCatalog.NewProductUseCase(productRepo, categoryRepo, brandRepo)
	categoryUC := appCatalog.NewCategoryUseCase(categoryRepo, categoryService)
	brandUC := appCatalog.NewBrandUseCase(brandRepo)
	importUC := appCatalog.NewImportProductsUseCase(productRepo, categoryRepo, brandRepo)

	createOrderUC := appOrder.NewCreateOrderUseCase(orderRepo, productRepo, txManager, publisher)
	cancelOrderUC := appOrder.NewCancelOrderUseCase(orderRepo, productRepo, txManager, publisher)
	statusUC := appOrder.NewUpdateStatusUseCase(orderRepo)
	queryUC := appOrder.NewQueryOrdersUseCase(orderRepo)

	// Interface layer.
	userHandler := handler.NewUserHandler(registerUC, loginUC, logoutUC, passwordUC, verifyUC, profileUC)
	productHandler := handler.NewProductHandler(productUC)
	catalogHandler := handler.NewCatalogHandler(categoryUC, brandUC)
	orderHandler := handler.NewOrderHandler(createOrderUC, cancelOrderUC, statusUC, queryUC)
	adminHandler := handler.NewAdminHandler(importUC)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, tokenStore)

	r := httpapi.NewRouter(cfg, authMiddleware, userHandler, productHandler, catalogHandler, orderHandler, adminHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("tienda API escuchando en %s (modo %s)", addr, cfg.Server.Mode)
	if err := r.Run(addr); err != nil {
		log.Fatalf("error al iniciar el servidor: %v", err)
	}
}
