package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	cartapp "github.com/farhanadi/shopfront/application/cart"
	categoryapp "github.com/farhanadi/shopfront/application/category"
	productapp "github.com/farhanadi/shopfront/application/product"
	reviewapp "github.com/farhanadi/shopfront/application/review"
	shopapp "github.com/farhanadi/shopfront/application/shop"
	userapp "github.com/farhanadi/shopfront/application/user"
	"github.com/farhanadi/shopfront/cmd/config"
	redisclient "github.com/farhanadi/shopfront/cmd/redis"
	_ "github.com/farhanadi/shopfront/docs"
	cartRepo "github.com/farhanadi/shopfront/repository/cart"
	categoryRepo "github.com/farhanadi/shopfront/repository/category"
	productRepo "github.com/farhanadi/shopfront/repository/product"
	reviewRepo "github.com/farhanadi/shopfront/repository/review"
	"github.com/farhanadi/shopfront/repository/schema"
	shopRepo "github.com/farhanadi/shopfront/repository/shop"
	userRepo "github.com/farhanadi/shopfront/repository/user"
	"github.com/farhanadi/shopfront/thirdparty/rabbitmq"
	"github.com/farhanadi/shopfront/transport"
	"github.com/farhanadi/shopfront/utils/logger"
)

// @title SHOPFRONT API
// @version 1.0
// @description Storefront API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Ensure the schema exists before anything else runs
	if err := schema.Init(context.Background(), db); err != nil {
		logger.Fatal("err init schema", zap.Error(err))
	}

	// Redis is optional; without it the cart endpoints report unavailable
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// RabbitMQ is optional; without it review events are skipped
	var publisher reviewapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = p.Close()
		}()
		publisher = p
	}

	// Initialize repositories
	ShopRepo := shopRepo.NewShopRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	ReviewRepo := reviewRepo.NewReviewRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	CartRepo := cartRepo.NewCartRepository()

	// Initialize application layers
	ShopApp := shopapp.NewShopApp(ShopRepo, ProductRepo, CategoryRepo, ReviewRepo)
	CategoryApp := categoryapp.NewCategoryApp(CategoryRepo)
	ProductApp := productapp.NewProductApp(ProductRepo, ShopRepo, CategoryRepo)
	ReviewApp := reviewapp.NewReviewApp(ReviewRepo, ShopRepo, publisher)
	UserApp := userapp.NewUserApp(UserRepo)
	CartApp := cartapp.NewCartApp(CartRepo)

	httpTransport := transport.NewTransport(ShopApp, CategoryApp, ProductApp, ReviewApp, UserApp, CartApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
