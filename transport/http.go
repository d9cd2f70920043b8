package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	cartapp "github.com/farhanadi/shopfront/application/cart"
	categoryapp "github.com/farhanadi/shopfront/application/category"
	productapp "github.com/farhanadi/shopfront/application/product"
	reviewapp "github.com/farhanadi/shopfront/application/review"
	shopapp "github.com/farhanadi/shopfront/application/shop"
	userapp "github.com/farhanadi/shopfront/application/user"
)

type RestHandler struct {
	ShopApp     shopapp.ShopApp
	CategoryApp categoryapp.CategoryApp
	ProductApp  productapp.ProductApp
	ReviewApp   reviewapp.ReviewApp
	UserApp     userapp.UserApp
	CartApp     cartapp.CartApp
}

func NewTransport(
	ShopApp shopapp.ShopApp,
	CategoryApp categoryapp.CategoryApp,
	ProductApp productapp.ProductApp,
	ReviewApp reviewapp.ReviewApp,
	UserApp userapp.UserApp,
	CartApp cartapp.CartApp,
) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ShopApp:     ShopApp,
		CategoryApp: CategoryApp,
		ProductApp:  ProductApp,
		ReviewApp:   ReviewApp,
		UserApp:     UserApp,
		CartApp:     CartApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Home
	mux.HandleFunc("/", rh.Index).Methods(http.MethodGet)

	// Cart
	mux.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)

	// Categories
	mux.HandleFunc("/categories/create", rh.CreateCategory).Methods(http.MethodPost)
	mux.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)

	// Shops. More specific routes are registered before the wildcard ones.
	mux.HandleFunc("/shops/create", rh.CreateShop).Methods(http.MethodPost)
	mux.HandleFunc("/shops/{slug}/products/create", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/shops/{slug}/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/shops/{slug}/products/{id:[0-9]+}/update", rh.UpdateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/shops/{slug}/products/{id:[0-9]+}/delete", rh.DeleteProduct).Methods(http.MethodPost)
	mux.HandleFunc("/shops/{slug}/reviews/create", rh.CreateReview).Methods(http.MethodPost)
	mux.HandleFunc("/shops/{slug}/delete", rh.DeleteShop).Methods(http.MethodPost)
	mux.HandleFunc("/shops/{slug}/{category}", rh.ListShopCategoryProducts).Methods(http.MethodGet)
	mux.HandleFunc("/shops/{slug}", rh.GetShop).Methods(http.MethodGet)

	// Users
	mux.HandleFunc("/users/create", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/users/login", rh.Login).Methods(http.MethodPost)

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())

	return mux
}
