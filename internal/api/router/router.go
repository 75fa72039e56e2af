package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"cafe/internal/api/handler"
	"cafe/internal/api/middleware"
	"cafe/internal/api/util"
	"cafe/internal/core/service"
)

// Deps are the collaborators the HTTP surface is built from. Ping is
// optional and backs the health check.
type Deps struct {
	AuthService      service.AuthService
	MenuService      service.MenuService
	OrderService     service.OrderService
	BookingService   service.BookingService
	ReviewService    service.ReviewService
	AnalyticsService service.AnalyticsService
	Tokens           *util.TokenIssuer
	UploadDir        string
	Ping             func(ctx context.Context) error
}

func NewRouter(deps Deps) http.Handler {
	// Initialize handlers
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Tokens)
	menuHandler := handler.NewMenuHandler(deps.MenuService)
	orderHandler := handler.NewOrderHandler(deps.OrderService)
	bookingHandler := handler.NewBookingHandler(deps.BookingService)
	reviewHandler := handler.NewReviewHandler(deps.ReviewService)
	adminHandler := handler.NewAdminHandler(deps.OrderService, deps.AnalyticsService)
	authMiddleware := middleware.NewAuthMiddleware(deps.Tokens)

	identified := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.Authenticate(h)
	}

	r := mux.NewRouter()

	r.HandleFunc("/health", healthCheck(deps.Ping)).Methods(http.MethodGet)

	// Auth routes
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Menu routes
	r.HandleFunc("/api/menu", menuHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/menu", menuHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/menu/{id}", menuHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/menu/{id}", menuHandler.Delete).Methods(http.MethodDelete)

	// Order routes
	r.Handle("/api/orders/mine", identified(orderHandler.ListMine)).Methods(http.MethodGet)
	r.Handle("/api/orders/mine", identified(orderHandler.CreateMine)).Methods(http.MethodPost)
	r.HandleFunc("/api/orders", orderHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/orders", orderHandler.ListAll).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/user/{email}", orderHandler.ListForEmail).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{id}/status", orderHandler.UpdateStatus).Methods(http.MethodPut)

	// Booking routes
	r.HandleFunc("/api/bookings", bookingHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/bookings", bookingHandler.ListAll).Methods(http.MethodGet)
	r.HandleFunc("/api/bookings/user/{email}", bookingHandler.ListForEmail).Methods(http.MethodGet)
	r.HandleFunc("/api/bookings/{id}", bookingHandler.Cancel).Methods(http.MethodDelete)

	// Review routes
	r.HandleFunc("/api/reviews", reviewHandler.List).Methods(http.MethodGet)
	r.Handle("/api/reviews", identified(reviewHandler.Create)).Methods(http.MethodPost)

	// Admin routes
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware.Authenticate, authMiddleware.RequireAdmin)
	admin.HandleFunc("/orders", adminHandler.ListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/status", adminHandler.UpdateOrderStatus).Methods(http.MethodPut)
	admin.HandleFunc("/analytics", adminHandler.Analytics).Methods(http.MethodGet)

	// Uploaded images
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", noDirListing(http.FileServer(http.Dir(deps.UploadDir))))).
		Methods(http.MethodGet, http.MethodHead)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		util.WriteMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		util.WriteMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// preflight is answered before routing
	return middleware.CORSMiddleware(
		middleware.LoggingMiddleware(
			middleware.RecoverMiddleware(r),
		),
	)
}

func healthCheck(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				zap.L().Warn("health check failed", zap.Error(err))
				util.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status":   "error",
					"database": "disconnected",
				})
				return
			}
		}
		util.WriteJSON(w, http.StatusOK, map[string]string{
			"status":   "ok",
			"database": "connected",
		})
	}
}

func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
