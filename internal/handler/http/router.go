package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/service"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/health"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/middleware"
)

// Services groups the application services the router serves.
type Services struct {
	Orders   *service.OrderService
	Products *service.ProductService
	Banners  *service.BannerService
	Blog     *service.BlogService
	Contact  *service.ContactService
	Cart     *service.CartService
	Media    *service.MediaService
}

// RouterConfig holds router-level options.
type RouterConfig struct {
	CORS       middleware.CORSConfig
	PprofCIDRs []string
}

// NewRouter creates a chi router with all storefront and admin routes
// registered.
func NewRouter(svcs Services, healthHandler *health.Handler, logger *slog.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, cfg.PprofCIDRs, logger)

	orderHandler := NewOrderHandler(svcs.Orders, logger)
	productHandler := NewProductHandler(svcs.Products, logger)
	bannerHandler := NewBannerHandler(svcs.Banners, logger)
	blogHandler := NewBlogHandler(svcs.Blog, logger)
	contactHandler := NewContactHandler(svcs.Contact, logger)
	cartHandler := NewCartHandler(svcs.Cart, logger)
	mediaHandler := NewMediaHandler(svcs.Media, logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/create", orderHandler.CreateOrder)
			r.Get("/", orderHandler.ListOrders)
			r.Get("/{id}", orderHandler.GetOrder)
			r.Patch("/{id}", orderHandler.UpdateOrderStatus)
			r.Delete("/{id}", orderHandler.DeleteOrder)
		})

		r.Route("/products", func(r chi.Router) {
			r.With(middleware.CacheControl(60)).Get("/", productHandler.ListProducts)
			r.With(middleware.CacheControl(60)).Get("/{slug}", productHandler.GetProduct)
			r.Post("/", productHandler.CreateProduct)
			r.Put("/{id}", productHandler.UpdateProduct)
			r.Delete("/{id}", productHandler.DeleteProduct)
		})

		r.Route("/banners", func(r chi.Router) {
			r.With(middleware.CacheControl(300)).Get("/", bannerHandler.ListBanners)
			r.Post("/", bannerHandler.CreateBanner)
			r.Put("/{id}", bannerHandler.UpdateBanner)
			r.Delete("/{id}", bannerHandler.DeleteBanner)
		})

		r.Route("/blog", func(r chi.Router) {
			r.With(middleware.CacheControl(300)).Get("/", blogHandler.ListPosts)
			r.With(middleware.CacheControl(300)).Get("/{slug}", blogHandler.GetPost)
			r.Post("/", blogHandler.CreatePost)
			r.Patch("/{slug}", blogHandler.UpdatePost)
			r.Delete("/{slug}", blogHandler.DeletePost)
		})

		r.Post("/contact", contactHandler.SubmitMessage)
		r.Route("/admin/contacts", func(r chi.Router) {
			r.Get("/", contactHandler.ListMessages)
			r.Patch("/{id}", contactHandler.UpdateMessageStatus)
			r.Delete("/{id}", contactHandler.DeleteMessage)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/{id}", cartHandler.GetCart)
			r.Put("/{id}", cartHandler.ReplaceCart)
			r.Delete("/{id}", cartHandler.ClearCart)
		})

		r.Post("/upload", mediaHandler.Upload)
	})

	return r
}
