package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/sagnik22dey/RoasGuy/config"
	"github.com/sagnik22dey/RoasGuy/controllers"
	"github.com/sagnik22dey/RoasGuy/middleware"
)

// Register wires every route on the engine: marketing pages, static
// assets, the checkout API, and the operational endpoints.
func Register(r *gin.Engine, pages *controllers.PageController, payments *controllers.PaymentController, cfg config.Config) {
	// Course landing pages and funnels.
	r.GET("/", pages.Serve("homepage.html"))
	r.GET("/master-creative-targeting", pages.Serve("metaHomepage.html"))
	r.GET("/psychology-driven-advanced-meta-ad-course", pages.Serve("advanced_homepage.html"))

	// Cart pages.
	r.GET("/fundamentals-of-facebook-ads/cartpage", pages.Serve("cartPage.html"))
	r.GET("/psychology-driven-advanced-meta-ad-course/basic-cart", pages.Serve("basicCart.html"))
	r.GET("/psychology-driven-advanced-meta-ad-course/value-cart", pages.Serve("valueCart.html"))
	r.GET("/psychology-driven-advanced-meta-ad-course/business-growth-cart", pages.Serve("businessGrowthCart.html"))
	r.GET("/meta-andromeda-update-course/meta-base-cart", pages.Serve("metaBaseCart.html"))
	r.GET("/meta-andromeda-update-course/meta-mentorship-cart", pages.Serve("metaMentorshipCart.html"))

	// Post-purchase and policy pages.
	r.GET("/thankyou", pages.Serve("thankYouPage.html"))
	r.GET("/meta-thank-you", pages.Serve("metaThankyou.html"))
	r.GET("/privacy-policy", pages.Serve("privacyPolicy.html"))
	r.GET("/refund-policy", pages.Serve("refundPolicy.html"))
	r.GET("/terms-and-conditions", pages.Serve("termsAndConditions.html"))

	r.Static("/Resources", cfg.ResourcesDir)

	// Checkout API. Rate limited per IP; pages are not.
	api := r.Group("/api", middleware.RateLimit(rate.Every(time.Minute/100), 50))
	api.POST("/create-order", payments.CreateOrder)
	api.POST("/verify-payment", payments.VerifyPayment)
	api.GET("/razorpay-key", payments.RazorpayKey)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Unmatched routes get a real 404 with a JSON body. Known page routes
	// with a missing backing file keep the soft-200 HTML fallback instead;
	// the two cases are deliberately distinct.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})
}
