package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yashwardhan0703/ecomerce-backend/controllers"
	"github.com/yashwardhan0703/ecomerce-backend/middleware"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth       *controllers.AuthController
	Category   *controllers.CategoryController
	Product    *controllers.ProductController
	Cart       *controllers.CartController
	Order      *controllers.OrderController
	Wishlist   *controllers.WishlistController
	Newsletter *controllers.NewsletterController
}

// Register mounts the full route table. jwtSecret feeds the auth middleware.
func Register(r *gin.Engine, c Controllers, jwtSecret string) {
	auth := middleware.RequireAuth(jwtSecret)
	admin := middleware.RequireAdmin()
	authLimit := middleware.AuthRateLimit()

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authLimit, c.Auth.Signup)
		authGroup.POST("/login", authLimit, c.Auth.Login)
		authGroup.POST("/admin/login", authLimit, c.Auth.AdminLogin)
		authGroup.POST("/admin/register", authLimit, c.Auth.AdminRegister)
		authGroup.POST("/logout", auth, c.Auth.Logout)
		authGroup.GET("/me", auth, c.Auth.Me)
		authGroup.GET("/admin/users", auth, admin, c.Auth.ListUsers)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", c.Category.ListCategories)
		categories.GET("/:id", c.Category.GetCategory)
		categories.POST("", auth, admin, c.Category.CreateCategory)
		categories.PUT("/:id", auth, admin, c.Category.UpdateCategory)
		categories.DELETE("/:id", auth, admin, c.Category.DeleteCategory)
	}

	subcategories := r.Group("/subcategories")
	{
		subcategories.GET("", c.Category.ListSubcategories)
		subcategories.GET("/:id", c.Category.GetSubcategory)
		subcategories.POST("", auth, admin, c.Category.CreateSubcategory)
		subcategories.PUT("/:id", auth, admin, c.Category.UpdateSubcategory)
		subcategories.DELETE("/:id", auth, admin, c.Category.DeleteSubcategory)
	}

	products := r.Group("/products")
	{
		products.GET("", c.Product.ListProducts)
		products.GET("/deals", c.Product.ListDeals)
		products.GET("/banners", c.Product.ListBanners)
		products.GET("/subcategory/:id", c.Product.ListBySubcategory)
		products.GET("/:id", c.Product.GetProduct)
		products.GET("/:id/banner", c.Product.GetBanner)
		products.POST("", auth, admin, c.Product.CreateProduct)
		products.PUT("/:id", auth, admin, c.Product.UpdateProduct)
		products.DELETE("/:id", auth, admin, c.Product.DeleteProduct)
		products.PUT("/:id/banner", auth, admin, c.Product.SetBanner)
		products.PUT("/:id/deal", auth, admin, c.Product.UpdateSpecialDeal)
	}

	cart := r.Group("/cart", auth)
	{
		cart.GET("", c.Cart.GetCart)
		cart.POST("", c.Cart.AddToCart)
		cart.PUT("", c.Cart.UpdateCartItem)
		cart.DELETE("/clear", c.Cart.ClearCart)
		cart.DELETE("/:productId", c.Cart.RemoveFromCart)
	}

	wishlist := r.Group("/wishlist", auth)
	{
		wishlist.GET("", c.Wishlist.GetWishlist)
		wishlist.POST("", c.Wishlist.AddToWishlist)
		wishlist.DELETE("/:productId", c.Wishlist.RemoveFromWishlist)
	}

	orders := r.Group("/orders", auth)
	{
		orders.POST("", c.Order.Checkout)
		// my-orders registers before :id so the literal path wins.
		orders.GET("/my-orders", c.Order.MyOrders)
		orders.GET("", admin, c.Order.ListAllOrders)
		orders.GET("/:id", c.Order.GetOrder)
		orders.PUT("/:id/cancel", c.Order.CancelOrder)
		orders.PUT("/:id/status", admin, c.Order.UpdateOrderStatus)
	}

	newsletters := r.Group("/newsletters")
	{
		newsletters.GET("", c.Newsletter.ListActive)
		newsletters.GET("/:id", c.Newsletter.Get)
		newsletters.POST("", auth, admin, c.Newsletter.Create)
		newsletters.PUT("/:id", auth, admin, c.Newsletter.Update)
		newsletters.DELETE("/:id", auth, admin, c.Newsletter.Delete)
	}
}
