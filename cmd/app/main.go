package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tuliptour/cmd/fx/account_fx"
	"tuliptour/cmd/fx/analytics_fx"
	"tuliptour/cmd/fx/blog_fx"
	"tuliptour/cmd/fx/booking_fx"
	"tuliptour/cmd/fx/db_fx"
	"tuliptour/cmd/fx/family_fx"
	"tuliptour/cmd/fx/mail_fx"
	"tuliptour/cmd/fx/message_fx"
	"tuliptour/cmd/fx/package_fx"
	"tuliptour/internal/api/controllers"
	"tuliptour/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		package_fx.Module,
		booking_fx.Module,
		blog_fx.Module,
		message_fx.Module,
		family_fx.Module,
		analytics_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	packageController *controllers.PackageController,
	bookingController *controllers.BookingController,
	blogController *controllers.BlogController,
	messageController *controllers.MessageController,
	familyController *controllers.FamilyController,
	analyticsController *controllers.AnalyticsController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		packageController,
		bookingController,
		blogController,
		messageController,
		familyController,
		analyticsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	packageController *controllers.PackageController,
	bookingController *controllers.BookingController,
	blogController *controllers.BlogController,
	messageController *controllers.MessageController,
	familyController *controllers.FamilyController,
	analyticsController *controllers.AnalyticsController) {

	adminOnly := []gin.HandlerFunc{
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware("admin"),
	}

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	resources := r.Group("/resources")

	resources.GET("/packages", packageController.ListPackages)
	resources.POST("/packages", append(adminOnly, packageController.CreatePackage)...)

	resources.GET("/bookings", bookingController.ListBookings)
	resources.POST("/bookings", bookingController.CreateBooking)

	resources.GET("/blogs", blogController.ListBlogs)
	resources.GET("/blogs/:id", blogController.GetBlog)
	resources.POST("/blogs", append(adminOnly, blogController.CreateBlog)...)
	resources.PUT("/blogs/:id", append(adminOnly, blogController.UpdateBlog)...)
	resources.DELETE("/blogs/:id", append(adminOnly, blogController.DeleteBlog)...)

	resources.GET("/messages", append(adminOnly, messageController.ListMessages)...)
	resources.GET("/messages/:email", messageController.ListMessagesByEmail)
	resources.POST("/messages", messageController.CreateMessage)
	resources.POST("/messages/update/:id", append(adminOnly, messageController.ReplyMessage)...)
	resources.POST("/messages/read/:id", messageController.MarkMessageRead)

	resources.GET("/family", familyController.ListFamilies)
	resources.GET("/family/:userId", familyController.GetFamily)
	resources.POST("/family", familyController.SaveFamily)

	resources.GET("/analytics/dashboard", append(adminOnly, analyticsController.GetDashboard)...)

	resources.GET("/user/:userId", accountController.GetUserEmail)
}
