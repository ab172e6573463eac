// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"sellerhub/config"
	"sellerhub/internal/delivery/api/middleware"
	"sellerhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	SellerHandler   *handler.SellerHandler
	BusinessHandler *handler.BusinessHandler
	UserHandler     *handler.UserHandler
	MediaHandler    *handler.MediaHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	sellerHandler   *handler.SellerHandler
	businessHandler *handler.BusinessHandler
	userHandler     *handler.UserHandler
	mediaHandler    *handler.MediaHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		sellerHandler:   params.SellerHandler,
		businessHandler: params.BusinessHandler,
		userHandler:     params.UserHandler,
		mediaHandler:    params.MediaHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public authentication routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)
	e.POST("/token/refresh", r.authHandler.RefreshToken)

	// Stored uploads
	mediaBase := "/" + strings.Trim(r.config.Storage.MediaBasePath, "/")
	e.GET(mediaBase+"/*", r.mediaHandler.Serve)

	// Everything below requires a bearer access token
	authed := r.authMiddleware.Authenticate

	e.POST("/verify/otp", r.authHandler.VerifyOTP, authed)
	e.POST("/logout", r.authHandler.Logout, authed)
	e.GET("/home", r.userHandler.Home, authed)

	// Seller registration
	e.POST("/upload/gst-certificate", r.sellerHandler.UploadCertificate, authed)
	e.POST("/update/gst-details", r.sellerHandler.UpdateGSTDetails, authed)
	e.POST("/update/business-profile", r.businessHandler.UpdateProfile, authed)

	// Payment details
	e.POST("/create/bank-details", r.businessHandler.AddBankDetails, authed)

	// Retrieve data
	e.GET("/user-details", r.userHandler.GetUserDetails, authed)
	e.GET("/business-details", r.businessHandler.GetBusinessDetails, authed)
	e.GET("/seller-details", r.sellerHandler.GetSellerDetails, authed)
}
