package router

import (
	"net/http"
	"time"

	middleware2 "team-service/pkg/middleware"

	"team-service/internal/handler"
	"team-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	teamHandler *handler.TeamHandler,
	memberHandler *handler.MemberHandler,
	inviteHandler *handler.InviteHandler,
	activityHandler *handler.ActivityHandler,
	healthHandler *handler.HealthHandler,
	authService middleware.AuthService,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(15 * time.Second))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Public endpoints
	r.Head("/health", healthHandler.Health)
	r.Get("/health", healthHandler.Health)
	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/login", authHandler.Login)

	// Protected endpoints (require JWT authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))

		r.Get("/auth/profile", authHandler.GetProfile)
		r.Put("/auth/profile", authHandler.UpdateProfile)

		r.Post("/teams", teamHandler.CreateTeam)
		r.Get("/teams/my-teams", teamHandler.GetMyTeams)
		r.Post("/teams/invite/accept", inviteHandler.AcceptInvite)

		r.Route("/teams/{id}", func(r chi.Router) {
			r.Get("/", teamHandler.GetTeam)
			r.Put("/", teamHandler.RenameTeam)
			r.Delete("/", teamHandler.DeleteTeam)

			r.Post("/invite", inviteHandler.InviteMember)
			r.Get("/members", memberHandler.ListMembers)
			r.Delete("/members/{userId}", memberHandler.KickMember)
			r.Post("/leave", memberHandler.LeaveTeam)
			r.Put("/role", memberHandler.ChangeRole)
			r.Get("/activities", activityHandler.ListActivities)
		})
	})

	return r
}
