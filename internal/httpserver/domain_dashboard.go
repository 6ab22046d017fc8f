package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dashboardHTTP "student-dashboard/internal/dashboard/delivery/http"
	"student-dashboard/internal/middleware"
)

// setupDashboardDomain builds the dashboard handler and registers its routes.
// The use case is built by the caller, which also owns its background work.
func (srv HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := dashboardHTTP.New(srv.l, srv.dashboardUC)
	dashboardHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Dashboard routes registered under %s", api.BasePath())
	return nil
}
