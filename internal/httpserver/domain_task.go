package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/middleware"
	taskHTTP "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/delivery/http"
	taskRepo "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository/postgre"
	taskUC "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := taskRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := taskUC.New(srv.l, repo, srv.classifier, srv.dateMath)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
