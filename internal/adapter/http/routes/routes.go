package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "crewlo/docs"
	request "crewlo/internal/adapter/http/dto/request"
	"crewlo/internal/adapter/http/handlers"
	"crewlo/internal/adapter/persistence/repository"
	"crewlo/internal/config"
	"crewlo/internal/infrastructure/database"
	"crewlo/internal/infrastructure/logging"
	"crewlo/internal/infrastructure/metrics"
	"crewlo/internal/usecase"
	"crewlo/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Record kinds; each one is stored in its own "<namespace>_<kind>" table.
const (
	KindProjects  = "projects"
	KindLeads     = "leads"
	KindMaterials = "materials"
	KindEstimates = "estimates"
	KindProposals = "proposals"
)

var kinds = []string{KindProjects, KindLeads, KindMaterials, KindEstimates, KindProposals}

// Run connects to storage, serves HTTP until SIGINT/SIGTERM and then drains
// in-flight requests for at most cfg.ShutdownTimeout.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	engine, err := NewEngine(ctx, cfg, ddb)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", srv.Addr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewEngine wires repositories, use cases and handlers on top of ddb and
// returns the ready to serve router. Tables are created first when
// cfg.DynamoDB.AutoCreateTables is set.
func NewEngine(ctx context.Context, cfg config.Config, ddb database.DynamoDBAPI) (*gin.Engine, error) {
	request.RegisterValidators()

	tableNames := make([]string, 0, len(kinds))
	for _, k := range kinds {
		tableNames = append(tableNames, cfg.DynamoDB.TableName(k))
	}
	if cfg.DynamoDB.AutoCreateTables {
		if err := database.EnsureTables(ctx, ddb, tableNames...); err != nil {
			return nil, fmt.Errorf("ensure tables: %w", err)
		}
	}

	projectRepo := repository.NewProjectDynamoRepository(ddb, cfg.DynamoDB.TableName(KindProjects))
	leadRepo := repository.NewLeadDynamoRepository(ddb, cfg.DynamoDB.TableName(KindLeads))
	materialRepo := repository.NewMaterialDynamoRepository(ddb, cfg.DynamoDB.TableName(KindMaterials))
	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.DynamoDB.TableName(KindEstimates))
	proposalRepo := repository.NewProposalDynamoRepository(ddb, cfg.DynamoDB.TableName(KindProposals))

	h := apiHandlers{
		projects:  handlers.NewProjectHandler(usecase.NewProjectUseCase(projectRepo)),
		leads:     handlers.NewLeadHandler(usecase.NewLeadUseCase(leadRepo)),
		materials: handlers.NewMaterialHandler(usecase.NewMaterialUseCase(materialRepo)),
		estimates: handlers.NewEstimateHandler(usecase.NewEstimateUseCase(estimateRepo)),
		proposals: handlers.NewProposalHandler(usecase.NewProposalUseCase(proposalRepo)),
		dashboard: handlers.NewDashboardHandler(usecase.NewDashboardUseCase(projectRepo, leadRepo, materialRepo, estimateRepo, proposalRepo)),
	}

	router := gin.New()
	setMiddlewares(router)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, pkg.NewDomainErrorSimple("NOT_FOUND", "Not Found", http.StatusNotFound).ToHTTPError())
	})

	api := router.Group("/api")
	addAPIRoutes(api, h)

	return router, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(logging.RequestLogger())
	router.Use(metrics.Instrument())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.FromContext(c).WithField("panic", recovered).Error("recovered from panic")
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
	router.Use(allowRequestedHeaders, cors.New(corsConfig()))
}

// corsConfig reflects any origin back so that credentialed requests work;
// a literal "*" is not allowed together with credentials. AllowHeaders stays
// empty so the value set by allowRequestedHeaders is not replaced.
func corsConfig() cors.Config {
	return cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		ExposeHeaders:    []string{logging.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// allowRequestedHeaders answers a preflight with exactly the headers the
// browser asked for, which is how any header is allowed alongside credentials.
func allowRequestedHeaders(c *gin.Context) {
	if c.Request.Method != http.MethodOptions || c.GetHeader("Origin") == "" {
		return
	}
	if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
		c.Header("Access-Control-Allow-Headers", requested)
	}
}
