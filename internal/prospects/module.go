// Package prospects provides the equity prospect bounded context module.
// It discovers contacts at target companies, researches the company, and
// scores each contact as a potential secondary-market seller.
package prospects

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"prospect_backend/internal/events"
	apphttp "prospect_backend/internal/http"
	"prospect_backend/internal/prospects/domain"
	"prospect_backend/internal/prospects/handler"
	"prospect_backend/internal/prospects/repository"
	"prospect_backend/internal/prospects/service"
	"prospect_backend/platform/config"
	"prospect_backend/platform/logger"
	"prospect_backend/platform/validator"
)

// Module is the prospects bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
	log     *logger.Logger
}

// NewModule creates and initializes the prospects module with all its
// dependencies. The scheduler may be nil when no task queue is configured.
func NewModule(
	pool *pgxpool.Pool,
	finder service.ContactFinder,
	research service.Researcher,
	scheduler service.RescanScheduler,
	bus events.Bus,
	cfg config.ProspectsConfig,
	val *validator.Validator,
	log *logger.Logger,
) (*Module, error) {
	engine, err := domain.NewEngine()
	if err != nil {
		return nil, err
	}

	repo := repository.New(pool)
	svc := service.New(repo, finder, research, scheduler, engine, bus, cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
		log:     log,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "prospects"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts prospect routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/prospects")
	group.POST("/search", ctx.SearchRateLimiter.RateLimit(), m.handler.Search)
	group.GET("", m.handler.List)
	group.GET("/status", m.handler.Status)
	group.GET("/:id", m.handler.GetByID)
	group.DELETE("/:id", m.handler.Delete)
}

// RegisterHandlers subscribes to domain events for audit logging.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.ProspectQualified{}.EventName(), m)
	bus.Subscribe(events.ProspectBatchCompleted{}.EventName(), m)
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.ProspectQualified:
		m.log.ProspectEvent("prospect qualified", e.Company, e.FullName, e.EquityScore)
	case events.ProspectBatchCompleted:
		m.log.Info("prospect batch completed",
			"company", e.Company,
			"contacts_found", e.ContactsFound,
			"prospects_saved", e.ProspectsSaved,
			"duration_ms", e.DurationMs,
		)
	}
	return nil
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
