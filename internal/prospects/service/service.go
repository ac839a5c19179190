// Package service orchestrates prospect discovery, research, scoring
// and persistence.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"prospect_backend/internal/events"
	"prospect_backend/internal/prospects/domain"
	"prospect_backend/internal/prospects/repository"
	"prospect_backend/platform/config"
	"prospect_backend/platform/logger"
)

const discoveryMethodAPI = "hunter_api"

// ContactFinder discovers employee contacts for a company.
type ContactFinder interface {
	FindContacts(ctx context.Context, company string) ([]domain.Contact, error)
}

// Researcher produces a research narrative for a company and its prospects.
type Researcher interface {
	ResearchCompany(ctx context.Context, company string, contacts []domain.Contact) (string, error)
}

// RescanScheduler enqueues a follow-up discovery run for a company.
type RescanScheduler interface {
	ScheduleCompanyRescan(ctx context.Context, company string) error
}

// SearchResult summarizes a completed discovery run.
type SearchResult struct {
	Company        string
	ContactsFound  int
	ProspectsSaved int
	Qualified      int
	DurationMs     int64
	Prospects      []repository.Prospect
}

// Service implements the prospect workflow.
type Service struct {
	repo      repository.Repository
	finder    ContactFinder
	research  Researcher
	scheduler RescanScheduler
	engine    *domain.Engine
	bus       events.Bus
	cfg       config.ProspectsConfig
	log       *logger.Logger
}

// New creates a prospects service. The scheduler may be nil when no
// task queue is configured; rescans are then skipped.
func New(
	repo repository.Repository,
	finder ContactFinder,
	research Researcher,
	scheduler RescanScheduler,
	engine *domain.Engine,
	bus events.Bus,
	cfg config.ProspectsConfig,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:      repo,
		finder:    finder,
		research:  research,
		scheduler: scheduler,
		engine:    engine,
		bus:       bus,
		cfg:       cfg,
		log:       log,
	}
}

// Search runs the full pipeline for a company: discover contacts,
// research the company, score each contact, and persist the results.
// A research failure degrades to scoring without company signals
// rather than aborting the run.
func (s *Service) Search(ctx context.Context, company string) (SearchResult, error) {
	started := time.Now()

	contacts, err := s.finder.FindContacts(ctx, company)
	if err != nil {
		return SearchResult{}, err
	}

	result := SearchResult{Company: company, ContactsFound: len(contacts)}
	if len(contacts) == 0 {
		s.log.Info("no contacts discovered", "company", company)
		result.DurationMs = time.Since(started).Milliseconds()
		return result, nil
	}

	researchText, err := s.research.ResearchCompany(ctx, company, contacts)
	if err != nil {
		s.log.Warn("company research failed, scoring without signals", "company", company, "error", err)
		researchText = ""
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.GetSearchConcurrency())

	for _, contact := range contacts {
		g.Go(func() error {
			prospect, ok := s.engine.EvaluateProspect(contact, researchText)
			if !ok {
				return nil
			}

			saved, err := s.repo.Insert(gctx, insertParamsFor(contact, prospect, s.engine.Version()))
			if err != nil {
				s.log.DatabaseError("insert prospect", err)
				return nil
			}

			s.log.ProspectEvent("prospect saved", company, contact.FullName, prospect.EquityScore)

			mu.Lock()
			result.ProspectsSaved++
			if prospect.Qualified {
				result.Qualified++
			}
			result.Prospects = append(result.Prospects, saved)
			mu.Unlock()

			if prospect.Qualified {
				s.bus.Publish(gctx, events.ProspectQualified{
					BaseEvent:       events.NewBaseEvent(),
					ProspectID:      saved.ID,
					Company:         company,
					FullName:        contact.FullName,
					RoleTitle:       contact.JobTitle,
					EquityScore:     prospect.EquityScore,
					ConfidenceScore: prospect.ConfidenceScore,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SearchResult{}, err
	}

	result.DurationMs = time.Since(started).Milliseconds()

	s.bus.Publish(ctx, events.ProspectBatchCompleted{
		BaseEvent:      events.NewBaseEvent(),
		Company:        company,
		ContactsFound:  result.ContactsFound,
		ProspectsSaved: result.ProspectsSaved,
		DurationMs:     result.DurationMs,
	})

	if s.scheduler != nil {
		if err := s.scheduler.ScheduleCompanyRescan(ctx, company); err != nil {
			s.log.Warn("failed to schedule rescan", "company", company, "error", err)
		} else {
			s.bus.Publish(ctx, events.CompanyRescanScheduled{
				BaseEvent: events.NewBaseEvent(),
				Company:   company,
			})
		}
	}

	return result, nil
}

// List returns stored prospects, optionally filtered by company.
func (s *Service) List(ctx context.Context, company string) ([]repository.Prospect, error) {
	return s.repo.List(ctx, company)
}

// Get returns a stored prospect by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.Prospect, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a stored prospect by ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Status aggregates the stored pipeline by qualification status.
func (s *Service) Status(ctx context.Context) (repository.StatusCounts, error) {
	return s.repo.CountByStatus(ctx)
}

func insertParamsFor(contact domain.Contact, p *domain.ScoredProspect, engineVersion string) repository.InsertParams {
	var email, linkedin *string
	if contact.Email != "" {
		email = &contact.Email
	}
	if contact.LinkedInURL != "" {
		linkedin = &contact.LinkedInURL
	}

	return repository.InsertParams{
		FullName:             contact.FullName,
		RoleTitle:            contact.JobTitle,
		CompanyName:          contact.Company,
		Email:                email,
		LinkedInURL:          linkedin,
		ProspectType:         "seller",
		PriorityScore:        p.EquityScore,
		ConfidenceLevel:      p.ConfidenceScore,
		QualificationStatus:  p.QualificationStatus(),
		DiscoveryMethod:      discoveryMethodAPI,
		JobSeniority:         p.Intelligence.JobSeniority,
		EstimatedTenure:      p.Intelligence.EstimatedTenure,
		EmploymentStatus:     p.Intelligence.EmploymentStatus,
		EstimatedEquityValue: p.Intelligence.EstimatedEquityValue,
		PreferredChannel:     p.Intelligence.PreferredChannel,
		LiquiditySignals:     p.Intelligence.LiquiditySignals,
		EquityLikelihood:     p.Intelligence.EquityLikelihood,
		LiquidityScore:       p.Intelligence.LiquidityScore,
		OutreachStrategy:     p.Intelligence.OutreachStrategy,
		SalesSummary:         p.Intelligence.SalesSummary,
		OutreachAngle:        p.Intelligence.OutreachAngle,
		ResearchNotes: repository.ResearchNotes{
			CompanyStage:  string(p.Signals.Stage),
			Valuation:     p.Signals.ValuationLabel,
			IPOStatus:     p.Signals.IPOStatus,
			LastFunding:   p.Signals.LastFunding,
			FundingDate:   p.Signals.FundingDate,
			GrowthRate:    p.Signals.GrowthRate,
			EmployeeCount: p.Signals.EmployeeCount,
		},
		EngineVersion: engineVersion,
	}
}
