package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prospect_backend/platform/apperr"
)

const prospectNotFoundMessage = "prospect not found"

const prospectColumns = `
	id, full_name, role_title, company_name, email, linkedin_url,
	prospect_type, priority_score, confidence_level, qualification_status,
	discovery_method, job_seniority, estimated_tenure, employment_status,
	estimated_equity_value, preferred_channel, liquidity_signals,
	equity_likelihood, liquidity_score, outreach_strategy, sales_summary,
	outreach_angle, research_notes, engine_version, created_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new prospects repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Insert persists a scored prospect and returns the stored row.
func (r *Repo) Insert(ctx context.Context, params InsertParams) (Prospect, error) {
	notes, err := json.Marshal(params.ResearchNotes)
	if err != nil {
		return Prospect{}, fmt.Errorf("marshal research notes: %w", err)
	}

	query := `
		INSERT INTO prospects (
			full_name, role_title, company_name, email, linkedin_url,
			prospect_type, priority_score, confidence_level, qualification_status,
			discovery_method, job_seniority, estimated_tenure, employment_status,
			estimated_equity_value, preferred_channel, liquidity_signals,
			equity_likelihood, liquidity_score, outreach_strategy, sales_summary,
			outreach_angle, research_notes, engine_version
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		RETURNING ` + prospectColumns

	row := r.pool.QueryRow(ctx, query,
		params.FullName, params.RoleTitle, params.CompanyName, params.Email, params.LinkedInURL,
		params.ProspectType, params.PriorityScore, params.ConfidenceLevel, params.QualificationStatus,
		params.DiscoveryMethod, params.JobSeniority, params.EstimatedTenure, params.EmploymentStatus,
		params.EstimatedEquityValue, params.PreferredChannel, params.LiquiditySignals,
		params.EquityLikelihood, params.LiquidityScore, params.OutreachStrategy, params.SalesSummary,
		params.OutreachAngle, notes, params.EngineVersion,
	)

	p, err := scanProspect(row)
	if err != nil {
		return Prospect{}, fmt.Errorf("insert prospect: %w", err)
	}
	return p, nil
}

// GetByID retrieves a prospect by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Prospect, error) {
	query := `SELECT ` + prospectColumns + ` FROM prospects WHERE id = $1`

	p, err := scanProspect(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Prospect{}, apperr.NotFound(prospectNotFoundMessage)
		}
		return Prospect{}, fmt.Errorf("get prospect by id: %w", err)
	}
	return p, nil
}

// List retrieves prospects ordered by priority score, optionally
// filtered by company name.
func (r *Repo) List(ctx context.Context, company string) ([]Prospect, error) {
	query := `SELECT ` + prospectColumns + ` FROM prospects`
	args := []any{}
	if company != "" {
		query += ` WHERE lower(company_name) = lower($1)`
		args = append(args, company)
	}
	query += ` ORDER BY priority_score DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}
	defer rows.Close()

	prospects := []Prospect{}
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prospect: %w", err)
		}
		prospects = append(prospects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prospects: %w", err)
	}

	return prospects, nil
}

// CountByStatus aggregates stored prospects by qualification status.
func (r *Repo) CountByStatus(ctx context.Context) (StatusCounts, error) {
	query := `
		SELECT
			count(*),
			count(*) FILTER (WHERE qualification_status = 'qualified'),
			count(*) FILTER (WHERE qualification_status = 'needs research')
		FROM prospects`

	var counts StatusCounts
	err := r.pool.QueryRow(ctx, query).Scan(&counts.Total, &counts.Qualified, &counts.NeedsResearch)
	if err != nil {
		return StatusCounts{}, fmt.Errorf("count prospects: %w", err)
	}
	return counts, nil
}

// Delete removes a prospect by ID.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM prospects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prospect: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(prospectNotFoundMessage)
	}
	return nil
}

func scanProspect(row pgx.Row) (Prospect, error) {
	var p Prospect
	var notes []byte
	var createdAt time.Time

	err := row.Scan(
		&p.ID, &p.FullName, &p.RoleTitle, &p.CompanyName, &p.Email, &p.LinkedInURL,
		&p.ProspectType, &p.PriorityScore, &p.ConfidenceLevel, &p.QualificationStatus,
		&p.DiscoveryMethod, &p.JobSeniority, &p.EstimatedTenure, &p.EmploymentStatus,
		&p.EstimatedEquityValue, &p.PreferredChannel, &p.LiquiditySignals,
		&p.EquityLikelihood, &p.LiquidityScore, &p.OutreachStrategy, &p.SalesSummary,
		&p.OutreachAngle, &notes, &p.EngineVersion, &createdAt,
	)
	if err != nil {
		return Prospect{}, err
	}

	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &p.ResearchNotes); err != nil {
			return Prospect{}, fmt.Errorf("unmarshal research notes: %w", err)
		}
	}
	p.CreatedAt = createdAt.Format(time.RFC3339)

	return p, nil
}
