package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/campaign-studio/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepo struct {
	pool *pgxpool.Pool
}

func NewSessionRepo(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

func (r *SessionRepo) Create(ctx context.Context, s *models.WorkflowSession) error {
	targeting, err := json.Marshal(s.Targeting)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO workflow_sessions
			(id, campaign_type, status, step, objective, targeting, ad_account_id, access_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, s.ID, s.CampaignType, s.Status, s.Step, s.Objective, targeting,
		s.Credentials.AdAccountID, s.Credentials.AccessToken,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *SessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkflowSession, error) {
	var (
		s         models.WorkflowSession
		targeting []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_type, status, step,
		       campaign_id, adset_id, creative_id, ad_id,
		       objective, optimization_goal, destination_type, cta,
		       targeting, ad_account_id, access_token, created_at, updated_at
		FROM workflow_sessions WHERE id = $1
	`, id).Scan(&s.ID, &s.CampaignType, &s.Status, &s.Step,
		&s.CampaignID, &s.AdSetID, &s.CreativeID, &s.AdID,
		&s.Objective, &s.OptimizationGoal, &s.DestinationType, &s.CTA,
		&targeting, &s.Credentials.AdAccountID, &s.Credentials.AccessToken,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(targeting) > 0 {
		if err := json.Unmarshal(targeting, &s.Targeting); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (r *SessionRepo) Update(ctx context.Context, s *models.WorkflowSession) error {
	targeting, err := json.Marshal(s.Targeting)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE workflow_sessions SET
			status = $1, step = $2,
			campaign_id = $3, adset_id = $4, creative_id = $5, ad_id = $6,
			optimization_goal = $7, destination_type = $8, cta = $9,
			targeting = $10, access_token = $11, updated_at = now()
		WHERE id = $12
	`, s.Status, s.Step,
		s.CampaignID, s.AdSetID, s.CreativeID, s.AdID,
		s.OptimizationGoal, s.DestinationType, s.CTA,
		targeting, s.Credentials.AccessToken, s.ID)
	return err
}

// ExpireStale marks active sessions untouched for longer than ttl as
// expired and returns their ids. Remote resources are left alone.
func (r *SessionRepo) ExpireStale(ctx context.Context, ttl time.Duration) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE workflow_sessions
		SET status = $1, access_token = '', updated_at = now()
		WHERE status = $2 AND updated_at < now() - $3::interval
		RETURNING id
	`, models.SessionStatusExpired, models.SessionStatusActive, ttl.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
