package responses

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"diagnostics-backend/internal/diagnostic"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateResponse inserts a completed response with its answers as JSONB.
func (r *PGRepo) CreateResponse(ctx context.Context, response Response) error {
	const query = `
INSERT INTO responses (id, session_id, tool_name, user_name, user_email, answers, score, completed_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	answers, err := json.Marshal(response.Answers)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		response.ID,
		response.SessionID,
		response.ToolName,
		nullString(response.UserName),
		nullString(response.UserEmail),
		answers,
		response.Score,
		response.CompletedAt,
		response.CreatedAt,
	)
	return err
}

// ListResponses returns all recorded responses ordered by creation time.
func (r *PGRepo) ListResponses(ctx context.Context) ([]Response, error) {
	const query = `
SELECT id, session_id, tool_name, user_name, user_email, answers, score, completed_at, created_at
FROM responses
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Response
	for rows.Next() {
		var (
			response  Response
			userName  sql.NullString
			userEmail sql.NullString
			answers   []byte
		)
		if err := rows.Scan(
			&response.ID,
			&response.SessionID,
			&response.ToolName,
			&userName,
			&userEmail,
			&answers,
			&response.Score,
			&response.CompletedAt,
			&response.CreatedAt,
		); err != nil {
			return nil, err
		}
		response.UserName = userName.String
		response.UserEmail = userEmail.String
		if len(answers) > 0 {
			if err := json.Unmarshal(answers, &response.Answers); err != nil {
				response.Answers = []diagnostic.Answer{}
			}
		}
		out = append(out, response)
	}
	return out, rows.Err()
}

// CreateSession records a session start.
func (r *PGRepo) CreateSession(ctx context.Context, session SessionRecord) error {
	const query = `
INSERT INTO diagnostic_sessions (id, tool_name, started_at, completed)
VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, session.ID, session.ToolName, session.StartedAt, session.Completed)
	return err
}

// MarkSessionCompleted flags a session as finished.
func (r *PGRepo) MarkSessionCompleted(ctx context.Context, sessionID string) error {
	const query = `
UPDATE diagnostic_sessions SET completed = TRUE, abandoned_at = NULL WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, sessionID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// MarkSessionAbandoned timestamps an incomplete session.
func (r *PGRepo) MarkSessionAbandoned(ctx context.Context, sessionID string, at time.Time) error {
	const query = `
UPDATE diagnostic_sessions SET abandoned_at = $2 WHERE id = $1 AND completed = FALSE`
	_, err := r.DB.ExecContext(ctx, query, sessionID, at)
	return err
}

// ListSessions returns all session records ordered by start time.
func (r *PGRepo) ListSessions(ctx context.Context) ([]SessionRecord, error) {
	const query = `
SELECT id, tool_name, started_at, completed, abandoned_at
FROM diagnostic_sessions
ORDER BY started_at ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			session     SessionRecord
			abandonedAt sql.NullTime
		)
		if err := rows.Scan(&session.ID, &session.ToolName, &session.StartedAt, &session.Completed, &abandonedAt); err != nil {
			return nil, err
		}
		if abandonedAt.Valid {
			at := abandonedAt.Time
			session.AbandonedAt = &at
		}
		out = append(out, session)
	}
	return out, rows.Err()
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
