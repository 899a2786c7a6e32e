package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/abhisek/oralexam/internal/exam"
	"github.com/abhisek/oralexam/internal/profile"
)

// SessionRepo stores finished exam transcripts.
type SessionRepo struct {
	db      *sql.DB
	dialect Dialect
}

// Append stores the transcript and all of its records in one transaction.
func (r *SessionRepo) Append(ctx context.Context, t exam.Transcript) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var total float64
	for _, rec := range t.Records {
		total += rec.Score
	}

	startedAt := t.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	_, err = tx.ExecContext(ctx, q(r.dialect, `INSERT INTO exam_sessions
		(id, student_name, student_key, domain, started_at, questions, total_score)
		VALUES (?, ?, ?, ?, ?, ?, ?)`),
		t.SessionID, t.StudentName, profile.SanitizeName(t.StudentName), t.Domain,
		startedAt.UTC(), len(t.Records), total)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, q(r.dialect, `INSERT INTO exam_records
		(session_id, position, question, student_answer, evaluation, feedback, score, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range t.Records {
		difficulty := ""
		if rec.Difficulty != nil {
			difficulty = rec.Difficulty.String()
		}
		if _, err := stmt.ExecContext(ctx, t.SessionID, i+1, rec.Question, rec.StudentAnswer,
			string(rec.Evaluation), rec.Feedback, rec.Score, difficulty); err != nil {
			return fmt.Errorf("insert record %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

// ListSessions returns sessions newest first. Students match by their
// profile key, so "ada lovelace" finds sessions of "Ada Lovelace". An
// empty student lists every student; limit <= 0 means no limit.
func (r *SessionRepo) ListSessions(ctx context.Context, student string, limit int) ([]SessionSummary, error) {
	query := `SELECT id, student_name, domain, started_at, questions, total_score FROM exam_sessions`
	var args []any
	if student != "" {
		query += " WHERE student_key = ?"
		args = append(args, profile.SanitizeName(student))
	}
	query += " ORDER BY started_at DESC, id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q(r.dialect, query), args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.ID, &s.StudentName, &s.Domain, &s.StartedAt, &s.Questions, &s.TotalScore); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SessionRecords returns the records of one session in question order.
func (r *SessionRepo) SessionRecords(ctx context.Context, sessionID string) ([]SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx, q(r.dialect, `SELECT position, question, student_answer,
		evaluation, feedback, score, difficulty
		FROM exam_records WHERE session_id = ? ORDER BY position`), sessionID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.Position, &rec.Question, &rec.StudentAnswer,
			&rec.Evaluation, &rec.Feedback, &rec.Score, &rec.Difficulty); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteStudent removes every stored session of a student, matched the
// same way as ListSessions, and returns how many sessions were removed.
func (r *SessionRepo) DeleteStudent(ctx context.Context, student string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	key := profile.SanitizeName(student)
	if _, err := tx.ExecContext(ctx, q(r.dialect, `DELETE FROM exam_records WHERE session_id IN
		(SELECT id FROM exam_sessions WHERE student_key = ?)`), key); err != nil {
		return 0, fmt.Errorf("delete records: %w", err)
	}
	res, err := tx.ExecContext(ctx, q(r.dialect, `DELETE FROM exam_sessions WHERE student_key = ?`), key)
	if err != nil {
		return 0, fmt.Errorf("delete sessions: %w", err)
	}
	n, _ := res.RowsAffected()
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit delete: %w", err)
	}
	return n, nil
}
