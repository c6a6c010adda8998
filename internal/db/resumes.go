package db

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/types"
)

const resumeColumns = `id, resume_id, resume_title, candidate_name, job_title, address, phone,
	email, linkedin, github, summary, education, experience, projects, skills,
	theme_color, created_at, updated_at, published_at`

// CreateResume stores a new resume. Writes are published immediately:
// published_at is set on every create and update, so readers always see
// the latest write.
func (db *DB) CreateResume(ctx context.Context, doc types.ResumeDocument) (*types.ResumeRecord, error) {
	doc.Normalize()

	education, experience, projects, err := marshalLists(doc)
	if err != nil {
		return nil, err
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO user_resumes (resume_id, resume_title, candidate_name, job_title,
			address, phone, email, linkedin, github, summary, education, experience,
			projects, skills, theme_color, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		 RETURNING `+resumeColumns,
		doc.ResumeID, doc.ResumeTitle, doc.CandidateName, doc.JobTitle,
		doc.Address, doc.Phone, doc.Email, doc.Linkedin, doc.Github, doc.Summary,
		education, experience, projects, doc.Skills, string(doc.ThemeColor),
	)
	rec, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return rec, nil
}

// ListResumesByOwnerEmail returns every resume owned by the email,
// newest first.
func (db *DB) ListResumesByOwnerEmail(ctx context.Context, email string) ([]types.ResumeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+` FROM user_resumes WHERE email = $1 ORDER BY created_at DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []types.ResumeRecord
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// FetchResumeByPublicID returns the resume keyed by its public
// identifier, or nil when no match exists.
func (db *DB) FetchResumeByPublicID(ctx context.Context, resumeID string) (*types.ResumeRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM user_resumes WHERE resume_id = $1`, resumeID)
	rec, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume %s: %w", resumeID, err)
	}
	return rec, nil
}

// FetchResumeByInternalID returns the resume keyed by its internal
// storage identifier, or nil when no match exists.
func (db *DB) FetchResumeByInternalID(ctx context.Context, id uuid.UUID) (*types.ResumeRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM user_resumes WHERE id = $1`, id)
	rec, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}
	return rec, nil
}

// UpdateResumeSlice merges exactly the patch's field set into the stored
// resume. The UPDATE touches only the columns present in the patch, so
// concurrent saves of different field sets never overwrite each other.
func (db *DB) UpdateResumeSlice(ctx context.Context, resumeID string, patch types.ResumePatch) (*types.ResumeRecord, error) {
	if patch.IsEmpty() {
		return nil, gateway.BadRequest("update payload carries no fields")
	}
	if err := patch.ValidateProjects(); err != nil {
		return nil, gateway.BadRequest(err.Error())
	}

	assignments, args, err := patchAssignments(patch)
	if err != nil {
		return nil, err
	}

	query := `UPDATE user_resumes SET ` + assignments +
		fmt.Sprintf(`, updated_at = NOW(), published_at = NOW() WHERE resume_id = $%d RETURNING `, len(args)+1) +
		resumeColumns
	args = append(args, resumeID)

	rec, err := scanResume(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, gateway.NotFound(resumeID)
		}
		return nil, fmt.Errorf("failed to update resume %s: %w", resumeID, err)
	}
	return rec, nil
}

// DeleteResume removes the resume with the given internal id.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM user_resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &gateway.Error{StatusCode: http.StatusNotFound, Message: "no resume found for id: " + id.String()}
	}
	return nil
}

// patchAssignments builds the SET clause for the patch's field set only.
func patchAssignments(patch types.ResumePatch) (string, []any, error) {
	type column struct {
		name  string
		value any
	}
	var cols []column

	addString := func(name string, v *string) {
		if v != nil {
			cols = append(cols, column{name, *v})
		}
	}
	addString("resume_title", patch.ResumeTitle)
	addString("candidate_name", patch.CandidateName)
	addString("job_title", patch.JobTitle)
	addString("address", patch.Address)
	addString("phone", patch.Phone)
	addString("email", patch.Email)
	addString("linkedin", patch.Linkedin)
	addString("github", patch.Github)
	addString("summary", patch.Summary)
	addString("skills", patch.Skills)

	addList := func(name string, v any, present bool) error {
		if !present {
			return nil
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", name, err)
		}
		cols = append(cols, column{name, data})
		return nil
	}
	if err := addList("education", patch.Education, patch.Education != nil); err != nil {
		return "", nil, err
	}
	if err := addList("experience", patch.Experience, patch.Experience != nil); err != nil {
		return "", nil, err
	}
	if err := addList("projects", patch.Projects, patch.Projects != nil); err != nil {
		return "", nil, err
	}

	if patch.ThemeColor != nil {
		cols = append(cols, column{"theme_color", string(patch.ThemeColor.Normalize())})
	}

	assignments := ""
	args := make([]any, 0, len(cols))
	for i, c := range cols {
		if i > 0 {
			assignments += ", "
		}
		assignments += fmt.Sprintf("%s = $%d", c.name, i+1)
		args = append(args, c.value)
	}
	return assignments, args, nil
}

// marshalLists serializes the document's list sections for jsonb columns.
func marshalLists(doc types.ResumeDocument) ([]byte, []byte, []byte, error) {
	education, err := json.Marshal(doc.Education)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal education: %w", err)
	}
	experience, err := json.Marshal(doc.Experience)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal experience: %w", err)
	}
	projects, err := json.Marshal(doc.Projects)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal projects: %w", err)
	}
	return education, experience, projects, nil
}

// scanResume reads one resume row, unmarshalling the jsonb list columns
// and normalizing the theme color at the load boundary.
func scanResume(row pgx.Row) (*types.ResumeRecord, error) {
	var rec types.ResumeRecord
	var education, experience, projects []byte
	var theme string

	err := row.Scan(&rec.ID, &rec.ResumeID, &rec.ResumeTitle, &rec.CandidateName,
		&rec.JobTitle, &rec.Address, &rec.Phone, &rec.Email, &rec.Linkedin,
		&rec.Github, &rec.Summary, &education, &experience, &projects,
		&rec.Skills, &theme, &rec.CreatedAt, &rec.UpdatedAt, &rec.PublishedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(education, &rec.Education); err != nil {
		return nil, fmt.Errorf("failed to unmarshal education: %w", err)
	}
	if err := json.Unmarshal(experience, &rec.Experience); err != nil {
		return nil, fmt.Errorf("failed to unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(projects, &rec.Projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects: %w", err)
	}

	rec.ThemeColor = types.ThemeColor(theme)
	rec.ResumeDocument.Normalize()
	return &rec, nil
}
