package prompts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/pkg/pagination"
	"github.com/meridian-legal/counsel/pkg/query"
	"github.com/meridian-legal/counsel/pkg/repository"
)

const versionColumns = "id, version_id, task, content, source_example_count, active, created_at"

type repo struct {
	db           *sql.DB
	corpus       TrainingSource
	logger       *slog.Logger
	pagination   pagination.Config
	fewShotCap   int
	templatesDir string
}

// New creates a prompt version repository implementing the System interface.
func New(
	db *sql.DB,
	corpus TrainingSource,
	logger *slog.Logger,
	pagination pagination.Config,
	fewShotCap int,
	templatesDir string,
) System {
	if fewShotCap < 1 {
		fewShotCap = DefaultFewShotCap
	}

	return &repo{
		db:           db,
		corpus:       corpus,
		logger:       logger.With("system", "prompts"),
		pagination:   pagination,
		fewShotCap:   fewShotCap,
		templatesDir: templatesDir,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination, r.templatesDir)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Version], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "VersionID")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count prompt versions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	versions, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanVersion)
	if err != nil {
		return nil, fmt.Errorf("query prompt versions: %w", err)
	}

	result := pagination.NewPageResult(versions, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Version, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	v, err := repository.QueryOne(ctx, r.db, q, args, scanVersion)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &v, nil
}

func (r *repo) FindActive(ctx context.Context, task classify.Task) (*Version, error) {
	q := fmt.Sprintf(
		"SELECT %s FROM public.prompt_versions WHERE task = $1 AND active = true",
		versionColumns,
	)

	v, err := repository.QueryOne(ctx, r.db, q, []any{task}, scanVersion)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &v, nil
}

func (r *repo) create(ctx context.Context, v Version) (*Version, error) {
	q := fmt.Sprintf(`
		INSERT INTO prompt_versions(version_id, task, content, source_example_count, active)
		VALUES ($1, $2, $3, $4, false)
		RETURNING %s`, versionColumns)

	args := []any{v.VersionID, v.Task, v.Content, v.SourceExampleCount}

	created, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Version, error) {
		return repository.QueryOne(ctx, tx, q, args, scanVersion)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"prompt version created",
		"id", created.ID,
		"version", created.VersionID,
		"task", created.Task,
	)
	return &created, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM prompt_versions WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prompt version deleted", "id", id)
	return nil
}

func (r *repo) Activate(ctx context.Context, id uuid.UUID) (*Version, error) {
	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Version, error) {
		findQ, findArgs := query.NewBuilder(projection).BuildSingle("ID", id)
		target, err := repository.QueryOne(ctx, tx, findQ, findArgs, scanVersion)
		if err != nil {
			return Version{}, err
		}

		_, err = tx.ExecContext(
			ctx,
			"UPDATE prompt_versions SET active = false WHERE task = $1 AND active = true",
			target.Task,
		)
		if err != nil {
			return Version{}, fmt.Errorf("deactivate current: %w", err)
		}

		activateQ := fmt.Sprintf(`
			UPDATE prompt_versions SET active = true
			WHERE id = $1
			RETURNING %s`, versionColumns)

		return repository.QueryOne(ctx, tx, activateQ, []any{id}, scanVersion)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prompt version activated", "id", v.ID, "version", v.VersionID, "task", v.Task)
	return &v, nil
}

func (r *repo) Deactivate(ctx context.Context, id uuid.UUID) (*Version, error) {
	q := fmt.Sprintf(`
		UPDATE prompt_versions SET active = false
		WHERE id = $1
		RETURNING %s`, versionColumns)

	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Version, error) {
		return repository.QueryOne(ctx, tx, q, []any{id}, scanVersion)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prompt version deactivated", "id", v.ID, "version", v.VersionID, "task", v.Task)
	return &v, nil
}

func (r *repo) Template(ctx context.Context, task classify.Task) (string, error) {
	active, err := r.FindActive(ctx, task)
	if err == nil {
		return active.Content, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	return DefaultTemplate(task)
}
