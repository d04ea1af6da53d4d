package errand

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/claim"
	errandservice "service/internal/service/errand"
	"service/internal/service/tracking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const errandColumns = `id, status, requester_id, runner_id,
		pickup_address, pickup_lat, pickup_lon,
		dropoff_address, dropoff_lat, dropoff_lon,
		transaction_code, price_estimate, distance_km, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, errandModify entities.ErrandModify) (*entities.Errand, error) {
	errandModifyDB := FromDomainModify(&errandModify)

	query := `
		INSERT INTO errands (id, status, requester_id,
			pickup_address, pickup_lat, pickup_lon,
			dropoff_address, dropoff_lat, dropoff_lon,
			transaction_code, price_estimate, distance_km)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + errandColumns

	var errandDB ErrandDB
	err := r.querier.QueryRow(
		ctx,
		query,
		errandModifyDB.ID,
		errandModifyDB.Status,
		errandModifyDB.RequesterID,
		errandModifyDB.PickupAddress,
		errandModifyDB.PickupLat,
		errandModifyDB.PickupLon,
		errandModifyDB.DropoffAddress,
		errandModifyDB.DropoffLat,
		errandModifyDB.DropoffLon,
		errandModifyDB.TransactionCode,
		errandModifyDB.PriceEstimate,
		errandModifyDB.DistanceKm,
	).Scan(scanTargets(&errandDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			// Partial unique index on transaction_code over
			// non-terminal errands.
			return nil, errandservice.ErrCodeConflict
		}
		return nil, fmt.Errorf("unexpected errand repository create error: %w", err)
	}

	return ToDomain(&errandDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Errand, error) {
	query := `
		SELECT ` + errandColumns + `
		FROM errands
		WHERE id = $1`

	var errandDB ErrandDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&errandDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errandservice.ErrErrandNotFound
		}
		return nil, fmt.Errorf("unexpected errand repository getbyid error: %w", err)
	}

	return ToDomain(&errandDB), nil
}

func (r *Repository) GetByTransactionCode(ctx context.Context, code string) (*entities.Errand, error) {
	query := `
		SELECT ` + errandColumns + `
		FROM errands
		WHERE transaction_code = $1
		  AND status NOT IN ('completed', 'cancelled')`

	var errandDB ErrandDB
	err := r.querier.QueryRow(ctx, query, code).Scan(scanTargets(&errandDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, claim.ErrCodeNotFound
		}
		return nil, fmt.Errorf("unexpected errand repository get by code error: %w", err)
	}

	return ToDomain(&errandDB), nil
}

func (r *Repository) CodeInUse(ctx context.Context, code string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM errands
			WHERE transaction_code = $1
			  AND status NOT IN ('completed', 'cancelled')
		)`

	var inUse bool
	err := r.querier.QueryRow(ctx, query, code).Scan(&inUse)
	if err != nil {
		return false, fmt.Errorf("unexpected errand repository code check error: %w", err)
	}

	return inUse, nil
}

// CompareAndSetRunner is the first-claim-wins write: it assigns the
// runner only while the errand is still pending and unassigned. Zero
// affected rows means a concurrent claim or cancel landed first.
func (r *Repository) CompareAndSetRunner(ctx context.Context, id, runnerID string) (*entities.Errand, error) {
	query := `
		UPDATE errands
		SET runner_id = $2,
		    status = 'accepted',
		    updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending'
		  AND runner_id IS NULL
		RETURNING ` + errandColumns

	var errandDB ErrandDB
	err := r.querier.QueryRow(ctx, query, id, runnerID).Scan(scanTargets(&errandDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, claim.ErrAlreadyClaimed
		}
		return nil, fmt.Errorf("unexpected errand repository claim error: %w", err)
	}

	return ToDomain(&errandDB), nil
}

// UpdateStatus writes newStatus only while the stored status still equals
// expectedStatus, resolving races between concurrent actors.
func (r *Repository) UpdateStatus(ctx context.Context, id string, expectedStatus, newStatus entities.ErrandStatusType) (*entities.Errand, error) {
	query := `
		UPDATE errands
		SET status = $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND status = $2
		RETURNING ` + errandColumns

	var errandDB ErrandDB
	err := r.querier.QueryRow(ctx, query, id, expectedStatus.String(), newStatus.String()).
		Scan(scanTargets(&errandDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errandservice.ErrStatusConflict
		}
		return nil, fmt.Errorf("unexpected errand repository update status error: %w", err)
	}

	return ToDomain(&errandDB), nil
}

func (r *Repository) ListByRole(
	ctx context.Context,
	actorID string,
	role entities.ActorRoleType,
	statusFilter []entities.ErrandStatusType,
) ([]entities.Errand, error) {
	builder := qb.
		Select("id", "status", "requester_id", "runner_id",
			"pickup_address", "pickup_lat", "pickup_lon",
			"dropoff_address", "dropoff_lat", "dropoff_lon",
			"transaction_code", "price_estimate", "distance_km", "created_at", "updated_at").
		From("errands")

	switch role {
	case entities.RoleRequester:
		builder = builder.Where(sq.Eq{"requester_id": actorID})
	case entities.RoleRunner:
		builder = builder.Where(sq.Eq{"runner_id": actorID})
	default:
		return nil, errandservice.ErrInvalidRole
	}

	if len(statusFilter) > 0 {
		statuses := make([]string, 0, len(statusFilter))
		for _, status := range statusFilter {
			statuses = append(statuses, status.String())
		}
		builder = builder.Where(sq.Eq{"status": statuses})
	}

	builder = builder.OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected errand repository list query error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected errand repository list error: %w", err)
	}
	defer rows.Close()

	var errands []entities.Errand
	for rows.Next() {
		var errandDB ErrandDB
		if err := rows.Scan(scanTargets(&errandDB)...); err != nil {
			return nil, fmt.Errorf("unexpected errand repository list scan error: %w", err)
		}
		errands = append(errands, *ToDomain(&errandDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected errand repository list rows error: %w", err)
	}

	return errands, nil
}

func (r *Repository) ActiveByRunner(ctx context.Context, runnerID string) (*entities.Errand, error) {
	query := `
		SELECT ` + errandColumns + `
		FROM errands
		WHERE runner_id = $1
		  AND status NOT IN ('completed', 'cancelled')
		ORDER BY updated_at DESC
		LIMIT 1`

	var errandDB ErrandDB
	err := r.querier.QueryRow(ctx, query, runnerID).Scan(scanTargets(&errandDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrNoActiveErrand
		}
		return nil, fmt.Errorf("unexpected errand repository active by runner error: %w", err)
	}

	return ToDomain(&errandDB), nil
}

func scanTargets(e *ErrandDB) []interface{} {
	return []interface{}{
		&e.ID,
		&e.Status,
		&e.RequesterID,
		&e.RunnerID,
		&e.PickupAddress,
		&e.PickupLat,
		&e.PickupLon,
		&e.DropoffAddress,
		&e.DropoffLat,
		&e.DropoffLon,
		&e.TransactionCode,
		&e.PriceEstimate,
		&e.DistanceKm,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
}
