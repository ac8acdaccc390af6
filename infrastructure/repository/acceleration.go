package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/spendsphere-api/infrastructure/database/postgres"
	"github.com/vfg2006/spendsphere-api/internal/domain"
)

type AccelerationRepository interface {
	ListByPeriod(ctx context.Context, schema string, period domain.Period) ([]*domain.Acceleration, error)
}

type accelerationRepository struct {
	conn *postgres.Connection
}

func NewAccelerationRepository(conn *postgres.Connection) AccelerationRepository {
	return &accelerationRepository{
		conn: conn,
	}
}

// ListByPeriod busca os multiplicadores de aceleração do período
func (r *accelerationRepository) ListByPeriod(ctx context.Context, schema string, period domain.Period) ([]*domain.Acceleration, error) {
	accelerationsSQL, accelerationsArgs, err := squirrel.
		Select("ac.id, ac.scope, ac.account_code, ac.ad_type_code, ac.budget_id, ac.multiplier, ac.date_created, ac.date_updated").
		From(fmt.Sprintf("%s.accelerations ac", pq.QuoteIdentifier(schema))).
		Where(squirrel.Eq{"ac.month": period.Month, "ac.year": period.Year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, accelerationsSQL, accelerationsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accelerations := make([]*domain.Acceleration, 0)

	for rows.Next() {
		acceleration := &domain.Acceleration{}

		var (
			scope      string
			adType     sql.NullString
			budgetID   sql.NullString
			multiplier string
			updated    sql.NullTime
		)

		if err := rows.Scan(
			&acceleration.ID,
			&scope,
			&acceleration.AccountCode,
			&adType,
			&budgetID,
			&multiplier,
			&acceleration.DateCreated,
			&updated,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar aceleração: %w", err)
		}

		acceleration.Scope = domain.AccelerationScope(scope)

		if adType.Valid {
			acceleration.AdTypeCode = &adType.String
		}

		if budgetID.Valid {
			acceleration.BudgetID = &budgetID.String
		}

		if updated.Valid {
			acceleration.DateUpdated = &updated.Time
		}

		acceleration.Multiplier, err = decimal.NewFromString(multiplier)
		if err != nil {
			return nil, fmt.Errorf("multiplicador inválido na aceleração %d: %w", acceleration.ID, err)
		}

		accelerations = append(accelerations, acceleration)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accelerations, nil
}
