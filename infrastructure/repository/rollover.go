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

type RolloverRepository interface {
	ListByPeriod(ctx context.Context, schema string, period domain.Period) ([]*domain.Rollover, error)
}

type rolloverRepository struct {
	conn *postgres.Connection
}

func NewRolloverRepository(conn *postgres.Connection) RolloverRepository {
	return &rolloverRepository{
		conn: conn,
	}
}

// ListByPeriod busca os saldos carregados de meses anteriores para o período
func (r *rolloverRepository) ListByPeriod(ctx context.Context, schema string, period domain.Period) ([]*domain.Rollover, error) {
	rolloversSQL, rolloversArgs, err := squirrel.
		Select("rb.account_code, rb.ad_type_code, rb.amount").
		From(fmt.Sprintf("%s.roll_breakdowns rb", pq.QuoteIdentifier(schema))).
		Where(squirrel.Eq{"rb.month": period.Month, "rb.year": period.Year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, rolloversSQL, rolloversArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rollovers := make([]*domain.Rollover, 0)

	for rows.Next() {
		rollover := &domain.Rollover{Month: period.Month, Year: period.Year}

		var amount string
		if err := rows.Scan(
			&rollover.AccountCode,
			&rollover.AdTypeCode,
			&amount,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar rollover: %w", err)
		}

		rollover.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("valor inválido no rollover de %s/%s: %w",
				rollover.AccountCode, rollover.AdTypeCode, err)
		}

		rollovers = append(rollovers, rollover)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return rollovers, nil
}
