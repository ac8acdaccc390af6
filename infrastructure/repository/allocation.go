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

type AllocationRepository interface {
	ListByPeriod(ctx context.Context, schema string, period domain.Period) ([]*domain.Allocation, error)
}

type allocationRepository struct {
	conn *postgres.Connection
}

func NewAllocationRepository(conn *postgres.Connection) AllocationRepository {
	return &allocationRepository{
		conn: conn,
	}
}

// ListByPeriod busca os percentuais de alocação do período
func (r *allocationRepository) ListByPeriod(ctx context.Context, schema string, period domain.Period) ([]*domain.Allocation, error) {
	allocationsSQL, allocationsArgs, err := squirrel.
		Select("al.account_code, al.ad_type_code, al.percent").
		From(fmt.Sprintf("%s.allocations al", pq.QuoteIdentifier(schema))).
		Where(squirrel.Eq{"al.month": period.Month, "al.year": period.Year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, allocationsSQL, allocationsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	allocations := make([]*domain.Allocation, 0)

	for rows.Next() {
		allocation := &domain.Allocation{Month: period.Month, Year: period.Year}

		var percent string
		if err := rows.Scan(
			&allocation.AccountCode,
			&allocation.AdTypeCode,
			&percent,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar alocação: %w", err)
		}

		allocation.Percent, err = decimal.NewFromString(percent)
		if err != nil {
			return nil, fmt.Errorf("percentual inválido na alocação de %s/%s: %w",
				allocation.AccountCode, allocation.AdTypeCode, err)
		}

		allocations = append(allocations, allocation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return allocations, nil
}
