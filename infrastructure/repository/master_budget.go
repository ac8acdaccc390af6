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

type MasterBudgetRepository interface {
	ListByPeriod(ctx context.Context, schema string, period domain.Period) ([]*domain.MasterBudget, error)
}

type masterBudgetRepository struct {
	conn *postgres.Connection
}

func NewMasterBudgetRepository(conn *postgres.Connection) MasterBudgetRepository {
	return &masterBudgetRepository{
		conn: conn,
	}
}

// ListByPeriod busca os orçamentos mestres do período, apenas as colunas usadas
// pelo pipeline. Nunca varre a tabela sem filtro de período.
func (r *masterBudgetRepository) ListByPeriod(ctx context.Context, schema string, period domain.Period) ([]*domain.MasterBudget, error) {
	budgetsSQL, budgetsArgs, err := squirrel.
		Select("mb.id, mb.account_code, mb.service_code, mb.net_amount").
		From(fmt.Sprintf("%s.master_budgets mb", pq.QuoteIdentifier(schema))).
		Where(squirrel.Eq{"mb.month": period.Month, "mb.year": period.Year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, budgetsSQL, budgetsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	budgets := make([]*domain.MasterBudget, 0)

	for rows.Next() {
		budget := &domain.MasterBudget{Month: period.Month, Year: period.Year}

		var netAmount string
		if err := rows.Scan(
			&budget.ID,
			&budget.AccountCode,
			&budget.ServiceCode,
			&netAmount,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar orçamento mestre: %w", err)
		}

		budget.NetAmount, err = decimal.NewFromString(netAmount)
		if err != nil {
			return nil, fmt.Errorf("valor líquido inválido no orçamento %d: %w", budget.ID, err)
		}

		budgets = append(budgets, budget)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return budgets, nil
}
