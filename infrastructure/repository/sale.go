package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/pos-sales-analytics/infrastructure/database"
	"github.com/vfg2006/pos-sales-analytics/internal/domain"
)

//go:generate mockgen -source=sale.go -destination=mocks/mock_sale.go -package=mocks

const (
	salesTable       = "sales s"
	salesInsertTable = "sales"
	insertBatchSize  = 500
)

type SaleRepository interface {
	// ListByPeriod lista as vendas unitárias entre start e end, ambos os dias inclusive
	ListByPeriod(ctx context.Context, start, end time.Time) ([]*domain.SaleRecord, error)

	// InsertBatch grava as vendas em uma única transação e retorna quantas foram inseridas
	InsertBatch(ctx context.Context, sales []*domain.SaleRecord) (int64, error)
}

type saleRepository struct {
	conn        database.Conn
	placeholder squirrel.PlaceholderFormat
}

func NewSaleRepository(conn database.Conn) SaleRepository {
	return &saleRepository{
		conn:        conn,
		placeholder: conn.Placeholder(),
	}
}

func (r *saleRepository) ListByPeriod(ctx context.Context, start, end time.Time) ([]*domain.SaleRecord, error) {
	query, args, err := buildListQuery(start, end, r.placeholder)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	sales := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}

func (r *saleRepository) InsertBatch(ctx context.Context, sales []*domain.SaleRecord) (int64, error) {
	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(sales); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(sales) {
				end = len(sales)
			}

			query, args, err := buildInsertQuery(sales[start:end], r.placeholder)
			if err != nil {
				return errors.Wrap(err, "erro ao construir a query")
			}
			if query == "" {
				continue
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return errors.Wrapf(err, "erro ao inserir lote iniciado em %d", start)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return errors.Wrap(err, "erro ao obter número de linhas afetadas")
			}
			inserted += affected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// buildInsertQuery monta um INSERT com várias linhas; vendas sem data ou horário
// ficam de fora e um lote sem nenhuma linha válida retorna query vazia
func buildInsertQuery(sales []*domain.SaleRecord, placeholder squirrel.PlaceholderFormat) (string, []interface{}, error) {
	insert := squirrel.
		Insert(salesInsertTable).
		Columns("sold_at", "net_amount", "discount", "quantity", "product_name").
		PlaceholderFormat(placeholder)

	rows := 0
	for _, sale := range sales {
		if sale == nil || sale.Date == nil || sale.TimeOfDay == nil {
			continue
		}

		d, t := *sale.Date, *sale.TimeOfDay
		soldAt := time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)

		insert = insert.Values(
			soldAt,
			decimal.NewFromFloat(sale.Amount).StringFixed(2),
			decimal.NewFromFloat(sale.Discount).StringFixed(2),
			sale.Quantity,
			sale.ProductName,
		)
		rows++
	}

	if rows == 0 {
		return "", nil, nil
	}

	return insert.ToSql()
}

// buildListQuery filtra sold_at no intervalo [start, end + 1 dia)
func buildListQuery(start, end time.Time, placeholder squirrel.PlaceholderFormat) (string, []interface{}, error) {
	from := truncateDay(start)
	until := truncateDay(end).AddDate(0, 0, 1)

	return squirrel.
		Select("s.sold_at, s.net_amount, s.discount, s.quantity, s.product_name").
		From(salesTable).
		Where(squirrel.GtOrEq{"s.sold_at": from}).
		Where(squirrel.Lt{"s.sold_at": until}).
		OrderBy("s.sold_at ASC").
		PlaceholderFormat(placeholder).
		ToSql()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSale(row scanner) (*domain.SaleRecord, error) {
	var (
		soldAt      sql.NullTime
		amount      decimal.NullDecimal
		discount    decimal.NullDecimal
		quantity    sql.NullInt64
		productName sql.NullString
	)

	if err := row.Scan(&soldAt, &amount, &discount, &quantity, &productName); err != nil {
		return nil, err
	}

	sale := &domain.SaleRecord{
		Amount:      amount.Decimal.InexactFloat64(),
		Discount:    discount.Decimal.InexactFloat64(),
		Quantity:    int(quantity.Int64),
		ProductName: productName.String,
	}

	if soldAt.Valid {
		t := soldAt.Time
		date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		tod := time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
		sale.Date = &date
		sale.TimeOfDay = &tod
	}

	return sale, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
