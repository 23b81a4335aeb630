package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
	"github.com/marginiq/marginiq-api/internal/domain/valueobject"
	"github.com/shopspring/decimal"
)

var _ repository.DiscountRequestRepository = (*DiscountRequestRepo)(nil)

const requestColumns = `id, company_id, customer_id, requested_by, status, currency, risk_score, ai_confidence, decision_reason, decided_by, decided_at, created_at, updated_at`

// DiscountRequestRepo implements DiscountRequestRepository on PostgreSQL
// (usable with pool or tx). Line items live in discount_request_items; prices
// were validated on write, so reads rehydrate through the trusted path.
type DiscountRequestRepo struct {
	q Querier
}

// NewDiscountRequestRepository builds the adapter. Pass a pool or tx (Querier).
func NewDiscountRequestRepository(q Querier) *DiscountRequestRepo {
	return &DiscountRequestRepo{q: q}
}

// Create persists the request header and its line items.
func (r *DiscountRequestRepo) Create(request *entity.DiscountRequest) error {
	query := `
		INSERT INTO discount_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.CompanyID, request.CustomerID, request.RequestedBy,
		request.Status, request.Currency, request.RiskScore, request.AIConfidence,
		request.DecisionReason, request.DecidedBy, request.DecidedAt,
		request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert discount request: %w", err)
	}
	for i, item := range request.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO discount_request_items (request_id, position, product_id, product_name, quantity, unit_base_price, discount_percentage)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			request.ID, i, item.ProductID(), item.ProductName(), item.Quantity(),
			item.UnitBasePrice().Amount(), item.DiscountPercentage(),
		)
		if err != nil {
			return fmt.Errorf("insert discount request item: %w", err)
		}
	}
	return nil
}

// GetByID fetches a company's request with its items.
func (r *DiscountRequestRepo) GetByID(companyID, id string) (*entity.DiscountRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM discount_requests WHERE company_id = $1 AND id = $2`
	request, err := r.scanOne(r.q.QueryRow(context.Background(), query, companyID, id))
	if err != nil || request == nil {
		return request, err
	}
	if err := r.loadItems(request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListByCompany lists a company's requests with pagination, optionally
// filtered by status. Returns the page plus the total count.
func (r *DiscountRequestRepo) ListByCompany(companyID string, filter repository.DiscountRequestFilter) ([]*entity.DiscountRequest, int, error) {
	where := `WHERE company_id = $1`
	args := []any{companyID}
	if filter.Status != "" {
		where += ` AND status = $2`
		args = append(args, filter.Status)
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM discount_requests `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count discount requests: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM discount_requests %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		requestColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list discount requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.DiscountRequest
	for rows.Next() {
		request, err := r.scanOne(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, request)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, request := range list {
		if err := r.loadItems(request); err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

// UpdateDecision persists the decision fields within the owning company.
func (r *DiscountRequestRepo) UpdateDecision(request *entity.DiscountRequest) error {
	query := `
		UPDATE discount_requests
		SET status = $3, decision_reason = $4, decided_by = $5, decided_at = $6, updated_at = $7
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		request.CompanyID, request.ID, request.Status, request.DecisionReason,
		request.DecidedBy, request.DecidedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update discount request decision: %w", err)
	}
	return nil
}

func (r *DiscountRequestRepo) scanOne(row pgx.Row) (*entity.DiscountRequest, error) {
	var req entity.DiscountRequest
	err := row.Scan(&req.ID, &req.CompanyID, &req.CustomerID, &req.RequestedBy,
		&req.Status, &req.Currency, &req.RiskScore, &req.AIConfidence,
		&req.DecisionReason, &req.DecidedBy, &req.DecidedAt,
		&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount request: %w", err)
	}
	return &req, nil
}

func (r *DiscountRequestRepo) loadItems(request *entity.DiscountRequest) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_id, product_name, quantity, unit_base_price, discount_percentage
		FROM discount_request_items WHERE request_id = $1 ORDER BY position`,
		request.ID)
	if err != nil {
		return fmt.Errorf("list discount request items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			productID, productName string
			quantity               int
			basePrice, pct         decimal.Decimal
		)
		if err := rows.Scan(&productID, &productName, &quantity, &basePrice, &pct); err != nil {
			return fmt.Errorf("scan discount request item: %w", err)
		}
		base := valueobject.MoneyFromStore(basePrice, request.Currency)
		request.Items = append(request.Items, valueobject.RehydrateDiscountRequestItem(productID, productName, quantity, base, pct))
	}
	return rows.Err()
}
