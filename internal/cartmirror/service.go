package cartmirror

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/Kingleseu/GestionStocke/internal/cart"
	"github.com/Kingleseu/GestionStocke/pkg/db/models"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/shopspring/decimal"
)

// Service accepts replace-whole-cart writes from the sync bridge and hands
// back mirrored state for session rehydration. The mirror is best-effort and
// never authoritative.
type Service interface {
	Sync(ctx context.Context, sessionID, csrfToken string, items []cart.LineItem) error
	Restore(ctx context.Context, sessionID string) ([]cart.LineItem, error)
}

type service struct {
	repo  *Repository
	token string
}

// NewService builds the mirror service. An empty expected token disables the
// token check.
func NewService(repo *Repository, expectedToken string) (Service, error) {
	if repo == nil {
		return nil, errors.New("cartmirror: repository is required")
	}
	return &service{repo: repo, token: expectedToken}, nil
}

func (s *service) Sync(ctx context.Context, sessionID, csrfToken string, items []cart.LineItem) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if s.token != "" && subtle.ConstantTimeCompare([]byte(csrfToken), []byte(s.token)) != 1 {
		return pkgerrors.New(pkgerrors.CodeForbidden, "invalid sync token")
	}

	rows := make([]models.CartLineItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.CartLineItem{
			ID:            item.ID,
			ProductID:     item.ProductID,
			PriceSnapshot: decimal.NewFromFloat(item.PriceSnapshot),
			Quantity:      item.Quantity,
			Customization: item.Customization,
		})
	}
	return s.repo.Replace(ctx, sessionID, rows)
}

func (s *service) Restore(ctx context.Context, sessionID string) ([]cart.LineItem, error) {
	record, err := s.repo.BySession(ctx, sessionID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, nil
		}
		return nil, err
	}

	items := make([]cart.LineItem, 0, len(record.Items))
	for _, row := range record.Items {
		items = append(items, cart.LineItem{
			ID:            row.ID,
			ProductID:     row.ProductID,
			PriceSnapshot: row.PriceSnapshot.InexactFloat64(),
			Quantity:      row.Quantity,
			Customization: row.Customization,
		})
	}
	return items, nil
}
