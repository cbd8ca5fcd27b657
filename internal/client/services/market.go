package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smartuniversity/campusctl/internal/client/api"
	"github.com/smartuniversity/campusctl/internal/client/cart"
	"github.com/smartuniversity/campusctl/internal/client/models"
)

// OutcomeKind is the closed set of terminal checkout states. Every attempt
// ends in exactly one of them; none triggers an automatic retry.
type OutcomeKind int

const (
	// OutcomeCreated: the order was accepted and an order id was issued.
	OutcomeCreated OutcomeKind = iota
	// OutcomeStockConflict: the backend reported insufficient stock (409).
	OutcomeStockConflict
	// OutcomePaymentFailure: payment authorization was rejected (402).
	OutcomePaymentFailure
	// OutcomeFailed: any other failure, with a human-readable message.
	OutcomeFailed
)

// Outcome is the classified result of one checkout attempt. OrderID is set
// only for OutcomeCreated; Message only for OutcomeFailed.
type Outcome struct {
	Kind    OutcomeKind
	OrderID string
	Message string
}

// MarketService is the marketplace client: catalog reads, product creation
// for staff, and the checkout flow.
type MarketService interface {
	Products(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, draft models.ProductDraft) (models.Product, error)

	// Checkout submits the cart snapshot as one order. The cart itself is
	// never mutated here; the caller clears it on OutcomeCreated.
	Checkout(ctx context.Context, items []cart.Item) Outcome

	// QuickBuy orders a single unit of one product, bypassing the cart.
	QuickBuy(ctx context.Context, productID string) Outcome
}

type marketService struct {
	api *api.Client
}

func NewMarketService(client *api.Client) MarketService {
	return &marketService{api: client}
}

type checkoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type checkoutRequest struct {
	Items []checkoutItem `json:"items"`
}

type orderResponse struct {
	ID string `json:"id"`
}

func (m *marketService) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := m.api.Get(ctx, "/market/products", &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (m *marketService) CreateProduct(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	var created models.Product
	if err := m.api.Post(ctx, "/market/products", draft, &created); err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

func (m *marketService) Checkout(ctx context.Context, items []cart.Item) Outcome {
	reqItems := make([]checkoutItem, 0, len(items))
	for _, it := range items {
		reqItems = append(reqItems, checkoutItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return m.submit(ctx, reqItems)
}

func (m *marketService) QuickBuy(ctx context.Context, productID string) Outcome {
	return m.submit(ctx, []checkoutItem{{ProductID: productID, Quantity: 1}})
}

// submit posts the order and classifies the result. An empty submission is
// rejected locally; nothing is sent to the backend.
func (m *marketService) submit(ctx context.Context, items []checkoutItem) Outcome {
	if len(items) == 0 {
		return Outcome{Kind: OutcomeFailed, Message: "cart is empty"}
	}

	var order orderResponse
	err := m.api.Post(ctx, "/market/orders/checkout", checkoutRequest{Items: items}, &order)
	if err == nil {
		return Outcome{Kind: OutcomeCreated, OrderID: order.ID}
	}

	// 409 and 402 are reserved by the marketplace contract for stock races
	// and payment rejection; the response body is irrelevant for them.
	switch api.StatusOf(err) {
	case http.StatusConflict:
		return Outcome{Kind: OutcomeStockConflict}
	case http.StatusPaymentRequired:
		return Outcome{Kind: OutcomePaymentFailure}
	}

	msg := api.MessageOf(err)
	if msg == "" {
		msg = "checkout failed"
	}
	return Outcome{Kind: OutcomeFailed, Message: msg}
}
