package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/smartuniversity/campusctl/internal/client/models"
	"github.com/smartuniversity/campusctl/internal/client/services"
)

// Products lists the tenant's marketplace catalog.
func (a *App) Products(ctx context.Context) error {
	products, err := a.market.Products(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load products:", err)
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products.")
		return nil
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "%-12s %-30s %8.2f  stock %d\n", p.ID, p.Name, p.Price, p.Stock)
	}
	return nil
}

// AddProduct creates a catalog entry. Only teachers and admins may do this.
func (a *App) AddProduct(ctx context.Context) error {
	if !a.session.Current().Role.CanManageCatalog() {
		fmt.Fprintln(a.out, "Only teachers and admins can add products.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Product name", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	priceInput, err := getSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceInput, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid price:", priceInput)
		return err
	}
	stockInput, err := getSimpleText(a.reader, "Stock", a.out)
	if err != nil {
		return err
	}
	stock, err := strconv.Atoi(stockInput)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid stock:", stockInput)
		return err
	}

	created, err := a.market.CreateProduct(ctx, models.ProductDraft{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Could not create product:", err)
		return err
	}
	fmt.Fprintf(a.out, "Created product %s\n", created.ID)
	return nil
}

// CartAdd puts a product into the cart: args are <productId> [quantity].
// Adding a product already in the cart bumps its quantity in place.
func (a *App) CartAdd(ctx context.Context, args []string) error {
	productID := args[0]
	quantity := 1
	if len(args) > 1 {
		q, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(a.out, "Invalid quantity:", args[1])
			return err
		}
		quantity = q
	}

	products, err := a.market.Products(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load products:", err)
		return err
	}
	for _, p := range products {
		if p.ID == productID {
			a.cart.Add(p.ID, p.Name, quantity)
			fmt.Fprintf(a.out, "Added %s to cart\n", p.Name)
			return nil
		}
	}

	fmt.Fprintln(a.out, "Unknown product:", productID)
	return nil
}

// CartRemove drops a product from the cart: args are <productId>.
func (a *App) CartRemove(ctx context.Context, args []string) error {
	a.cart.Remove(args[0])
	fmt.Fprintln(a.out, "Removed.")
	return nil
}

// CartShow prints the cart contents in insertion order.
func (a *App) CartShow(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Cart is empty.")
		return nil
	}
	for _, it := range items {
		fmt.Fprintf(a.out, "%-12s %-30s x%d\n", it.ProductID, it.ProductName, it.Quantity)
	}
	return nil
}

// Checkout submits the whole cart as one order; the cart is cleared only
// when the order was actually created.
func (a *App) Checkout(ctx context.Context) error {
	out := a.market.Checkout(ctx, a.cart.Items())
	if a.reportOutcome(out) {
		a.cart.Clear()
	}
	return nil
}

// Buy orders one unit of a product immediately, bypassing the cart.
func (a *App) Buy(ctx context.Context, args []string) error {
	out := a.market.QuickBuy(ctx, args[0])
	a.reportOutcome(out)
	return nil
}

// reportOutcome prints the user-facing result of a checkout attempt and
// reports whether an order was created.
func (a *App) reportOutcome(out services.Outcome) bool {
	switch out.Kind {
	case services.OutcomeCreated:
		fmt.Fprintf(a.out, "Order %s created\n", out.OrderID)
		return true
	case services.OutcomeStockConflict:
		fmt.Fprintln(a.out, "Some items are out of stock. Adjust the cart and try again.")
	case services.OutcomePaymentFailure:
		fmt.Fprintln(a.out, "Payment was declined.")
	default:
		fmt.Fprintln(a.out, out.Message)
	}
	return false
}
