package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cafe/internal/core/model"
	"cafe/internal/core/repository"
)

var testCustomer = model.UserSnapshot{ID: "65a1b2c3d4e5f60718293a4b", Name: "Ann", Email: "ann@cafe.test"}

func placeTestOrder(t *testing.T, svc OrderService) *model.Order {
	t.Helper()
	items := []model.OrderItem{{Name: "Latte", Quantity: 2, Price: 240}}
	order, err := svc.PlaceOrder(context.Background(), testCustomer, items, 480, "")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	return order
}

func TestPlaceOrderDefaults(t *testing.T) {
	svc := NewOrderService(repository.NewInMemoryOrderRepository())
	order := placeTestOrder(t, svc)

	if order.Status != model.StatusPending {
		t.Errorf("status = %q, want %q", order.Status, model.StatusPending)
	}
	if order.PaymentMethod != model.DefaultPaymentMethod {
		t.Errorf("payment method = %q, want %q", order.PaymentMethod, model.DefaultPaymentMethod)
	}
	if order.TotalAmount != 480 {
		t.Errorf("total = %v, want submitted 480", order.TotalAmount)
	}
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repository.NewInMemoryOrderRepository())
	order := placeTestOrder(t, svc)
	id := order.ID.Hex()

	tests := []struct {
		name   string
		status string
		want   string
	}{
		{"arbitrary value accepted", "Xyz", "Xyz"},
		{"empty leaves unchanged", "", "Xyz"},
		{"delivered", model.StatusDelivered, model.StatusDelivered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.UpdateStatus(ctx, id, tt.status)
			if err != nil {
				t.Fatalf("UpdateStatus: %v", err)
			}
			if got.Status != tt.want {
				t.Errorf("status = %q, want %q", got.Status, tt.want)
			}
		})
	}

	for _, bad := range []string{"65a1b2c3d4e5f60718293a4b", "nope"} {
		if _, err := svc.UpdateStatus(ctx, bad, "Delivered"); !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdateStatus(%q) error = %v, want ErrNotFound", bad, err)
		}
	}
}

func TestUpdateStatusConcurrent(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repository.NewInMemoryOrderRepository())
	id := placeTestOrder(t, svc).ID.Hex()

	statuses := []string{"Preparing", "Delivered", "Cancelled", "Ready"}
	var wg sync.WaitGroup
	errs := make(chan error, len(statuses))
	for _, s := range statuses {
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			if _, err := svc.UpdateStatus(ctx, id, status); err != nil {
				errs <- err
			}
		}(s)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent UpdateStatus: %v", err)
	}

	final, err := svc.GetOrder(ctx, id)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	found := false
	for _, s := range statuses {
		if final.Status == s {
			found = true
		}
	}
	if !found {
		t.Errorf("final status %q is not one of the written values", final.Status)
	}
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repository.NewInMemoryOrderRepository())
	placeTestOrder(t, svc)
	other := model.UserSnapshot{ID: "65a1b2c3d4e5f60718293a4c", Name: "Bo", Email: "bo@cafe.test"}
	if _, err := svc.PlaceOrder(ctx, other, nil, 0, "Card"); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	all, _ := svc.ListAll(ctx)
	if len(all) != 2 {
		t.Errorf("ListAll = %d orders, want 2", len(all))
	}
	byEmail, _ := svc.ListForEmail(ctx, "ann@cafe.test")
	if len(byEmail) != 1 || byEmail[0].User.Email != "ann@cafe.test" {
		t.Errorf("ListForEmail = %+v", byEmail)
	}
	byUser, _ := svc.ListForUser(ctx, other.ID)
	if len(byUser) != 1 || byUser[0].PaymentMethod != "Card" {
		t.Errorf("ListForUser = %+v", byUser)
	}
	if _, err := svc.ListForUser(ctx, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("ListForUser(\"\") error = %v, want ErrValidation", err)
	}
}
