package domain

import (
	"errors"
)

var (
	MessageSuccessGetShoppingItems = "shopping list retrieved successfully"
	MessageSuccessMarkPurchased    = "item marked as purchased"
	MessageSuccessRemoveFromCart   = "item removed from shopping list"
	MessageSuccessGetTopProducts   = "top products retrieved successfully"

	MessageFailedGetShoppingItems = "failed to retrieve shopping list"
	MessageFailedMarkPurchased    = "failed to mark item as purchased"
	MessageFailedRemoveFromCart   = "failed to remove item from shopping list"
	MessageFailedGetTopProducts   = "failed to retrieve top products"

	ErrShoppingItemNotFound = errors.New("shopping list item not found")
	ErrInvalidStatsRange    = errors.New("range must be one of day, week, month")
)

type (
	ShoppingItemResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		ProductType string `json:"product_type"`
		Mass        string `json:"mass"`
		FridgeID    string `json:"fridge_id"`
	}

	TopProductResponse struct {
		Name        string  `json:"name"`
		ProductType string  `json:"product_type"`
		Mass        float64 `json:"mass"`
		Quantity    int     `json:"quantity"`
	}
)
