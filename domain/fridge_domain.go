package domain

import (
	"errors"
)

var (
	MessageSuccessCreateFridge = "fridge created successfully"
	MessageSuccessGetFridges   = "fridges retrieved successfully"
	MessageSuccessDeleteFridge = "fridge deleted successfully"

	MessageFailedCreateFridge = "failed to create fridge"
	MessageFailedGetFridges   = "failed to retrieve fridges"
	MessageFailedDeleteFridge = "failed to delete fridge"

	ErrFridgeNotFound = errors.New("fridge not found")
	ErrEmptyTitle     = errors.New("fridge title must not be empty")
)

type (
	CreateFridgeRequest struct {
		Title string `json:"title" validate:"required"`
	}

	FridgeResponse struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
)
