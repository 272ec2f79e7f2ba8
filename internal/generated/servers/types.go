// Package servers holds the Parcel Hub API surface described by openapi.yml:
// wire types, the ServerInterface an adapter implements, and echo route
// registration. It follows the layout oapi-codegen emits for echo servers.
package servers

import "time"

// Defines values for Category.
const (
	CategoryCourier  Category = "Courier"
	CategoryFood     Category = "Food"
	CategoryShopping Category = "Shopping"
)

// Defines values for OrderStatus.
const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusPickedUp   OrderStatus = "PickedUp"
	OrderStatusReachedHub OrderStatus = "ReachedHub"
)

// Defines values for Role.
const (
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
)

// Defines values for Theme.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Category defines model for Category.
type Category string

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HubStats defines model for HubStats.
type HubStats struct {
	PickedUp   int `json:"pickedUp"`
	Pending    int `json:"pending"`
	ReachedHub int `json:"reachedHub"`
	Total      int `json:"total"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Category        Category `json:"category"`
	ItemDescription string   `json:"itemDescription"`
	PhoneNumber     string   `json:"phoneNumber"`
	SubmitterName   string   `json:"submitterName"`
}

// Order defines model for Order.
type Order struct {
	Category        Category    `json:"category"`
	ItemDescription string      `json:"itemDescription"`
	OwnerId         string      `json:"ownerId"` //nolint:revive // generated naming
	PhoneNumber     string      `json:"phoneNumber"`
	PickedUpAt      *time.Time  `json:"pickedUpAt,omitempty"`
	Status          OrderStatus `json:"status"`
	StatusLabel     string      `json:"statusLabel"`
	SubmittedAt     time.Time   `json:"submittedAt"`
	SubmitterName   string      `json:"submitterName"`
	Token           string      `json:"token"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Role defines model for Role.
type Role string

// Session defines model for Session.
type Session struct {
	Id   string `json:"id"` //nolint:revive // generated naming
	Role Role   `json:"role"`
}

// SignInRequest defines model for SignInRequest.
type SignInRequest struct {
	// Id Register number for students, username for staff
	Id string `json:"id"` //nolint:revive // generated naming

	// Password Required for staff
	Password *string `json:"password,omitempty"`
	Role     Role    `json:"role"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Status OrderStatus `json:"status"`
}

// Theme defines model for Theme.
type Theme string

// ThemePreference defines model for ThemePreference.
type ThemePreference struct {
	Theme Theme `json:"theme"`
}

// SignInJSONRequestBody defines body for SignIn for application/json ContentType.
type SignInJSONRequestBody = SignInRequest

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = StatusUpdate
