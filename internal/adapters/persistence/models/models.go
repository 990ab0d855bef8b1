package models

import (
	"time"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID            uint                 `gorm:"primaryKey" json:"id"`
	Username      string               `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password      string               `gorm:"size:255;not null" json:"-"`
	Name          string               `gorm:"size:100;default:'Guest'" json:"name"`
	ProfilePicURL string               `gorm:"size:255" json:"profile_pic_url"`
	Role          string               `gorm:"size:20;default:'User'" json:"role"`
	Permissions   domain.PermissionMap `gorm:"serializer:json;type:text" json:"permissions"`
	CreatedAt     time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the Admin role
func (u *User) IsAdmin() bool {
	return u.Role == domain.RoleAdmin
}

// ============================================================
// Inventory Tables
// ============================================================

// Item statuses
const (
	ItemStatusOnStock    = "on stock"
	ItemStatusOutOfStock = "out of stock"
	ItemStatusLowOnStock = "low on stock"
)

// Item represents items table
type Item struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Name               string     `gorm:"size:200;not null" json:"name"`
	Qty                int        `gorm:"not null" json:"qty"`
	SKU                string     `gorm:"size:100" json:"sku"`
	Shelf              string     `gorm:"size:100;default:'unknown'" json:"shelf"`
	Status             string     `gorm:"size:20;default:'on stock'" json:"status"`
	Category           string     `gorm:"size:100;default:'other'" json:"category"`
	LowStockWarningQty int        `gorm:"default:1" json:"low_stock_warning_qty"`
	ExpiryDate         *time.Time `json:"expiry_date"`
	Archived           bool       `gorm:"default:false" json:"archived"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Item) TableName() string {
	return "items"
}

// Warning types surfaced by the item warning computation. Warnings are
// computed on demand, never stored.
const (
	WarningLowStock = "Low Stock Warning"
	WarningExpiry   = "Expiry Warning"
)

// ItemWarning is an item decorated with its warning tag
type ItemWarning struct {
	Item
	WarningType string `json:"warning_type"`
}

// Category represents categories table. Categories are a flat tag list
// referenced by items by name only; dangling references are tolerated.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// ============================================================
// Order & Return Tables
// ============================================================

// Order statuses
const (
	OrderStatusOpen      = "Open"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// Attachment is a named link to an uploaded document
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Order represents orders table
type Order struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	InvoiceNumber string       `gorm:"size:100;not null" json:"invoice_number"`
	OrderDate     time.Time    `gorm:"not null" json:"order_date"`
	DeliveryDate  time.Time    `gorm:"not null" json:"delivery_date"`
	OrderDetails  string       `gorm:"type:text" json:"order_details"`
	Vendor        string       `gorm:"size:200" json:"vendor"`
	Attachments   []Attachment `gorm:"serializer:json;type:text" json:"attachments"`
	Status        string       `gorm:"size:20;default:'Open'" json:"status"`
	Archived      bool         `gorm:"default:false" json:"archived"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// Return statuses
const (
	ReturnStatusPending   = "Pending"
	ReturnStatusApproved  = "Approved"
	ReturnStatusCompleted = "Completed"
)

// Return represents returns table. A return is created as a side effect
// of cancelling an order.
type Return struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	InvoiceNumber string       `gorm:"size:100;not null" json:"invoice_number"`
	Reason        string       `gorm:"type:text;not null" json:"reason"`
	ReturnDetails string       `gorm:"type:text" json:"return_details"`
	Vendor        string       `gorm:"size:200" json:"vendor"`
	Attachments   []Attachment `gorm:"serializer:json;type:text" json:"attachments"`
	Status        string       `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Return) TableName() string {
	return "returns"
}

// Vendor represents vendors table
type Vendor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DisplayName string    `gorm:"size:200;not null" json:"display_name"`
	CompanyName string    `gorm:"size:200" json:"company_name"`
	Email       string    `gorm:"size:200" json:"email"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Website     string    `gorm:"size:200" json:"website"`
	Contact     string    `gorm:"type:text" json:"contact"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}

// ============================================================
// Audit Log Table
// ============================================================

// Log types
const (
	LogTypeAuth   = "AUTH"
	LogTypeItem   = "ITEM"
	LogTypeOrder  = "ORDER"
	LogTypeReturn = "RETURN"
	LogTypeVendor = "VENDOR"
)

// Log actions
const (
	LogActionCreate  = "CREATE"
	LogActionUpdate  = "UPDATE"
	LogActionDelete  = "DELETE"
	LogActionUse     = "USE"
	LogActionArchive = "ARCHIVE"
)

// Log statuses
const (
	LogStatusUnread = "UNREAD"
	LogStatusRead   = "READ"
)

// Log represents the append-only audit log table. Rows are never updated
// except the UNREAD to READ transition, and only READ rows are
// bulk-deletable.
type Log struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	Action    string    `gorm:"size:20;default:'CREATE'" json:"action"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;default:'UNREAD'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Log) TableName() string {
	return "logs"
}

// ============================================================
// Resources Service Table
// ============================================================

// Upload represents the uploads table of the resources service
type Upload struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	URL       string    `gorm:"size:255;not null" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Upload) TableName() string {
	return "uploads"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for the API server tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Item{},
		&Category{},
		&Order{},
		&Return{},
		&Vendor{},
		&Log{},
	)
}

// AutoMigrateResources runs auto migration for the resources service
func AutoMigrateResources(db *gorm.DB) error {
	return db.AutoMigrate(&Upload{})
}
