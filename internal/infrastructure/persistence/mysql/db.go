package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tiendamoderna/tienda/internal/infrastructure/config"
)

// NewDB opens the MySQL connection, configures the pool and migrates the
// schema. SQL logging is enabled in debug mode only.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error al conectar a la base de datos: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error al obtener la conexión SQL: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error al verificar la conexión: %w", err)
	}

	log.Println("conexión a MySQL establecida")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("error en la migración del esquema: %w", err)
	}

	return db, nil
}

// autoMigrate creates and extends tables. AutoMigrate never drops columns;
// production schema changes go through versioned migrations.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&BrandModel{},
		&ProductModel{},
		&VariantModel{},
		&ImageModel{},
		&OrderModel{},
		&OrderLineModel{},
	)
}

// UserModel is the GORM account row. The domain entity lives in
// internal/domain/user; repositories convert between the two.
type UserModel struct {
	ID            uint   `gorm:"primaryKey"`
	Email         string `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash  string `gorm:"size:255;not null"`
	FullName      string `gorm:"size:100;not null"`
	Phone         string `gorm:"size:30"`
	Role          string `gorm:"size:20;index;not null"`
	Active        bool   `gorm:"default:true"`
	EmailVerified bool   `gorm:"default:false"`

	VerificationToken  string `gorm:"size:64;index"`
	VerificationExpiry *time.Time
	ResetToken         string `gorm:"size:64;index"`
	ResetExpiry        *time.Time

	LastLoginAt *time.Time

	Street     string `gorm:"size:200"`
	City       string `gorm:"size:100"`
	Province   string `gorm:"size:100"`
	PostalCode string `gorm:"size:20"`
	Country    string `gorm:"size:100"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "usuarios"
}

type CategoryModel struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:100;not null"`
	Slug     string `gorm:"uniqueIndex;size:120;not null"`
	ParentID *uint  `gorm:"index"`
	Active   bool   `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return "categorias"
}

type BrandModel struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"uniqueIndex;size:100;not null"`
	Active bool   `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BrandModel) TableName() string {
	return "marcas"
}

// ProductModel stores prices in minor currency units to keep arithmetic
// exact; the discount percentage is the only floating-point column.
type ProductModel struct {
	ID              uint    `gorm:"primaryKey"`
	SKU             string  `gorm:"uniqueIndex;size:50;not null"`
	Name            string  `gorm:"index:idx_busqueda;size:200;not null"`
	Description     string  `gorm:"type:text"`
	BasePrice       int64   `gorm:"not null"`
	DiscountPercent float64 `gorm:"default:0"`
	Stock           int     `gorm:"default:0"`
	Active          bool    `gorm:"index;default:true"`
	Featured        bool    `gorm:"index;default:false"`
	CategoryID      uint    `gorm:"index;not null"`
	BrandID         *uint   `gorm:"index"`

	Variants []VariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images   []ImageModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (ProductModel) TableName() string {
	return "productos"
}

type VariantModel struct {
	ID              uint   `gorm:"primaryKey"`
	ProductID       uint   `gorm:"index;not null"`
	SKU             string `gorm:"uniqueIndex;size:50;not null"`
	Size            string `gorm:"size:50"`
	Color           string `gorm:"size:50"`
	Material        string `gorm:"size:50"`
	PriceAdjustment int64  `gorm:"default:0"`
	Stock           int    `gorm:"default:0"`
	Available       bool   `gorm:"default:true"`
}

func (VariantModel) TableName() string {
	return "variantes"
}

type ImageModel struct {
	ID           uint   `gorm:"primaryKey"`
	ProductID    uint   `gorm:"index;not null"`
	URL          string `gorm:"size:500;not null"`
	DisplayOrder int    `gorm:"default:0"`
	IsPrimary    bool   `gorm:"default:false"`
}

func (ImageModel) TableName() string {
	return "imagenes"
}

// OrderModel snapshots the shipping address and amounts; the unique index on
// order_number backs the daily sequence against same-day races.
type OrderModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrderNumber string `gorm:"uniqueIndex;size:32;not null"`
	UserID      uint   `gorm:"index;not null"`
	Status      string `gorm:"index;size:20;not null"`

	Subtotal      int64 `gorm:"not null"`
	TotalDiscount int64 `gorm:"not null"`
	ShippingCost  int64 `gorm:"not null"`
	Total         int64 `gorm:"not null"`

	Street     string `gorm:"size:200"`
	City       string `gorm:"size:100"`
	Province   string `gorm:"size:100"`
	PostalCode string `gorm:"size:20"`
	Country    string `gorm:"size:100"`

	CouponCode    string `gorm:"size:50"`
	Notes         string `gorm:"type:text"`
	PaymentMethod string `gorm:"size:50"`
	TransactionID string `gorm:"size:100"`
	Carrier       string `gorm:"size:100"`
	TrackingCode  string `gorm:"size:100"`

	Lines []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	PaidAt      *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

func (OrderModel) TableName() string {
	return "ordenes"
}

// OrderLineModel freezes the unit price and discount at checkout time.
type OrderLineModel struct {
	ID           uint   `gorm:"primaryKey"`
	OrderID      uint   `gorm:"index;not null"`
	ProductID    uint   `gorm:"index;not null"`
	VariantID    *uint  `gorm:"index"`
	ProductName  string `gorm:"size:200;not null"`
	Quantity     int    `gorm:"not null"`
	UnitPrice    int64  `gorm:"not null"`
	UnitDiscount int64  `gorm:"not null"`
	Subtotal     int64  `gorm:"not null"`
	Total        int64  `gorm:"not null"`
}

func (OrderLineModel) TableName() string {
	return "lineas_orden"
}
