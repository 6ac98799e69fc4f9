package enum

// Item categories (drive quota rules and totem grouping)

const (
	CategorySize          = "SIZE"
	CategoryStarchSide    = "STARCH_SIDE"
	CategoryVegetableSide = "VEGETABLE_SIDE"
	CategoryProtein       = "PROTEIN"
	CategoryExtra         = "EXTRA"
	CategoryDrink         = "DRINK"
)

// Categories lists every valid item category.
var Categories = []string{
	CategorySize,
	CategoryStarchSide,
	CategoryVegetableSide,
	CategoryProtein,
	CategoryExtra,
	CategoryDrink,
}

// IsValidCategory reports whether s is a known item category.
func IsValidCategory(s string) bool {
	switch s {
	case CategorySize, CategoryStarchSide, CategoryVegetableSide,
		CategoryProtein, CategoryExtra, CategoryDrink:
		return true
	}
	return false
}

// Payment methods (plain labels, never processed)

const (
	PaymentMethodCreditCard  = "CREDIT_CARD"
	PaymentMethodDebitCard   = "DEBIT_CARD"
	PaymentMethodPix         = "PIX"
	PaymentMethodCash        = "CASH"
	PaymentMethodMealVoucher = "MEAL_VOUCHER"
)

// IsValidPaymentMethod reports whether s is a known payment method label.
func IsValidPaymentMethod(s string) bool {
	switch s {
	case PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodPix, PaymentMethodCash, PaymentMethodMealVoucher:
		return true
	}
	return false
}

// Cart line kinds

const (
	CartLineMeal  = "MEAL"
	CartLineExtra = "EXTRA"
)

// Snapshot keys and change-event types

const (
	SnapshotKeyItems  = "items"
	SnapshotKeyOrders = "orders"
)

const (
	EventSnapshotChanged = "snapshot.changed"
)
