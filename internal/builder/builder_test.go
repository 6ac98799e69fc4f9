package builder

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/davicapacle05/Restaurante/internal/catalog"
	"github.com/davicapacle05/Restaurante/internal/enum"
)

func sizeItem(id string) catalog.Item {
	return catalog.Item{ID: id, Name: id, Category: enum.CategorySize, PortionSize: 1, Unit: "un", Active: true, Price: decimal.RequireFromString("18.00")}
}

func categoryItem(id, category string) catalog.Item {
	return catalog.Item{ID: id, Name: id, Category: category, PortionSize: 1, Unit: "un", Active: true, Price: decimal.Zero}
}

func smallQuotas() QuotaTable {
	return QuotaTable{"small": {enum.CategoryProtein: 1}}
}

func TestToggleWithoutSizeFails(t *testing.T) {
	b := NewBuilder(smallQuotas())
	err := b.ToggleCategoryItem(categoryItem("bife", enum.CategoryProtein))
	if !errors.Is(err, ErrNoSizeSelected) {
		t.Fatalf("expected ErrNoSizeSelected, got %v", err)
	}
	if len(b.Selection()) != 0 {
		t.Error("failed toggle must not mutate the selection")
	}
}

func TestQuotaEnforcement(t *testing.T) {
	b := NewBuilder(smallQuotas())
	b.SelectSize(sizeItem("small"))

	first := categoryItem("bife", enum.CategoryProtein)
	second := categoryItem("frango", enum.CategoryProtein)

	if err := b.ToggleCategoryItem(first); err != nil {
		t.Fatalf("first protein: %v", err)
	}
	if err := b.ToggleCategoryItem(second); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}

	sel := b.Selection()
	if len(sel) != 1 || sel[0].ID != "bife" {
		t.Fatalf("rejection must leave the first selection intact, got %v", sel)
	}

	// Deselect then reselect the other one succeeds.
	if err := b.ToggleCategoryItem(first); err != nil {
		t.Fatalf("deselect: %v", err)
	}
	if err := b.ToggleCategoryItem(second); err != nil {
		t.Fatalf("reselect other protein: %v", err)
	}
}

func TestQuotaDefaultsToZeroForAbsentCategory(t *testing.T) {
	b := NewBuilder(smallQuotas())
	b.SelectSize(sizeItem("small"))

	err := b.ToggleCategoryItem(categoryItem("arroz", enum.CategoryStarchSide))
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("category absent from quota row must reject, got %v", err)
	}
}

func TestSizeSwitchClearsSelection(t *testing.T) {
	quotas := QuotaTable{
		"small": {enum.CategoryProtein: 1},
		"large": {enum.CategoryProtein: 3},
	}
	b := NewBuilder(quotas)
	b.SelectSize(sizeItem("small"))
	if err := b.ToggleCategoryItem(categoryItem("bife", enum.CategoryProtein)); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	b.SelectSize(sizeItem("large"))
	if len(b.Selection()) != 0 {
		t.Error("switching sizes must discard non-size selections")
	}

	cart := NewCart()
	if err := b.CommitToCart(cart); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection after size switch, got %v", err)
	}
}

func TestSameSizeReselectIsNoOp(t *testing.T) {
	b := NewBuilder(smallQuotas())
	small := sizeItem("small")
	b.SelectSize(small)
	if err := b.ToggleCategoryItem(categoryItem("bife", enum.CategoryProtein)); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	b.SelectSize(small)
	if len(b.Selection()) != 1 {
		t.Error("re-selecting the held size must keep the selection")
	}
}

func TestCommitToCartSnapshotsAndResets(t *testing.T) {
	b := NewBuilder(smallQuotas())
	cart := NewCart()

	if err := b.CommitToCart(cart); !errors.Is(err, ErrNoSizeSelected) {
		t.Fatalf("expected ErrNoSizeSelected, got %v", err)
	}

	b.SelectSize(sizeItem("small"))
	if err := b.CommitToCart(cart); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}

	if err := b.ToggleCategoryItem(categoryItem("bife", enum.CategoryProtein)); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := b.CommitToCart(cart); err != nil {
		t.Fatalf("commit: %v", err)
	}

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 cart line, got %d", len(lines))
	}
	line := lines[0]
	if line.Kind != enum.CartLineMeal || line.Quantity != 1 {
		t.Errorf("unexpected meal line %+v", line)
	}
	if len(line.Items) != 2 || line.Items[0].ID != "small" {
		t.Errorf("meal line must snapshot size first, got %v", line.Items)
	}

	// Builder is idle again.
	if _, ok := b.Size(); ok {
		t.Error("commit must reset the size")
	}
	if len(b.Selection()) != 0 {
		t.Error("commit must reset the selection")
	}
}

func TestExtraQuantityCounter(t *testing.T) {
	cart := NewCart()
	coca := categoryItem("coca", enum.CategoryDrink)

	cart.AdjustExtraQuantity(coca, -1)
	if cart.Len() != 0 {
		t.Fatal("negative delta with no line must not create one")
	}

	cart.AdjustExtraQuantity(coca, 1)
	if got := cart.ExtraQuantity("coca"); got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}

	cart.AdjustExtraQuantity(coca, 2)
	if got := cart.ExtraQuantity("coca"); got != 3 {
		t.Fatalf("expected quantity 3, got %d", got)
	}

	cart.AdjustExtraQuantity(coca, -3)
	if cart.Len() != 0 {
		t.Error("dropping to zero must remove the line")
	}
}

func TestAdjustLineQuantityFloors(t *testing.T) {
	b := NewBuilder(smallQuotas())
	cart := NewCart()
	b.SelectSize(sizeItem("small"))
	if err := b.ToggleCategoryItem(categoryItem("bife", enum.CategoryProtein)); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := b.CommitToCart(cart); err != nil {
		t.Fatalf("commit: %v", err)
	}
	mealID := cart.Lines()[0].ID

	// Meal lines floor at 1.
	if err := cart.AdjustLineQuantity(mealID, -1); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if got := cart.Lines()[0].Quantity; got != 1 {
		t.Errorf("meal quantity must floor at 1, got %d", got)
	}

	if err := cart.AdjustLineQuantity(mealID, 2); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if got := cart.Lines()[0].Quantity; got != 3 {
		t.Errorf("expected quantity 3, got %d", got)
	}

	// Extra lines are removed at 0 through the same operation.
	cart.AdjustExtraQuantity(categoryItem("copo", enum.CategoryExtra), 1)
	var extraID string
	for _, ln := range cart.Lines() {
		if ln.Kind == enum.CartLineExtra {
			extraID = ln.ID
		}
	}
	if err := cart.AdjustLineQuantity(extraID, -1); err != nil {
		t.Fatalf("adjust extra: %v", err)
	}
	if cart.Len() != 1 {
		t.Error("extra line must be removed when quantity reaches 0")
	}

	if err := cart.AdjustLineQuantity("missing", 1); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("expected ErrLineNotFound, got %v", err)
	}
}

func TestRemoveLineAndTotal(t *testing.T) {
	b := NewBuilder(smallQuotas())
	cart := NewCart()
	b.SelectSize(sizeItem("small"))
	if err := b.ToggleCategoryItem(categoryItem("bife", enum.CategoryProtein)); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := b.CommitToCart(cart); err != nil {
		t.Fatalf("commit: %v", err)
	}

	coca := categoryItem("coca", enum.CategoryDrink)
	coca.Price = decimal.RequireFromString("6.00")
	cart.AdjustExtraQuantity(coca, 1)
	cart.AdjustExtraQuantity(coca, 2)

	// 18.00 meal + 3 * 6.00 drinks
	if got := cart.Total(); !got.Equal(decimal.RequireFromString("36.00")) {
		t.Errorf("expected total 36.00, got %s", got)
	}

	mealID := cart.Lines()[0].ID
	if err := cart.RemoveLine(mealID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if cart.Len() != 1 {
		t.Error("remove must delete the meal line")
	}
	if err := cart.RemoveLine("missing"); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("expected ErrLineNotFound, got %v", err)
	}
}
