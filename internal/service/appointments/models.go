package appointments

import "github.com/shopspring/decimal"

// TotalCheck сравнение сохраненной суммы турно с суммой его строк
type TotalCheck struct {
	Stored     decimal.Decimal
	Computed   decimal.Decimal
	Consistent bool
}
