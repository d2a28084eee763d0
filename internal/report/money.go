package report

// USDToKESRate is the fixed rate applied to *_usd source fields before
// they are combined with native-KSh amounts.
const USDToKESRate = 130.0

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyKES Currency = "KES"
)

// Money tags an amount with its currency. Aggregations never add a raw
// USD figure into a KSh total; the only path is InKES, so the conversion
// is applied exactly once per field.
type Money struct {
	Amount   float64
	Currency Currency
}

func USD(amount float64) Money {
	return Money{Amount: amount, Currency: CurrencyUSD}
}

func KES(amount float64) Money {
	return Money{Amount: amount, Currency: CurrencyKES}
}

// InKES returns the amount in KSh, converting from USD at the fixed rate.
func (m Money) InKES() float64 {
	if m.Currency == CurrencyUSD {
		return m.Amount * USDToKESRate
	}
	return m.Amount
}

// deref treats a missing numeric field as zero so sums never need
// nil checks at call sites.
func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// safeDiv returns 0 for a zero denominator, never NaN or Inf.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
