package portfolio

import (
	"github.com/shopspring/decimal"
)

// epsilon is the threshold under which a lot's remaining quantity is
// considered exhausted and the lot is dropped from its queue.
var epsilon = Q(decimal.New(1, -9))

// lot represents a single unconsumed purchase tranche of an asset, tracked
// separately for cost basis calculations.
type lot struct {
	Date     Date
	Quantity Quantity // remaining units
	Cost     Money    // total remaining cost, purchase fees included
}

// averageCost returns the cost per remaining unit, or zero for an empty lot.
func (l lot) averageCost() Money {
	if l.Quantity.IsZero() {
		return M(0, l.Cost.Currency())
	}
	return l.Cost.Div(l.Quantity)
}

// lots is a per-asset queue of open tax lots in acquisition order. Selling
// always consumes from the head (FIFO), never reorders.
type lots []lot

// buy appends a new lot at the tail of the queue. The lot cost folds the
// purchase fees in, so they flow into the cost basis.
func (l lots) buy(day Date, quantity Quantity, price, fees Money) lots {
	return append(l, lot{Date: day, Quantity: quantity, Cost: price.Mul(quantity).Add(fees)})
}

// sell consumes quantityToSell from the head of the queue and returns the
// remaining lots along with the realized delta against each consumed lot's
// average cost. Sell fees are not part of the delta, the caller accounts for
// them once against the realized total.
//
// Selling more than is held realizes the excess at a zero cost basis and
// leaves the queue empty.
func (l lots) sell(quantityToSell Quantity, price Money) (lots, Money) {
	realized := M(0, price.Currency())

	for len(l) > 0 && quantityToSell.GreaterThan(epsilon) {
		head := l[0]
		taken := head.Quantity.Min(quantityToSell)
		avg := head.averageCost()

		realized = realized.Add(price.Sub(avg).Mul(taken))

		// Shrink cost by avg*taken rather than a recomputed ratio to avoid drift.
		head.Quantity = head.Quantity.Sub(taken)
		head.Cost = head.Cost.Sub(avg.Mul(taken))
		quantityToSell = quantityToSell.Sub(taken)

		if head.Quantity.GreaterThan(epsilon) {
			l[0] = head
		} else {
			l = l[1:]
		}
	}

	if quantityToSell.GreaterThan(epsilon) {
		// Oversold: the excess has no lot to match, dispose at zero basis.
		realized = realized.Add(price.Mul(quantityToSell))
	}
	return l, realized
}

// totalQuantity sums the remaining units across all open lots.
func (l lots) totalQuantity() Quantity {
	var total Quantity
	for _, current := range l {
		total = total.Add(current.Quantity)
	}
	return total
}

// totalCost sums the remaining cost across all open lots.
func (l lots) totalCost() Money {
	var total Money
	for _, current := range l {
		total = total.Add(current.Cost)
	}
	return total
}
