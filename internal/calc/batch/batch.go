package batch

import (
	"errors"
	"sync"

	"physiquist/internal/calc"
	"physiquist/internal/formula"
	"physiquist/internal/present"
)

// ErrEmpty is returned for a batch without items.
var ErrEmpty = errors.New("batch: no items")

// MaxWorkers bounds how many items are calculated at once.
const MaxWorkers = 8

type Input struct {
	Items []calc.Request `json:"items"`
}

// Item is the outcome of one request. Exactly one of Result and Error is set.
type Item struct {
	Index   int             `json:"index"`
	Request calc.Request    `json:"request"`
	Result  *present.Result `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
	Kind    string          `json:"kind,omitempty"`
}

// Failed reports whether the item could not be calculated.
func (it Item) Failed() bool { return it.Result == nil }

type Result struct {
	Count  int    `json:"count"`
	Failed int    `json:"failed"`
	Items  []Item `json:"items"`
}

// Calculate runs every item. A failing item does not stop the others; its error is
// reported on the item. Items come back in input order.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrEmpty
	}
	items := make([]Item, len(in.Items))

	var wg sync.WaitGroup
	sem := make(chan struct{}, MaxWorkers)
	for i, req := range in.Items {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, req calc.Request) {
			defer wg.Done()
			defer func() { <-sem }()
			items[i] = one(i, req)
		}(i, req)
	}
	wg.Wait()

	out := Result{Count: len(items), Items: items}
	for _, it := range items {
		if it.Failed() {
			out.Failed++
		}
	}
	return out, nil
}

// Failure records an item that failed before it could be calculated, e.g. a
// spreadsheet row with an unreadable value.
func Failure(index int, req calc.Request, err error) Item {
	return Item{Index: index, Request: req, Error: err.Error(), Kind: formula.KindName(err)}
}

func one(i int, req calc.Request) Item {
	res, err := calc.Calculate(req)
	if err != nil {
		return Failure(i, req, err)
	}
	return Item{Index: i, Request: req, Result: &res}
}
