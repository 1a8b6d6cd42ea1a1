// Package estimate guesses the value of a free-text order. The result is for
// display only and is never charged.
package estimate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
)

// linePattern matches "<quantity>x <name>", e.g. "2x Ghost Brownie Squares".
var linePattern = regexp.MustCompile(`(?i)^(\d+)\s*x\s+(.+)$`)

// Line is one recognised segment of an order.
type Line struct {
	Quantity int
	Product  model.Product
}

// Lines splits details on commas and resolves every "<n>x <name>" segment
// against products. Unrecognised segments are dropped.
func Lines(details string, products []model.Product) []Line {
	var lines []Line
	for _, segment := range strings.Split(details, ",") {
		m := linePattern.FindStringSubmatch(strings.TrimSpace(segment))
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty <= 0 {
			continue
		}
		p, ok := match(m[2], products)
		if !ok {
			continue
		}
		lines = append(lines, Line{Quantity: qty, Product: p})
	}
	return lines
}

// Total sums price × quantity of the recognised lines. It returns nil when
// nothing in details matched a product.
func Total(details string, products []model.Product) *float64 {
	lines := Lines(details, products)
	if len(lines) == 0 {
		return nil
	}
	var total float64
	for _, l := range lines {
		total += l.Product.Price * float64(l.Quantity)
	}
	return &total
}

// match prefers an exact (case-insensitive) name, then the first product whose
// name contains the requested one or is contained in it.
func match(name string, products []model.Product) (model.Product, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return model.Product{}, false
	}
	for _, p := range products {
		if strings.ToLower(strings.TrimSpace(p.Name)) == want {
			return p, true
		}
	}
	for _, p := range products {
		have := strings.ToLower(strings.TrimSpace(p.Name))
		if have == "" {
			continue
		}
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return p, true
		}
	}
	return model.Product{}, false
}
