// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package demo seeds the sample catalog and replays the store walkthrough:
three purchases (one per variant) followed by an age-based purge.

All output goes through the same "Quantum book store: " prefix the console
notifier uses, so the walkthrough reads as a single transcript.
*/
package demo

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taibuivan/quantumbooks/internal/core/book"
	"github.com/taibuivan/quantumbooks/internal/fulfillment"
)

// DefaultMaxYearsOld is the purge threshold used by the walkthrough.
const DefaultMaxYearsOld = 10

// Purchase is one scripted call to BuyBook.
type Purchase struct {
	ISBN  string
	Order book.Order
}

// Drafts returns the seed books in catalog order.
func Drafts() []book.Draft {
	return []book.Draft{
		{Kind: book.KindPhysical, ISBN: "111", Title: "Java 101", Author: "James", Year: 2015, Price: 100, Stock: 10},
		{Kind: book.KindDigital, ISBN: "222", Title: "Python Guide", Author: "Guido", Year: 2020, Price: 50, FileFormat: "pdf"},
		{Kind: book.KindDisplayOnly, ISBN: "333", Title: "Rare Book", Author: "Unknown", Year: 1980, Price: 999},
	}
}

// Purchases returns the scripted purchases, one per variant.
func Purchases() []Purchase {
	return []Purchase{
		{ISBN: "111", Order: book.Order{Quantity: 2, Email: "buyer@example.com", Address: "123 Cairo St"}},
		{ISBN: "222", Order: book.Order{Quantity: 1, Email: "user@example.com"}},
		{ISBN: "333", Order: book.Order{Quantity: 1}},
	}
}

// Seed adds the seed books to service, announcing each on out.
func Seed(ctx context.Context, service *book.Service, out io.Writer) error {
	for _, draft := range Drafts() {
		listing, err := service.CreateBook(ctx, draft)
		if err != nil {
			return fmt.Errorf("demo: seed %s: %w", draft.ISBN, err)
		}
		say(out, "Book added: "+listing.Title)
	}
	return nil
}

// Run performs the scripted purchases and the purge. Purchase failures are
// part of the script and are printed, not returned.
func Run(ctx context.Context, service *book.Service, out io.Writer, maxYearsOld int) error {
	for _, purchase := range Purchases() {
		receipt, err := service.BuyBook(ctx, purchase.ISBN, purchase.Order)
		if err != nil {
			say(out, err.Error())
			continue
		}
		say(out, "Paid amount = "+FormatAmount(receipt.Amount))
	}

	removed, err := service.RemoveOutdatedBooks(ctx, maxYearsOld)
	if err != nil {
		return fmt.Errorf("demo: purge: %w", err)
	}
	say(out, fmt.Sprintf("Outdated books removed: %d", len(removed)))

	remaining, _, err := service.ListBooks(ctx, book.Filter{}, 0, 0)
	if err != nil {
		return fmt.Errorf("demo: list: %w", err)
	}
	for _, listing := range remaining {
		say(out, describe(listing))
	}
	return nil
}

// FormatAmount renders a price with at least one decimal place, e.g. "200.0".
func FormatAmount(amount float64) string {
	formatted := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}

func describe(listing book.Listing) string {
	line := fmt.Sprintf("In catalog: %s %q (%s)", listing.ISBN, listing.Title, listing.Kind)
	if listing.Stock != nil {
		line += fmt.Sprintf(" stock=%d", *listing.Stock)
	}
	return line
}

func say(out io.Writer, message string) {
	_, _ = fmt.Fprintln(out, fulfillment.Prefix+message)
}
