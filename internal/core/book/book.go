// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package book defines the bookstore catalog: the book variants, the ordered
catalog that owns them, and the service and HTTP handler built on top.

Core Responsibility:

  - Variants: physical (stocked, shipped), digital (unlimited, emailed) and
    display-only (never sold) books share one [Book] capability set.
  - Catalog: insertion-ordered collection supporting add, age-based purge and
    purchase by ISBN.
  - Fulfillment: a successful sale triggers exactly one shipping or email
    notification through injected collaborators.
*/
package book

import (
	"context"

	"github.com/taibuivan/quantumbooks/internal/platform/apperr"
	"github.com/taibuivan/quantumbooks/internal/platform/validate"
)

// # Domain Enums

// Kind identifies a book variant.
type Kind string

const (
	// KindPhysical is a stocked, shippable book.
	KindPhysical Kind = "physical"

	// KindDigital is a downloadable book delivered by email.
	KindDigital Kind = "digital"

	// KindDisplayOnly is a showcase item that is never sold.
	KindDisplayOnly Kind = "display_only"
)

// IsValid reports whether k is a recognised [Kind].
func (k Kind) IsValid() bool {
	switch k {
	case KindPhysical, KindDigital, KindDisplayOnly:
		return true
	}
	return false
}

// Field names used in validation errors.
const (
	FieldISBN        = "isbn"
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldYear        = "year"
	FieldPrice       = "price"
	FieldStock       = "stock"
	FieldKind        = "kind"
	FieldQuantity    = "quantity"
	FieldEmail       = "email"
	FieldMaxYearsOld = "max_years_old"
)

// # Capability Set

// Book is one catalog item. Implementations are [*PhysicalBook],
// [*DigitalBook] and [*DisplayOnlyBook].
type Book interface {
	ISBN() string
	Title() string
	Author() string
	Year() int
	Price() float64
	Kind() Kind

	// IsPurchasable has no side effects and does not depend on stock.
	IsPurchasable() bool

	// Buy sells order.Quantity copies and returns the amount paid.
	// A failed purchase leaves the book and the notifiers untouched.
	Buy(ctx context.Context, order Order, fulfil Fulfillment) (float64, error)

	// Listing returns a value snapshot of the book.
	Listing() Listing
}

// Order carries the arguments of a single purchase.
type Order struct {
	Quantity int    `json:"quantity"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// Listing is a read-only snapshot of a catalog entry.
type Listing struct {
	ISBN        string  `json:"isbn"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Year        int     `json:"year"`
	Price       float64 `json:"price"`
	Kind        Kind    `json:"kind"`
	Purchasable bool    `json:"purchasable"`
	Stock       *int    `json:"stock,omitempty"`
	FileFormat  string  `json:"file_format,omitempty"`
}

// Details holds the descriptive fields every variant carries.
type Details struct {
	ISBN   string
	Title  string
	Author string
	Year   int
	Price  float64
}

// details is embedded by each variant. Fields are unexported so the ISBN
// cannot change after construction.
type details struct {
	isbn   string
	title  string
	author string
	year   int
	price  float64
}

func newDetails(d Details, extra func(*validate.Validator)) (details, error) {
	validator := &validate.Validator{}
	validator.Required(FieldISBN, d.ISBN).MaxLen(FieldISBN, d.ISBN, 32)
	validator.Required(FieldTitle, d.Title).MaxLen(FieldTitle, d.Title, 500)
	validator.NonNegative(FieldPrice, d.Price)
	if extra != nil {
		extra(validator)
	}

	if err := validator.Err(); err != nil {
		return details{}, err
	}

	return details{
		isbn:   d.ISBN,
		title:  d.Title,
		author: d.Author,
		year:   d.Year,
		price:  d.Price,
	}, nil
}

func (d details) ISBN() string   { return d.isbn }
func (d details) Title() string  { return d.title }
func (d details) Author() string { return d.author }
func (d details) Year() int      { return d.year }
func (d details) Price() float64 { return d.price }

func (d details) listing(kind Kind, purchasable bool) Listing {
	return Listing{
		ISBN:        d.isbn,
		Title:       d.title,
		Author:      d.author,
		Year:        d.year,
		Price:       d.price,
		Kind:        kind,
		Purchasable: purchasable,
	}
}

// checkQuantity rejects non-positive quantities for every variant.
func checkQuantity(quantity int) error {
	return (&validate.Validator{}).Min(FieldQuantity, quantity, 1).Err()
}

// # Error Kinds

// ErrNotFound is returned when no catalog entry has the requested ISBN.
var ErrNotFound = apperr.NotFound("book")

// IsNotFound reports whether err means the ISBN is not in the catalog.
func IsNotFound(err error) bool {
	return apperr.HasCode(err, apperr.CodeNotFound)
}

// IsNotAvailable reports whether err means the book exists but cannot be sold.
func IsNotAvailable(err error) bool {
	return apperr.HasCode(err, apperr.CodeNotAvailable)
}
