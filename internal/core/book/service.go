// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/taibuivan/quantumbooks/internal/platform/apperr"
	"github.com/taibuivan/quantumbooks/internal/platform/clock"
	"github.com/taibuivan/quantumbooks/internal/platform/validate"
	"github.com/taibuivan/quantumbooks/pkg/fold"
	"github.com/taibuivan/quantumbooks/pkg/slice"
	"github.com/taibuivan/quantumbooks/pkg/uuid"
)

const tracerName = "github.com/taibuivan/quantumbooks/internal/core/book"

// Receipt records a successful purchase.
type Receipt struct {
	ID          string    `json:"id"`
	ISBN        string    `json:"isbn"`
	Kind        Kind      `json:"kind"`
	Quantity    int       `json:"quantity"`
	Amount      float64   `json:"amount"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// Draft is the input for creating a book of any kind.
type Draft struct {
	Kind       Kind    `json:"kind"`
	ISBN       string  `json:"isbn"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	Year       int     `json:"year"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	FileFormat string  `json:"file_format"`
}

// Filter narrows a catalog listing.
type Filter struct {
	Query           string // accent and case insensitive match on title or author
	Kind            Kind
	PurchasableOnly bool
}

// # Service Layer

// Service fronts the [Catalog] with logging, tracing and the clock.
type Service struct {
	catalog *Catalog
	clock   clock.Clock
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewService constructs a [Service] over catalog. A nil tracer falls back to
// the global OpenTelemetry provider.
func NewService(catalog *Catalog, clk clock.Clock, logger *slog.Logger, tracer trace.Tracer) *Service {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Service{
		catalog: catalog,
		clock:   clk,
		logger:  logger,
		tracer:  tracer,
	}
}

// AddBook appends an already-built book to the catalog.
func (service *Service) AddBook(ctx context.Context, book Book) error {
	if err := service.catalog.AddBook(book); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "book_added",
		slog.String("isbn", book.ISBN()),
		slog.String("title", book.Title()),
		slog.String("kind", string(book.Kind())),
	)
	return nil
}

// CreateBook builds the variant named by draft.Kind and adds it.
func (service *Service) CreateBook(ctx context.Context, draft Draft) (Listing, error) {
	err := (&validate.Validator{}).
		Required(FieldKind, string(draft.Kind)).
		OneOf(FieldKind, string(draft.Kind), string(KindPhysical), string(KindDigital), string(KindDisplayOnly)).
		Err()
	if err != nil {
		return Listing{}, err
	}

	book, err := FromDraft(draft)
	if err != nil {
		return Listing{}, err
	}

	if err := service.AddBook(ctx, book); err != nil {
		return Listing{}, err
	}
	return book.Listing(), nil
}

// FromDraft constructs the variant described by draft.
func FromDraft(draft Draft) (Book, error) {
	d := Details{
		ISBN:   draft.ISBN,
		Title:  draft.Title,
		Author: draft.Author,
		Year:   draft.Year,
		Price:  draft.Price,
	}

	var (
		book Book
		err  error
	)
	switch draft.Kind {
	case KindPhysical:
		book, err = NewPhysicalBook(d, draft.Stock)
	case KindDigital:
		book, err = NewDigitalBook(d, draft.FileFormat)
	case KindDisplayOnly:
		book, err = NewDisplayOnlyBook(d)
	default:
		err = (&validate.Validator{}).Custom(FieldKind, true, "Unknown book kind").Err()
	}

	// constructors return typed nil pointers on failure
	if err != nil {
		return nil, err
	}
	return book, nil
}

// # Lookups

// GetBook returns the first book with the given ISBN.
func (service *Service) GetBook(_ context.Context, isbn string) (Listing, error) {
	return service.catalog.Find(isbn)
}

// ListBooks returns one page of listings matching filter and the total number
// of matches. A negative offset starts at the first match; limit <= 0 means
// no limit.
func (service *Service) ListBooks(_ context.Context, filter Filter, limit, offset int) ([]Listing, int, error) {
	matches := slice.Filter(service.catalog.Listings(), func(l Listing) bool {
		if filter.Kind != "" && l.Kind != filter.Kind {
			return false
		}
		if filter.PurchasableOnly && !l.Purchasable {
			return false
		}
		return fold.Contains(l.Title, filter.Query) || fold.Contains(l.Author, filter.Query)
	})

	total := len(matches)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []Listing{}, total, nil
	}

	end := total
	if limit > 0 && limit < total-offset {
		end = offset + limit
	}
	return matches[offset:end], total, nil
}

// # Inventory Management

// RemoveOutdatedBooks purges books more than maxYearsOld years old relative
// to the current year of the service clock.
func (service *Service) RemoveOutdatedBooks(ctx context.Context, maxYearsOld int) ([]Listing, error) {
	if err := (&validate.Validator{}).Min(FieldMaxYearsOld, maxYearsOld, 0).Err(); err != nil {
		return nil, err
	}

	currentYear := clock.CurrentYear(service.clock)
	removed := service.catalog.RemoveOutdatedBooks(currentYear, maxYearsOld)

	service.logger.InfoContext(ctx, "outdated_books_removed",
		slog.Int("current_year", currentYear),
		slog.Int("max_years_old", maxYearsOld),
		slog.Int("removed", len(removed)),
	)

	if removed == nil {
		removed = []Listing{}
	}
	return removed, nil
}

// # Purchases

// BuyBook sells order.Quantity copies of the book with the given ISBN and
// returns a receipt. Errors carry NOT_FOUND, NOT_AVAILABLE or
// VALIDATION_ERROR codes.
func (service *Service) BuyBook(ctx context.Context, isbn string, order Order) (*Receipt, error) {
	ctx, span := service.tracer.Start(ctx, "book.buy",
		trace.WithAttributes(
			attribute.String("book.isbn", isbn),
			attribute.Int("order.quantity", order.Quantity),
		),
	)
	defer span.End()

	sold, amount, err := service.catalog.sell(ctx, isbn, order)
	if err != nil {
		code := apperr.CodeInternal
		if ae := apperr.As(err); ae != nil {
			code = ae.Code
		}
		span.SetAttributes(attribute.String("error.code", code))
		span.SetStatus(codes.Error, err.Error())

		service.logger.WarnContext(ctx, "book_purchase_failed",
			slog.String("isbn", isbn),
			slog.Int("quantity", order.Quantity),
			slog.String("code", code),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}

	receipt := &Receipt{
		ID:          uuid.New(),
		ISBN:        isbn,
		Kind:        sold.Kind(),
		Quantity:    order.Quantity,
		Amount:      amount,
		PurchasedAt: service.clock.Now().UTC(),
	}

	span.SetAttributes(
		attribute.String("receipt.id", receipt.ID),
		attribute.Float64("receipt.amount", amount),
	)
	span.SetStatus(codes.Ok, "")
	service.logger.InfoContext(ctx, "book_purchased",
		slog.String("isbn", isbn),
		slog.String("receipt_id", receipt.ID),
		slog.Int("quantity", order.Quantity),
		slog.Float64("amount", amount),
	)
	return receipt, nil
}
