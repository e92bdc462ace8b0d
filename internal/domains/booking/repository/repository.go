package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/booking/model"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/logger"
	gRepo "shareit/shared/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
)

var ErrNotFound = errors.New("booking not found")

// Booking is the persistence capability set of the booking lifecycle.
// Listings are ordered by start, latest first.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	// GetByID returns the zero Booking when id is unknown.
	GetByID(ctx context.Context, id string) (model.Booking, error)
	FindByBooker(ctx context.Context, bookerID string, state model.State, now time.Time) ([]model.Booking, error)
	FindByItemOwner(ctx context.Context, ownerID string, state model.State, now time.Time) ([]model.Booking, error)
	// ExistFinished reports whether bookerID has a booking of itemID that ended before now.
	ExistFinished(ctx context.Context, bookerID, itemID string, now time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id string, status model.Status, modifiedBy string, at time.Time) error
	// FindLastNext returns, per item, the latest booking starting before dayStart
	// and the earliest one starting at or after nextDayStart.
	FindLastNext(ctx context.Context, itemIDs []string, dayStart, nextDayStart time.Time) (map[string]model.LastNext, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

var listingOrder = gDto.QueryParams{
	SortBy:  fmt.Sprintf("%s.%s DESC, %s.%s", model.TableName, model.FieldStartDate, model.TableName, model.FieldID),
	SortDir: gDto.SortDirAsc,
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.Booking, error) {
	return r.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindByBooker(ctx context.Context, bookerID string, state model.State, now time.Time) ([]model.Booking, error) {
	filter := gDto.And(
		shared.FilterByID(bookerID, model.FieldBookerID, model.TableName),
		state.Filter(now),
	)

	return r.GetAll(ctx, listingOrder, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) FindByItemOwner(ctx context.Context, ownerID string, state model.State, now time.Time) ([]model.Booking, error) {
	filter := gDto.And(
		gDto.Filter{ArgName: "item_owner_id", Field: model.FieldItemOwnerID, Value: ownerID, Operator: gDto.FilterOperatorEq, Table: model.ItemTable},
		state.Filter(now),
	)

	return r.GetAll(ctx, listingOrder, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) ExistFinished(ctx context.Context, bookerID, itemID string, now time.Time) (bool, error) {
	filter := gDto.And(
		shared.FilterByID(bookerID, model.FieldBookerID, model.TableName),
		shared.FilterByID(itemID, model.FieldItemID, model.TableName),
		gDto.Filter{ArgName: "finished_before", Field: model.FieldEndDate, Value: now, Operator: gDto.FilterOperatorLess, Table: model.TableName},
	)

	return r.Exist(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, id string, status model.Status, modifiedBy string, at time.Time) error {
	affected, err := r.Update(ctx, map[string]any{
		model.FieldStatus:        status.String(),
		constant.FieldModifiedAt: at,
		constant.FieldModifiedBy: modifiedBy,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *repositoryImpl) FindLastNext(ctx context.Context, itemIDs []string, dayStart, nextDayStart time.Time) (res map[string]model.LastNext, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindLastNext")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = make(map[string]model.LastNext, len(itemIDs))
	if len(itemIDs) == 0 {
		return res, nil
	}

	last, err := r.selectLastNext(ctx, buildLastNextQuery(r.SelectColumns(), r.Join(), itemIDs, dayStart, true))
	if err != nil {
		return nil, err
	}

	next, err := r.selectLastNext(ctx, buildLastNextQuery(r.SelectColumns(), r.Join(), itemIDs, nextDayStart, false))
	if err != nil {
		return nil, err
	}

	for i := range last {
		entry := res[last[i].ItemID]
		entry.Last = &last[i]
		res[last[i].ItemID] = entry
	}

	for i := range next {
		entry := res[next[i].ItemID]
		entry.Next = &next[i]
		res[next[i].ItemID] = entry
	}

	return res, nil
}

func (r *repositoryImpl) selectLastNext(ctx context.Context, builder sq.SelectBuilder) ([]model.Booking, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build last/next query: %w", err)
	}

	var bookings []model.Booking
	if err = r.db.Read.SelectContext(ctx, &bookings, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to select last/next bookings: %w", err)
	}

	return bookings, nil
}

// buildLastNextQuery keeps one row per item: the latest start before boundary when last is set,
// otherwise the earliest start at or after boundary.
func buildLastNextQuery(columns []string, join string, itemIDs []string, boundary time.Time, last bool) sq.SelectBuilder {
	startColumn := model.TableName + "." + model.FieldStartDate
	itemColumn := model.TableName + "." + model.FieldItemID
	idColumn := model.TableName + "." + model.FieldID

	builder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(columns...).
		Options(fmt.Sprintf("DISTINCT ON (%s)", itemColumn)).
		From(model.TableName).
		JoinClause(join).
		Where(sq.Eq{itemColumn: itemIDs})

	if last {
		return builder.
			Where(sq.Lt{startColumn: boundary}).
			OrderBy(itemColumn, startColumn+" DESC", idColumn)
	}

	return builder.
		Where(sq.GtOrEq{startColumn: boundary}).
		OrderBy(itemColumn, startColumn+" ASC", idColumn)
}
