package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"clearance/infras/otel"
	"clearance/infras/postgres"
	"clearance/internal/domains/booking/model"
	"clearance/shared/constant"
	gDto "clearance/shared/dto"
	"clearance/shared/logger"
)

// Booking stores whole aggregates. Put is create-or-replace guarded by the
// aggregate version.
type Booking interface {
	Get(ctx context.Context, id string) (model.Booking, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Booking, int, error)
	Put(ctx context.Context, booking model.Booking) (model.Booking, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[model.BookingStatus]int, error)
}

type row struct {
	ID      string `db:"id"`
	Version int64  `db:"version"`
	Data    []byte `db:"data"`
}

func (r row) toModel() (model.Booking, error) {
	var booking model.Booking

	if err := json.Unmarshal(r.Data, &booking); err != nil {
		return model.Booking{}, fmt.Errorf("failed to decode booking %s: %w", r.ID, err)
	}

	booking.Version = r.Version

	return booking, nil
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) scope(ctx context.Context, name string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, name))
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (booking model.Booking, err error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	query := repo.db.Read.Rebind(fmt.Sprintf("SELECT %s, %s, %s FROM %s WHERE %s = ?",
		model.FieldID, model.FieldVersion, model.FieldData, model.TableName, model.FieldID))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var r row

	err = repo.db.Read.GetContext(ctx, &r, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, model.ErrBookingNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return r.toModel()
}

// likeEscaper makes search text match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func whereClause(filter model.ListFilter) (string, []any) {
	conditions := []string{}
	args := []any{}

	if filter.Status != "" {
		conditions = append(conditions, model.FieldStatus+" = ?")
		args = append(args, string(filter.Status))
	}

	if filter.CustomerID != "" {
		conditions = append(conditions, model.FieldCustomerID+" = ?")
		args = append(args, filter.CustomerID)
	}

	if filter.Search != "" {
		conditions = append(conditions, "LOWER("+model.FieldBookingNumber+") LIKE ? ESCAPE '\\'")
		args = append(args, likeEscaper.Replace(strings.ToLower(filter.Search))+"%")
	}

	if filter.CreatedFrom != "" {
		conditions = append(conditions, fieldCreatedDate+" >= ?")
		args = append(args, filter.CreatedFrom)
	}

	if filter.CreatedTo != "" {
		conditions = append(conditions, fieldCreatedDate+" <= ?")
		args = append(args, filter.CreatedTo)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func orderClause(params gDto.QueryParams) string {
	sortBy := model.FieldCreatedAt
	if slices.Contains(model.SortableFields, params.SortBy) {
		sortBy = params.SortBy
	}

	sortDir := gDto.SortDirDesc
	if params.SortDir == gDto.SortDirAsc {
		sortDir = gDto.SortDirAsc
	}

	// id breaks ties so pages are stable.
	return fmt.Sprintf(" ORDER BY %s %s, %s ASC", sortBy, sortDir, model.FieldID)
}

func (repo *repositoryImpl) List(ctx context.Context, filter model.ListFilter) (bookings []model.Booking, total int, err error) {
	ctx, scope := repo.scope(ctx, "List")
	defer scope.End()

	where, args := whereClause(filter)

	countQuery := repo.db.Read.Rebind("SELECT COUNT(*) FROM " + model.TableName + where)
	if err = repo.db.Read.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, 0, fmt.Errorf("failed to count data (%s): %w", model.EntityName, err)
	}

	query := fmt.Sprintf("SELECT %s, %s, %s FROM %s%s%s",
		model.FieldID, model.FieldVersion, model.FieldData, model.TableName, where, orderClause(filter.Params))

	if filter.Params.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Params.Limit, filter.Params.Offset())
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []row{}
	if err = repo.db.Read.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, 0, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	bookings = make([]model.Booking, 0, len(rows))

	for _, r := range rows {
		booking, err := r.toModel()
		if err != nil {
			scope.TraceError(err)

			return nil, 0, err
		}

		bookings = append(bookings, booking)
	}

	return bookings, total, nil
}

func columnValues(booking model.Booking) (map[string]any, error) {
	data, err := json.Marshal(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking %s: %w", booking.ID, err)
	}

	return map[string]any{
		model.FieldID:            booking.ID,
		model.FieldBookingNumber: booking.BookingNumber,
		model.FieldStatus:        string(booking.Status),
		model.FieldCustomerID:    booking.CustomerID,
		fieldCreatedDate:         booking.CreatedDate,
		model.FieldVersion:       booking.Version,
		model.FieldData:          string(data),
		model.FieldCreatedAt:     booking.CreatedAt,
		model.FieldModifiedAt:    booking.ModifiedAt,
	}, nil
}

// Put inserts a booking with version zero and replaces any other one when
// its version still matches the stored row. The returned booking carries the
// new version.
func (repo *repositoryImpl) Put(ctx context.Context, booking model.Booking) (saved model.Booking, err error) {
	ctx, scope := repo.scope(ctx, "Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = booking.Validate(); err != nil {
		return model.Booking{}, err
	}

	expected := booking.Version
	booking.Version++

	values, err := columnValues(booking)
	if err != nil {
		return model.Booking{}, err
	}

	if expected == 0 {
		err = repo.insert(ctx, scope, values)
	} else {
		values[fieldExpectedVersion] = expected
		err = repo.update(ctx, scope, booking.ID, values)
	}

	if err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

const (
	fieldCreatedDate     = "created_date"
	fieldExpectedVersion = "expected_version"
)

var insertColumns = []string{
	model.FieldID,
	model.FieldBookingNumber,
	model.FieldStatus,
	model.FieldCustomerID,
	fieldCreatedDate,
	model.FieldVersion,
	model.FieldData,
	model.FieldCreatedAt,
	model.FieldModifiedAt,
}

func (repo *repositoryImpl) insert(ctx context.Context, scope otel.Scope, values map[string]any) error {
	placeholders := make([]string, len(insertColumns))
	for i, col := range insertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		model.TableName, strings.Join(insertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, values); err != nil {
		// A second create of the same id or number races with the first.
		if exists, existsErr := repo.exists(ctx, values[model.FieldID], values[model.FieldBookingNumber]); existsErr == nil && exists {
			return model.ErrVersionConflict
		}

		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) update(ctx context.Context, scope otel.Scope, id string, values map[string]any) error {
	sets := []string{}
	for _, col := range insertColumns {
		if col == model.FieldID || col == model.FieldCreatedAt {
			continue
		}

		sets = append(sets, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s AND %s = :%s",
		model.TableName, strings.Join(sets, ", "),
		model.FieldID, model.FieldID, model.FieldVersion, fieldExpectedVersion)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, values)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	if affected > 0 {
		return nil
	}

	exists, err := repo.exists(ctx, id, nil)
	if err != nil {
		return err
	}

	if !exists {
		return model.ErrBookingNotFound
	}

	return model.ErrVersionConflict
}

func (repo *repositoryImpl) exists(ctx context.Context, id, bookingNumber any) (bool, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", model.TableName, model.FieldID)
	args := []any{id}

	if bookingNumber != nil {
		query += fmt.Sprintf(" OR %s = ?", model.FieldBookingNumber)
		args = append(args, bookingNumber)
	}

	var count int
	if err := repo.db.Write.GetContext(ctx, &count, repo.db.Write.Rebind(query), args...); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return count > 0, nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := repo.db.Write.Rebind(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", model.TableName, model.FieldID))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, id)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	if affected == 0 {
		return model.ErrBookingNotFound
	}

	return nil
}

func (repo *repositoryImpl) CountByStatus(ctx context.Context) (counts map[model.BookingStatus]int, err error) {
	ctx, scope := repo.scope(ctx, "CountByStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("SELECT %s, COUNT(*) AS total FROM %s GROUP BY %s",
		model.FieldStatus, model.TableName, model.FieldStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []struct {
		Status string `db:"status"`
		Total  int    `db:"total"`
	}

	if err = repo.db.Read.SelectContext(ctx, &rows, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to count data (%s): %w", model.EntityName, err)
	}

	counts = make(map[model.BookingStatus]int, len(rows))
	for _, r := range rows {
		counts[model.BookingStatus(r.Status)] = r.Total
	}

	return counts, nil
}
