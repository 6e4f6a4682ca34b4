package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"clearance/config"
	"clearance/infras/otel"
	"clearance/infras/s3"
	"clearance/internal/domains/booking/model"
	"clearance/internal/domains/booking/model/dto"
	"clearance/internal/domains/booking/repository"
	"clearance/shared"
	"clearance/shared/cache"
	"clearance/shared/constant"
	gDto "clearance/shared/dto"
	"clearance/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheBookingStats  = "booking:stats"
	cacheGetAllJob     = "job:gets"
	cacheJobStats      = "job:stats"
	cacheGeneration    = "booking:generation"
)

type Booking interface {
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req dto.ListBookingsRequest, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.BookingStatsResponse, error)
	// Save stores a whole aggregate assembled elsewhere, such as a submitted wizard.
	Save(ctx context.Context, booking model.Booking) (model.Booking, error)

	OpenJobCreation(ctx context.Context, id string) (dto.JobDraftResponse, error)
	CreateJob(ctx context.Context, id string, req dto.CreateJobRequest) (dto.JobResponse, error)
	DeleteJob(ctx context.Context, id, jobID string) error
	UpdateJobStatus(ctx context.Context, id, jobID string, req dto.UpdateJobStatusRequest) (dto.JobResponse, error)
	GetAllJobs(ctx context.Context, req dto.ListJobsRequest, params gDto.QueryParams) (dto.GetJobsResponse, error)
	JobStats(ctx context.Context) (dto.JobStatsResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
	publisher Publisher
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3, publisher Publisher) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
		publisher: publisher,
	}
}

func (s *serviceImpl) scope(ctx context.Context, name string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+model.EntityName+"."+name)
}

// generation is bumped by every write and is part of every read key. A read
// that loaded before a write saves under the old generation, which later
// reads no longer look at.
func (s *serviceImpl) generation(ctx context.Context) string {
	var gen string
	if err := s.cache.Get(ctx, cacheGeneration, &gen); err != nil {
		return "0"
	}

	return gen
}

// cached fills res from the cache, or from load and then the cache.
func cached[T any](ctx context.Context, s *serviceImpl, key string, load func() (T, error)) (res T, err error) {
	key = shared.BuildCacheKey(key, s.generation(ctx))

	if err = s.cache.Get(ctx, key, &res); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return res, nil
	}

	res, err = load()
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")
		}
	}()

	return res, nil
}

// afterWrite moves reads to a new cache generation before returning, then
// drops the stale entries and publishes events in the background.
func (s *serviceImpl) afterWrite(ctx context.Context, id string, events ...Event) {
	if _, err := s.cache.Increment(ctx, cacheGeneration, 0); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to bump cache generation")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBooking, id)+":")

		for _, prefix := range []string{cacheGetAllBooking, cacheBookingStats, cacheGetAllJob, cacheJobStats} {
			shared.InvalidateCaches(c, s.cache, prefix)
		}

		s.publisher.Publish(c, events...)
	}()
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

func (s *serviceImpl) put(ctx context.Context, booking model.Booking) (model.Booking, error) {
	booking.Touch(timezone.Now())

	saved, err := s.repo.Put(ctx, booking)
	if err != nil {
		log.Error().Err(err).Str("id", booking.ID).Msg("failed to save booking")

		return model.Booking{}, fmt.Errorf("failed to save booking: %w", err)
	}

	return saved, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.scope(ctx, "Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cached(ctx, s, shared.BuildCacheKey(cacheGetBooking, id), func() (dto.BookingResponse, error) {
		var res dto.BookingResponse

		booking, err := s.load(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(booking)

		return res, nil
	})
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.ListBookingsRequest, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.scope(ctx, "GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, req.CacheParts()...)

	return cached(ctx, s, cacheKey, func() (dto.GetBookingsResponse, error) {
		var res dto.GetBookingsResponse

		bookings, total, err := s.repo.List(ctx, req.ToFilter(params))
		if err != nil {
			log.Error().Err(err).Msg("failed to get bookings")

			return res, fmt.Errorf("failed to get bookings: %w", err)
		}

		res.FromModels(bookings, total, params.Limit)

		return res, nil
	})
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.scope(ctx, "UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if err = booking.SetStatus(model.BookingStatus(req.Status)); err != nil {
		return res, err
	}

	booking, err = s.put(ctx, booking)
	if err != nil {
		return res, err
	}

	s.afterWrite(ctx, id, newEvent(EventBookingSaved, booking, booking.ModifiedAt))
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, booking model.Booking) (saved model.Booking, err error) {
	ctx, scope := s.scope(ctx, "Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	saved, err = s.put(ctx, booking)
	if err != nil {
		return model.Booking{}, err
	}

	s.afterWrite(ctx, saved.ID, newEvent(EventBookingSaved, saved, saved.ModifiedAt))

	return saved, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.scope(ctx, "Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.afterWrite(ctx, id, newEvent(EventBookingDeleted, booking, timezone.Now()))

	go func() {
		c := context.WithoutCancel(ctx)

		for _, key := range booking.Cargo.FileKeys() {
			if err := s.s3.DeleteFile(c, key); err != nil {
				log.Error().Err(err).Str("key", key).Msg("failed to delete booking file")
			}
		}
	}()

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.BookingStatsResponse, err error) {
	ctx, scope := s.scope(ctx, "Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cached(ctx, s, cacheBookingStats, func() (dto.BookingStatsResponse, error) {
		var res dto.BookingStatsResponse

		counts, err := s.repo.CountByStatus(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings")

			return res, fmt.Errorf("failed to count bookings: %w", err)
		}

		res.FromCounts(counts)

		return res, nil
	})
}

func (s *serviceImpl) OpenJobCreation(ctx context.Context, id string) (res dto.JobDraftResponse, err error) {
	ctx, scope := s.scope(ctx, "OpenJobCreation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking, model.OpenJobCreation(&booking))

	return res, nil
}

func (s *serviceImpl) CreateJob(ctx context.Context, id string, req dto.CreateJobRequest) (res dto.JobResponse, err error) {
	ctx, scope := s.scope(ctx, "CreateJob")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	job, err := model.CreateJob(&booking, req.ToDraft(), timezone.Now())
	if err != nil {
		return res, err
	}

	booking, err = s.put(ctx, booking)
	if err != nil {
		return res, err
	}

	s.afterWrite(ctx, id, newJobEvent(EventJobCreated, booking, job, job.CreatedAt))
	res.FromModel(job)

	return res, nil
}

func (s *serviceImpl) DeleteJob(ctx context.Context, id, jobID string) (err error) {
	ctx, scope := s.scope(ctx, "DeleteJob")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	job, err := booking.RemoveJob(jobID)
	if err != nil {
		return err
	}

	booking, err = s.put(ctx, booking)
	if err != nil {
		return err
	}

	s.afterWrite(ctx, id, newJobEvent(EventJobDeleted, booking, job, booking.ModifiedAt))

	return nil
}

func (s *serviceImpl) UpdateJobStatus(ctx context.Context, id, jobID string, req dto.UpdateJobStatusRequest) (res dto.JobResponse, err error) {
	ctx, scope := s.scope(ctx, "UpdateJobStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	previous, err := booking.FindJob(jobID)
	if err != nil {
		return res, err
	}

	job, changed, err := booking.TransitionJob(jobID, model.JobStatus(req.Status))
	if err != nil {
		return res, err
	}

	res.FromModel(job)

	if !changed {
		return res, nil
	}

	booking, err = s.put(ctx, booking)
	if err != nil {
		return dto.JobResponse{}, err
	}

	event := newJobEvent(EventJobStatusChanged, booking, job, booking.ModifiedAt)
	event.PreviousStatus = string(previous.Status)
	s.afterWrite(ctx, id, event)

	return res, nil
}

// allBookings loads every booking for the cross-booking job views.
func (s *serviceImpl) allBookings(ctx context.Context) ([]model.Booking, error) {
	bookings, _, err := s.repo.List(ctx, model.ListFilter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) GetAllJobs(ctx context.Context, req dto.ListJobsRequest, params gDto.QueryParams) (res dto.GetJobsResponse, err error) {
	ctx, scope := s.scope(ctx, "GetAllJobs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllJob, params, req.CacheParts()...)

	return cached(ctx, s, cacheKey, func() (dto.GetJobsResponse, error) {
		var res dto.GetJobsResponse

		bookings, err := s.allBookings(ctx)
		if err != nil {
			return res, err
		}

		rows := []dto.JobWithBookingResponse{}

		for _, booking := range bookings {
			for _, job := range booking.Jobs {
				if !req.Matches(booking, job) {
					continue
				}

				var row dto.JobWithBookingResponse
				row.FromModel(booking, job)
				rows = append(rows, row)
			}
		}

		// Newest first. CreatedAt strings share one zone and layout, so they sort lexically.
		slices.SortStableFunc(rows, func(a, b dto.JobWithBookingResponse) int {
			return cmp.Or(cmp.Compare(b.CreatedAt, a.CreatedAt), cmp.Compare(a.JobCode, b.JobCode))
		})

		res.FromPage(rows, params)

		return res, nil
	})
}

func (s *serviceImpl) JobStats(ctx context.Context) (res dto.JobStatsResponse, err error) {
	ctx, scope := s.scope(ctx, "JobStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cached(ctx, s, cacheJobStats, func() (dto.JobStatsResponse, error) {
		var res dto.JobStatsResponse

		bookings, err := s.allBookings(ctx)
		if err != nil {
			return res, err
		}

		res.FromBookings(bookings)

		return res, nil
	})
}
