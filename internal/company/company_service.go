package company

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go-hrportal/internal/audit"
	companyerrors "go-hrportal/internal/company/errors"
	"go-hrportal/internal/geofence"
	"go-hrportal/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	OfficeLocationKeyPrefix = "office_location:"
	officeLocationTTL       = 1 * time.Hour
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetOfficeLocation(ctx context.Context, companyID string) (OfficeLocationResponse, error)
	UpdateOfficeLocation(ctx context.Context, companyID, actorID string, req UpdateOfficeLocationRequest) (OfficeLocationResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	audit  audit.Logger
	logger *zap.Logger
}

// NewService wires the office location service. rdb and auditLogger may be nil.
func NewService(repo Repository, rdb *redis.Client, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		audit:  auditLogger,
		logger: l,
	}
}

func (s *service) GetOfficeLocation(ctx context.Context, companyID string) (OfficeLocationResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return OfficeLocationResponse{}, companyerrors.ErrInvalidCompanyID
	}

	cacheKey := OfficeLocationKeyPrefix + companyID

	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp OfficeLocationResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight, clock-in pagi hari memanggil ini bersamaan
	// Hasilnya dipakai semua pemanggil, jadi jangan ikut batal bersama request pertama
	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		office, err := s.repo.FindOfficeByCompany(fillCtx, companyID)
		if err != nil {
			return nil, err
		}

		resp := mapToResponse(*office)

		// SetNX: an update that landed meanwhile already wrote the fresh value.
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.SetNX(fillCtx, cacheKey, string(jsonData), officeLocationTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return OfficeLocationResponse{}, err
	}

	return v.(OfficeLocationResponse), nil
}

func (s *service) UpdateOfficeLocation(
	ctx context.Context,
	companyID, actorID string,
	req UpdateOfficeLocationRequest,
) (OfficeLocationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return OfficeLocationResponse{}, companyerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return OfficeLocationResponse{}, companyerrors.ErrInvalidActorID
	}
	if req.Latitude == nil || req.Longitude == nil {
		return OfficeLocationResponse{}, companyerrors.ErrInvalidCoordinates
	}

	office := &OfficeLocation{
		CompanyID:     companyUUID,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		RadiusMeters:  req.RadiusMeters,
		Address:       strings.TrimSpace(req.Address),
		EnforceRadius: req.EnforceRadius,
		UpdatedBy:     &actorUUID,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := geofence.ValidateOffice(office.Office()); err != nil {
		return OfficeLocationResponse{}, err
	}

	if err := s.repo.UpsertOffice(ctx, office); err != nil {
		log.Error("upsert office location failed", zap.Error(err))
		return OfficeLocationResponse{}, err
	}

	resp := mapToResponse(*office)

	cacheKey := OfficeLocationKeyPrefix + companyID
	s.sf.Forget(cacheKey)
	if s.rdb != nil {
		s.refreshCache(ctx, cacheKey, resp, log)
	}

	s.audit.Log(ctx, audit.Entry{
		Action:       audit.ActionOfficeLocationUpdate,
		Message:      "office location updated",
		CompanyID:    companyID,
		ActorID:      actorID,
		ResourceType: "office_location",
		ResourceID:   companyID,
		Meta: map[string]any{
			"latitude":       office.Latitude,
			"longitude":      office.Longitude,
			"radius_meters":  office.RadiusMeters,
			"enforce_radius": office.EnforceRadius,
		},
	})

	log.Info("office location updated",
		zap.Float64("radius_meters", office.RadiusMeters),
		zap.Bool("enforce_radius", office.EnforceRadius),
	)

	return resp, nil
}

// refreshCache overwrites the cached office with the committed value and
// falls back to deleting the key.
func (s *service) refreshCache(ctx context.Context, cacheKey string, resp OfficeLocationResponse, log *zap.Logger) {
	jsonData, err := json.Marshal(resp)
	if err == nil {
		err = s.rdb.Set(ctx, cacheKey, string(jsonData), officeLocationTTL).Err()
	}
	if err == nil {
		return
	}

	log.Warn("refresh office location cache failed", zap.Error(err))
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		log.Warn("invalidate office location cache failed", zap.Error(err))
	}
}
