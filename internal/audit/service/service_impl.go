package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/stayloop/leasebill/internal/audit/domain"
	"github.com/stayloop/leasebill/internal/auditcontext"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recorder writes audit entries alongside business writes.
type Recorder interface {
	RecordTx(ctx context.Context, tx *gorm.DB, record Record) error
	List(ctx context.Context, filter auditdomain.ListFilter) ([]*auditdomain.AuditLog, error)
}

// Record describes a single auditable action.
type Record struct {
	BookingID  *snowflake.ID
	Action     string
	TargetType string
	TargetID   string
	Metadata   map[string]any
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  auditdomain.Repository
	genID *snowflake.Node
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Repo  auditdomain.Repository
	GenID *snowflake.Node
}

func NewService(p ServiceParam) Recorder {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("audit.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

// RecordTx resolves the acting identity from the request context and
// writes the entry inside the caller's transaction.
func (s *Service) RecordTx(ctx context.Context, tx *gorm.DB, record Record) error {
	actorType, actorID := auditcontext.ActorFromContext(ctx)
	if actorType == "" {
		actorType = string(auditdomain.ActorTypeSystem)
	}

	metadata := datatypes.JSONMap{}
	for key, value := range record.Metadata {
		metadata[key] = value
	}
	if requestID := auditcontext.RequestIDFromContext(ctx); requestID != "" {
		metadata["request_id"] = requestID
	}

	entry := &auditdomain.AuditLog{
		ID:         s.genID.Generate(),
		BookingID:  record.BookingID,
		ActorType:  actorType,
		Action:     record.Action,
		TargetType: record.TargetType,
		Metadata:   metadata,
	}
	if actorID != "" {
		entry.ActorID = &actorID
	}
	if record.TargetID != "" {
		entry.TargetID = &record.TargetID
	}
	if ip := auditcontext.IPAddressFromContext(ctx); ip != "" {
		entry.IPAddress = &ip
	}
	if userAgent := auditcontext.UserAgentFromContext(ctx); userAgent != "" {
		entry.UserAgent = &userAgent
	}

	if err := s.repo.Insert(ctx, tx, entry); err != nil {
		s.log.Warn("audit insert failed",
			zap.String("action", record.Action),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, filter auditdomain.ListFilter) ([]*auditdomain.AuditLog, error) {
	return s.repo.List(ctx, s.db, filter)
}
