// ABOUTME: PersonService gRPC handlers over the record store
// ABOUTME: Holds the service struct, status helpers, pb conversions and the fault boundary

package people

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/2389/people-gateway/internal/store"
	pb "github.com/2389/people-gateway/proto/people"
)

// DeleteMode selects how DeletePerson interprets its id argument.
type DeleteMode string

const (
	// DeleteByID removes the record with the given id; absence is a successful "not found".
	DeleteByID DeleteMode = "id"
	// DeleteByIndex removes the record at the given position. Deprecated: use DeleteByID.
	DeleteByIndex DeleteMode = "index"
)

// StreamSentinel ends a DeletePeople stream.
const StreamSentinel int32 = -1

const internalErrorMessage = "Internal server error occurred!"

// Service implements the PersonService gRPC service.
type Service struct {
	pb.UnimplementedPersonServiceServer

	store      store.Store
	deleteMode DeleteMode
	logger     *slog.Logger
}

// NewService creates a PersonService backed by s. An empty mode means DeleteByID.
func NewService(s store.Store, mode DeleteMode, logger *slog.Logger) *Service {
	if mode == "" {
		mode = DeleteByID
	}
	return &Service{
		store:      s,
		deleteMode: mode,
		logger:     logger,
	}
}

// DeleteMode reports which DeletePerson variant the service runs.
func (s *Service) DeleteMode() DeleteMode {
	return s.deleteMode
}

func envelope(status int, format string, args ...any) *pb.ResponseMetadata {
	return &pb.ResponseMetadata{
		Message: fmt.Sprintf(format, args...),
		Status:  int32(status),
	}
}

func internalError() *pb.ResponseMetadata {
	return envelope(http.StatusInternalServerError, internalErrorMessage)
}

// guard is the handler boundary. Handler bodies return explicit errors; guard
// logs any error or panic and replaces the response with fault(internalError()),
// so a single request can never take the process down.
func guard[T any](ctx context.Context, logger *slog.Logger, method string, fn func() (T, error), fault func(*pb.ResponseMetadata) T) (resp T) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "handler panicked",
				"method", method,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			resp = fault(internalError())
		}
	}()

	var err error
	resp, err = fn()
	if err != nil {
		logger.ErrorContext(ctx, "handler failed", "method", method, "error", err)
		return fault(internalError())
	}
	return resp
}

func personFromPB(p *pb.Person) *store.Person {
	if p == nil {
		return &store.Person{}
	}
	return &store.Person{
		ID:     p.GetId(),
		Name:   p.GetName(),
		Email:  p.GetEmail(),
		Phones: phonesFromPB(p.GetPhoneNumbers()),
	}
}

func phonesFromPB(phones []*pb.PhoneNumber) []store.PhoneNumber {
	if len(phones) == 0 {
		return nil
	}
	out := make([]store.PhoneNumber, 0, len(phones))
	for _, ph := range phones {
		if ph == nil {
			continue
		}
		out = append(out, store.PhoneNumber{
			Number: ph.GetNumber(),
			Type:   store.PhoneType(ph.GetType()),
		})
	}
	return out
}

func personToPB(p *store.Person) *pb.Person {
	if p == nil {
		return nil
	}
	out := &pb.Person{
		Id:    p.ID,
		Name:  p.Name,
		Email: p.Email,
	}
	for _, ph := range p.Phones {
		out.PhoneNumbers = append(out.PhoneNumbers, &pb.PhoneNumber{
			Number: ph.Number,
			Type:   pb.PhoneType(ph.Type),
		})
	}
	return out
}
