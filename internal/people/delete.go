// ABOUTME: DeletePerson RPC handler in its id-based and deprecated index-based variants
// ABOUTME: The variant is fixed per service by DeleteMode

package people

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/2389/people-gateway/internal/store"
	pb "github.com/2389/people-gateway/proto/people"
	"google.golang.org/protobuf/proto"
)

// DeletePerson removes a person according to the service's DeleteMode.
func (s *Service) DeletePerson(ctx context.Context, req *pb.DeletePersonRequest) (*pb.DeletePersonResponse, error) {
	return guard(ctx, s.logger, "DeletePerson", func() (*pb.DeletePersonResponse, error) {
		switch s.deleteMode {
		case DeleteByIndex:
			return s.deleteByIndex(ctx, req.GetId())
		case DeleteByID:
			return s.deleteByID(ctx, req.GetId()), nil
		default:
			return nil, fmt.Errorf("unknown delete mode %q", s.deleteMode)
		}
	}, func(md *pb.ResponseMetadata) *pb.DeletePersonResponse {
		return &pb.DeletePersonResponse{Metadata: md}
	}), nil
}

func (s *Service) deleteByID(ctx context.Context, id int32) *pb.DeletePersonResponse {
	removed, remaining, ok := s.store.Remove(ctx, id)
	if !ok {
		return &pb.DeletePersonResponse{
			Metadata: envelope(http.StatusOK, "Person with id %d not found!", id),
		}
	}

	return &pb.DeletePersonResponse{
		DeletedId: proto.Int32(removed.ID),
		Metadata: envelope(http.StatusOK, "Deleted person with id %d! Remaining people: %d.",
			removed.ID, remaining),
	}
}

func (s *Service) deleteByIndex(ctx context.Context, index int32) (*pb.DeletePersonResponse, error) {
	removed, count, err := s.store.RemoveAt(ctx, int(index))
	if errors.Is(err, store.ErrIndexOutOfRange) {
		return &pb.DeletePersonResponse{
			Metadata: envelope(http.StatusBadRequest, "Index %d is not valid! Index must be between 0 and %d!",
				index, count),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("removing index %d: %w", index, err)
	}

	return &pb.DeletePersonResponse{
		DeletedId: proto.Int32(removed.ID),
		Metadata:  envelope(http.StatusOK, "Deleted person with id %d at index %d!", removed.ID, index),
	}, nil
}
