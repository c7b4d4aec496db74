// ABOUTME: CreatePerson RPC handler
// ABOUTME: Stores the payload under a fresh id and reports 201 Created

package people

import (
	"context"
	"net/http"

	pb "github.com/2389/people-gateway/proto/people"
	"google.golang.org/protobuf/proto"
)

// CreatePerson stores a new person. Any id in the payload is ignored; the store assigns one.
func (s *Service) CreatePerson(ctx context.Context, req *pb.CreatePersonRequest) (*pb.CreatePersonResponse, error) {
	return guard(ctx, s.logger, "CreatePerson", func() (*pb.CreatePersonResponse, error) {
		id := s.store.Create(ctx, personFromPB(req.GetPerson()))

		s.logger.DebugContext(ctx, "created person", "id", id)
		return &pb.CreatePersonResponse{
			CreatedId: proto.Int32(id),
			Metadata:  envelope(http.StatusCreated, "Successfully created person with id %d!", id),
		}, nil
	}, func(md *pb.ResponseMetadata) *pb.CreatePersonResponse {
		return &pb.CreatePersonResponse{Metadata: md}
	}), nil
}
