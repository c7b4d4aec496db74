// ABOUTME: UpdatePerson RPC handler
// ABOUTME: Applies only the fields present in the request; an empty phone list leaves phones alone

package people

import (
	"context"
	"net/http"

	"github.com/2389/people-gateway/internal/store"
	pb "github.com/2389/people-gateway/proto/people"
)

// UpdatePerson applies a partial update. Unlike the read and delete paths, a
// missing id is reported with 404.
func (s *Service) UpdatePerson(ctx context.Context, req *pb.UpdatePersonRequest) (*pb.UpdatePersonResponse, error) {
	return guard(ctx, s.logger, "UpdatePerson", func() (*pb.UpdatePersonResponse, error) {
		updated, ok := s.store.Update(ctx, req.GetId(), patchFromPB(req))
		if !ok {
			return &pb.UpdatePersonResponse{
				Metadata: envelope(http.StatusNotFound, "Person not found!"),
			}, nil
		}

		return &pb.UpdatePersonResponse{
			UpdatedPerson: personToPB(updated),
			Metadata:      envelope(http.StatusOK, "Updated person with id %d!", updated.ID),
		}, nil
	}, func(md *pb.ResponseMetadata) *pb.UpdatePersonResponse {
		return &pb.UpdatePersonResponse{Metadata: md}
	}), nil
}

func patchFromPB(req *pb.UpdatePersonRequest) store.PersonPatch {
	var patch store.PersonPatch
	if req.Name != nil {
		name := req.GetName()
		patch.Name = &name
	}
	if req.Email != nil {
		email := req.GetEmail()
		patch.Email = &email
	}
	patch.Phones = phonesFromPB(req.GetPhones())
	return patch
}
