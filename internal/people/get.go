// ABOUTME: GetPerson and GetPeople RPC handlers
// ABOUTME: Absence is a successful empty answer; range validation rejects only one combination

package people

import (
	"context"
	"net/http"

	pb "github.com/2389/people-gateway/proto/people"
)

// GetPerson looks a person up by id. A missing id is answered with 200 and no
// person, since absence is an expected outcome rather than a fault.
func (s *Service) GetPerson(ctx context.Context, req *pb.GetPersonRequest) (*pb.GetPersonResponse, error) {
	return guard(ctx, s.logger, "GetPerson", func() (*pb.GetPersonResponse, error) {
		p, ok := s.store.FindByID(req.GetId())
		if !ok {
			return &pb.GetPersonResponse{
				Metadata: envelope(http.StatusOK, "Person not found!"),
			}, nil
		}
		return &pb.GetPersonResponse{
			RetrievedPerson: personToPB(p),
			Metadata:        envelope(http.StatusOK, "Person found!"),
		}, nil
	}, func(md *pb.ResponseMetadata) *pb.GetPersonResponse {
		return &pb.GetPersonResponse{Metadata: md}
	}), nil
}

// GetPeople returns the people in [starting_id, ending_id) by position, with
// ending_id -1 reading through the end.
//
// Only a negative start combined with an end past the collection is rejected.
// Every other combination, including a start beyond the end or an inverted
// window, is passed to the store and yields an empty or truncated list. The
// message reports the size of the whole collection, not of the returned slice,
// read in the same snapshot as the slice.
func (s *Service) GetPeople(ctx context.Context, req *pb.GetPeopleRequest) (*pb.GetPeopleResponse, error) {
	return guard(ctx, s.logger, "GetPeople", func() (*pb.GetPeopleResponse, error) {
		start, end := int(req.GetStartingId()), int(req.GetEndingId())
		people, count := s.store.ListRange(start, end)

		if start < 0 && end > count {
			return &pb.GetPeopleResponse{
				Metadata: envelope(http.StatusBadRequest,
					"Bad call parameters, starting id must be greater than 0, and ending must be smaller than %d", count),
			}, nil
		}

		out := make([]*pb.Person, 0, len(people))
		for _, p := range people {
			out = append(out, personToPB(p))
		}

		return &pb.GetPeopleResponse{
			RetrievedPeople: out,
			Metadata:        envelope(http.StatusOK, "Number of people found: %d!", count),
		}, nil
	}, func(md *pb.ResponseMetadata) *pb.GetPeopleResponse {
		return &pb.GetPeopleResponse{Metadata: md}
	}), nil
}
