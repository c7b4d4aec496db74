// ABOUTME: DeletePeople bidirectional streaming handler
// ABOUTME: Acks each id as it arrives and sends a summary when the -1 sentinel is read

package people

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	pb "github.com/2389/people-gateway/proto/people"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

type sessionState int

const (
	sessionListening sessionState = iota
	sessionFinishing
	sessionClosed
)

func (s sessionState) String() string {
	switch s {
	case sessionListening:
		return "listening"
	case sessionFinishing:
		return "finishing"
	case sessionClosed:
		return "closed"
	default:
		return fmt.Sprintf("sessionState(%d)", int(s))
	}
}

// deleteSession tracks one DeletePeople stream. Each stream has its own
// session; the only shared state is the store. remaining is the store size
// last observed by this session.
type deleteSession struct {
	state     sessionState
	deleted   int32
	remaining int32
}

// DeletePeople reads ids from the stream and deletes each one by id, sending
// one ack per id in arrival order. Missing ids are acknowledged without
// aborting the stream. Reading the sentinel sends a summary and ends the call.
// A caller that half-closes or cancels before the sentinel ends the call
// cleanly without a summary.
func (s *Service) DeletePeople(stream pb.PersonService_DeletePeopleServer) error {
	ctx := stream.Context()
	sess := &deleteSession{state: sessionListening, remaining: int32(s.store.Count())}

	for sess.state == sessionListening {
		req, err := stream.Recv()
		if err != nil {
			sess.state = sessionClosed
			if errors.Is(err, io.EOF) {
				s.logger.DebugContext(ctx, "delete stream closed by caller", "deleted", sess.deleted)
				return nil
			}
			if status.Code(err) == codes.Canceled || ctx.Err() != nil {
				s.logger.DebugContext(ctx, "delete stream cancelled", "deleted", sess.deleted)
				return nil
			}
			return status.Errorf(codes.Internal, "receiving delete request: %v", err)
		}

		if ctx.Err() != nil {
			sess.state = sessionClosed
			s.logger.DebugContext(ctx, "delete stream cancelled", "deleted", sess.deleted)
			return nil
		}

		if req.GetId() == StreamSentinel {
			sess.state = sessionFinishing
			break
		}

		ack := s.deleteStreamItem(ctx, sess, req.GetId())
		if err := stream.Send(ack); err != nil {
			sess.state = sessionClosed
			return status.Errorf(codes.Internal, "sending delete ack: %v", err)
		}
	}

	summary := &pb.DeletePeopleResponse{
		DeletedCount: sess.deleted,
		Remaining:    int32(s.store.Count()),
		Metadata:     envelope(http.StatusOK, "Deleted %d people in total!", sess.deleted),
	}
	sess.state = sessionClosed
	if err := stream.Send(summary); err != nil {
		return status.Errorf(codes.Internal, "sending delete summary: %v", err)
	}

	s.logger.InfoContext(ctx, "delete stream finished", "deleted", sess.deleted, "remaining", summary.Remaining)
	return nil
}

// deleteStreamItem deletes one id. A fault is contained to this item's ack,
// which then carries the last remaining count the session saw.
func (s *Service) deleteStreamItem(ctx context.Context, sess *deleteSession, id int32) *pb.DeletePeopleResponse {
	return guard(ctx, s.logger, "DeletePeople", func() (*pb.DeletePeopleResponse, error) {
		removed, remaining, ok := s.store.Remove(ctx, id)
		sess.remaining = int32(remaining)
		if !ok {
			return &pb.DeletePeopleResponse{
				DeletedCount: sess.deleted,
				Remaining:    sess.remaining,
				Metadata:     envelope(http.StatusOK, "Person with id %d not found!", id),
			}, nil
		}

		sess.deleted++
		return &pb.DeletePeopleResponse{
			DeletedId:    proto.Int32(removed.ID),
			DeletedCount: sess.deleted,
			Remaining:    sess.remaining,
			Metadata:     envelope(http.StatusOK, "Deleted person with id %d!", removed.ID),
		}, nil
	}, func(md *pb.ResponseMetadata) *pb.DeletePeopleResponse {
		return &pb.DeletePeopleResponse{
			DeletedCount: sess.deleted,
			Remaining:    sess.remaining,
			Metadata:     md,
		}
	})
}
