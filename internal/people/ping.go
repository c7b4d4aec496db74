// ABOUTME: PingService liveness handler
// ABOUTME: Answers with the caller's peer address

package people

import (
	"context"
	"fmt"
	"log/slog"

	pb "github.com/2389/people-gateway/proto/people"
	"google.golang.org/grpc/peer"
	"google.golang.org/protobuf/types/known/emptypb"
)

// PingService implements the PingService gRPC service.
type PingService struct {
	pb.UnimplementedPingServiceServer

	logger *slog.Logger
}

// NewPingService creates a PingService.
func NewPingService(logger *slog.Logger) *PingService {
	return &PingService{logger: logger}
}

// Ping replies "PONG to <peer>". It does not touch the store.
func (p *PingService) Ping(ctx context.Context, _ *emptypb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Message: fmt.Sprintf("PONG to %s", peerAddr(ctx))}, nil
}

func peerAddr(ctx context.Context) string {
	if pr, ok := peer.FromContext(ctx); ok && pr.Addr != nil {
		return pr.Addr.String()
	}
	return "unknown"
}
