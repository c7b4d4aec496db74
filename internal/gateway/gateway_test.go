// ABOUTME: Tests for the Gateway orchestrator
// ABOUTME: Runs real gRPC and HTTP servers and drives them with generated-style clients

package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/2389/people-gateway/internal/config"
	"github.com/2389/people-gateway/internal/store"
	pb "github.com/2389/people-gateway/proto/people"
)

// testConfig creates a minimal config for testing with available ports.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	// Find available ports
	grpcListener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find available gRPC port: %v", err)
	}
	grpcAddr := grpcListener.Addr().String()
	grpcListener.Close()

	httpListener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find available HTTP port: %v", err)
	}
	httpAddr := httpListener.Addr().String()
	httpListener.Close()

	return &config.Config{
		Server: config.ServerConfig{
			GRPCAddr:        grpcAddr,
			HTTPAddr:        httpAddr,
			ShutdownTimeout: 2 * time.Second,
		},
		Database: config.DatabaseConfig{
			Path: store.MemoryPath,
		},
		People: config.PeopleConfig{
			DeleteMode: config.DeleteByID,
		},
	}
}

// testLogger creates a silent logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startGateway runs gw until the test ends and waits for its HTTP side to answer.
func startGateway(t *testing.T, gw *Gateway) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- gw.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errCh:
			if err != nil {
				t.Errorf("Run() returned unexpected error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("gateway did not shutdown in time")
		}
	})

	healthURL := "http://" + gw.config.Server.HTTPAddr + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(healthURL)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
}

// dial connects to the gateway's gRPC address.
func dial(t *testing.T, gw *Gateway) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient(gw.config.Server.GRPCAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func httpGetBody(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestGatewayNew(t *testing.T) {
	cfg := testConfig(t)

	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	defer gw.Shutdown(context.Background())

	assert.Same(t, cfg, gw.config)
	assert.NotNil(t, gw.store)
	assert.NotNil(t, gw.journal)
	assert.True(t, strings.HasPrefix(gw.ServerID(), "people-gateway-"))
	assert.Equal(t, 0, gw.store.Count())
}

func TestGatewayNew_Seeded(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = config.SeedConfig{Enabled: true, Min: 3, Max: 4, RandomSeed: 7}

	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	defer gw.Shutdown(context.Background())

	assert.Equal(t, 3, gw.store.Count())
	assert.Equal(t, int32(3), gw.store.NextID())
}

func TestGatewayNew_InvalidSeedBounds(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = config.SeedConfig{Enabled: true, Min: 5, Max: 5}

	_, err := New(cfg, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeding store")
}

func TestGatewayRunAndShutdown(t *testing.T) {
	cfg := testConfig(t)

	gw, err := New(cfg, testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- gw.Run(ctx)
	}()

	// Give it time to start
	time.Sleep(100 * time.Millisecond)

	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Run() returned unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("gateway did not shutdown in time")
	}
}

func TestGatewayRun_AddressInUse(t *testing.T) {
	cfg := testConfig(t)

	blocker, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	require.NoError(t, err)
	defer blocker.Close()

	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	defer gw.Shutdown(context.Background())

	err = gw.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on gRPC address")
}

func TestHealthEndpoints(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = config.SeedConfig{Enabled: true, Min: 2, Max: 3, RandomSeed: 1}

	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	startGateway(t, gw)

	status, body := httpGetBody(t, "http://"+cfg.Server.HTTPAddr+"/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body)

	status, body = httpGetBody(t, "http://"+cfg.Server.HTTPAddr+"/health/ready")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready (2 people)", body)
}

func TestPingOverGRPC(t *testing.T) {
	cfg := testConfig(t)
	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	startGateway(t, gw)

	client := pb.NewPingServiceClient(dial(t, gw))
	resp, err := client.Ping(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.GetMessage(), "PONG to 127.0.0.1:"), resp.GetMessage())
}

// A caller holding only stock protobuf types must interoperate over the
// default proto codec: PingResponse and StringValue share field 1.
func TestPingOverGRPC_StockProtoTypes(t *testing.T) {
	cfg := testConfig(t)
	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	startGateway(t, gw)

	conn := dial(t, gw)
	out := &wrapperspb.StringValue{}
	err = conn.Invoke(context.Background(), pb.PingService_Ping_FullMethodName, &emptypb.Empty{}, out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.GetValue(), "PONG to 127.0.0.1:"), out.GetValue())

	// GetPerson for a missing id answers 404 in metadata, decoded into the
	// generated type from a request encoded by hand.
	req, err := proto.Marshal(&wrapperspb.Int32Value{Value: 42})
	require.NoError(t, err)
	var decoded pb.GetPersonRequest
	require.NoError(t, proto.Unmarshal(req, &decoded))

	resp := &pb.GetPersonResponse{}
	err = conn.Invoke(context.Background(), pb.PersonService_GetPerson_FullMethodName, &decoded, resp)
	require.NoError(t, err)
	assert.Equal(t, int32(404), resp.GetMetadata().GetStatus())
}

func TestPersonServiceOverGRPC(t *testing.T) {
	cfg := testConfig(t)
	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	startGateway(t, gw)

	client := pb.NewPersonServiceClient(dial(t, gw))
	ctx := context.Background()

	for i, name := range []string{"Ada", "Grace", "Linus"} {
		resp, err := client.CreatePerson(ctx, &pb.CreatePersonRequest{Person: &pb.Person{
			Name:  name,
			Email: strings.ToLower(name) + "@example.com",
			PhoneNumbers: []*pb.PhoneNumber{
				{Number: "555-010" + string(rune('0'+i)), Type: pb.PhoneType_WORK},
			},
		}})
		require.NoError(t, err)
		assert.Equal(t, int32(http.StatusCreated), resp.GetMetadata().GetStatus())
		require.NotNil(t, resp.CreatedId)
		assert.Equal(t, int32(i), resp.GetCreatedId())
	}

	got, err := client.GetPerson(ctx, &pb.GetPersonRequest{Id: 1})
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.GetRetrievedPerson().GetName())
	require.Len(t, got.GetRetrievedPerson().GetPhoneNumbers(), 1)
	assert.Equal(t, pb.PhoneType_WORK, got.GetRetrievedPerson().GetPhoneNumbers()[0].GetType())

	missing, err := client.GetPerson(ctx, &pb.GetPersonRequest{Id: 99})
	require.NoError(t, err)
	assert.Equal(t, "Person not found!", missing.GetMetadata().GetMessage())
	assert.Nil(t, missing.GetRetrievedPerson())

	list, err := client.GetPeople(ctx, &pb.GetPeopleRequest{StartingId: 0, EndingId: -1})
	require.NoError(t, err)
	assert.Len(t, list.GetRetrievedPeople(), 3)
	assert.Equal(t, "Number of people found: 3!", list.GetMetadata().GetMessage())

	bad, err := client.GetPeople(ctx, &pb.GetPeopleRequest{StartingId: -1, EndingId: 10})
	require.NoError(t, err)
	assert.Equal(t, int32(http.StatusBadRequest), bad.GetMetadata().GetStatus())

	// An explicitly empty email travels as present and is applied.
	updated, err := client.UpdatePerson(ctx, &pb.UpdatePersonRequest{Id: 0, Name: proto.String("Ada King"), Email: proto.String("")})
	require.NoError(t, err)
	assert.Equal(t, int32(http.StatusOK), updated.GetMetadata().GetStatus())
	assert.Equal(t, "Ada King", updated.GetUpdatedPerson().GetName())
	assert.Equal(t, "", updated.GetUpdatedPerson().GetEmail())
	assert.Len(t, updated.GetUpdatedPerson().GetPhoneNumbers(), 1)

	notFound, err := client.UpdatePerson(ctx, &pb.UpdatePersonRequest{Id: 99, Name: proto.String("x")})
	require.NoError(t, err)
	assert.Equal(t, int32(http.StatusNotFound), notFound.GetMetadata().GetStatus())

	deleted, err := client.DeletePerson(ctx, &pb.DeletePersonRequest{Id: 2})
	require.NoError(t, err)
	assert.Equal(t, "Deleted person with id 2! Remaining people: 2.", deleted.GetMetadata().GetMessage())
	require.NotNil(t, deleted.DeletedId)
	assert.Equal(t, int32(2), deleted.GetDeletedId())

	// Ids are never reused after a delete.
	again, err := client.CreatePerson(ctx, &pb.CreatePersonRequest{Person: &pb.Person{Name: "Ken"}})
	require.NoError(t, err)
	assert.Equal(t, int32(3), again.GetCreatedId())
}

func TestDeletePeopleStreamOverGRPC(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = config.SeedConfig{Enabled: true, Min: 10, Max: 11, RandomSeed: 42}

	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	startGateway(t, gw)

	client := pb.NewPersonServiceClient(dial(t, gw))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.DeletePeople(ctx)
	require.NoError(t, err)

	type ack struct {
		deletedID *int32
		count     int32
		remaining int32
		message   string
	}
	var acks []ack
	for _, id := range []int32{3, 42, 7} {
		require.NoError(t, stream.Send(&pb.DeletePersonRequest{Id: id}))
		resp, err := stream.Recv()
		require.NoError(t, err)
		acks = append(acks, ack{resp.DeletedId, resp.GetDeletedCount(), resp.GetRemaining(), resp.GetMetadata().GetMessage()})
	}

	require.NoError(t, stream.Send(&pb.DeletePersonRequest{Id: -1}))
	summary, err := stream.Recv()
	require.NoError(t, err)
	require.NoError(t, stream.CloseSend())

	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)

	require.Len(t, acks, 3)
	require.NotNil(t, acks[0].deletedID)
	assert.Equal(t, int32(3), *acks[0].deletedID)
	assert.Equal(t, int32(1), acks[0].count)
	assert.Equal(t, int32(9), acks[0].remaining)

	assert.Nil(t, acks[1].deletedID)
	assert.Equal(t, "Person with id 42 not found!", acks[1].message)

	require.NotNil(t, acks[2].deletedID)
	assert.Equal(t, int32(7), *acks[2].deletedID)
	assert.Equal(t, int32(2), acks[2].count)
	assert.Equal(t, int32(8), acks[2].remaining)

	assert.Equal(t, int32(2), summary.GetDeletedCount())
	assert.Equal(t, "Deleted 2 people in total!", summary.GetMetadata().GetMessage())
	assert.Equal(t, 8, gw.store.Count())
}

func TestDeletePeopleStream_CloseWithoutSentinel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = config.SeedConfig{Enabled: true, Min: 3, Max: 4, RandomSeed: 42}

	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	startGateway(t, gw)

	client := pb.NewPersonServiceClient(dial(t, gw))
	stream, err := client.DeletePeople(context.Background())
	require.NoError(t, err)

	require.NoError(t, stream.Send(&pb.DeletePersonRequest{Id: 0}))
	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, int32(1), first.GetDeletedCount())

	require.NoError(t, stream.CloseSend())
	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, gw.store.Count())
}

func TestDeletePersonByIndexOverGRPC(t *testing.T) {
	cfg := testConfig(t)
	cfg.People.DeleteMode = config.DeleteByIndex
	cfg.Seed = config.SeedConfig{Enabled: true, Min: 3, Max: 4, RandomSeed: 42}

	gw, err := New(cfg, testLogger())
	require.NoError(t, err)
	startGateway(t, gw)

	client := pb.NewPersonServiceClient(dial(t, gw))
	ctx := context.Background()

	resp, err := client.DeletePerson(ctx, &pb.DeletePersonRequest{Id: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(http.StatusOK), resp.GetMetadata().GetStatus())
	assert.Equal(t, int32(2), resp.GetDeletedId())

	resp, err = client.DeletePerson(ctx, &pb.DeletePersonRequest{Id: 5})
	require.NoError(t, err)
	assert.Equal(t, int32(http.StatusBadRequest), resp.GetMetadata().GetStatus())
	assert.Equal(t, "Index 5 is not valid! Index must be between 0 and 2!", resp.GetMetadata().GetMessage())
}
