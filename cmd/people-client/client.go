// ABOUTME: Command implementations for people-client
// ABOUTME: Each command maps onto one PingService or PersonService call and prints the result

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fatih/color"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/2389/people-gateway/internal/seed"
	pb "github.com/2389/people-gateway/proto/people"
)

type client struct {
	ping   pb.PingServiceClient
	people pb.PersonServiceClient
	out    io.Writer
}

func newClient(conn grpc.ClientConnInterface, out io.Writer) *client {
	return &client{
		ping:   pb.NewPingServiceClient(conn),
		people: pb.NewPersonServiceClient(conn),
		out:    out,
	}
}

func (c *client) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "ping":
		return c.runPing(ctx)
	case "create":
		return c.runCreate(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "purge":
		return c.runPurge(ctx, args)
	case "demo":
		return c.runDemo(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// phoneList collects repeated -phone NUMBER[:TYPE] flags.
type phoneList []*pb.PhoneNumber

func (p *phoneList) String() string {
	parts := make([]string, 0, len(*p))
	for _, ph := range *p {
		parts = append(parts, ph.GetNumber()+":"+strings.ToLower(ph.GetType().String()))
	}
	return strings.Join(parts, ",")
}

func (p *phoneList) Set(v string) error {
	ph, err := parsePhone(v)
	if err != nil {
		return err
	}
	*p = append(*p, ph)
	return nil
}

// parsePhone parses NUMBER[:TYPE]. The type is matched case-insensitively.
func parsePhone(v string) (*pb.PhoneNumber, error) {
	number, typ := v, "mobile"
	if i := strings.LastIndex(v, ":"); i >= 0 {
		number, typ = v[:i], v[i+1:]
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("phone %q has no number", v)
	}

	ph := &pb.PhoneNumber{Number: number}
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "mobile":
		ph.Type = pb.PhoneType_MOBILE
	case "home":
		ph.Type = pb.PhoneType_HOME
	case "work":
		ph.Type = pb.PhoneType_WORK
	default:
		return nil, fmt.Errorf("phone %q has unknown type %q (want mobile, home or work)", v, typ)
	}
	return ph, nil
}

func parseID(args []string, i int, name string) (int32, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseInt(args[i], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %q", name, args[i])
	}
	return int32(v), nil
}

func (c *client) printMeta(md *pb.ResponseMetadata) {
	code := int(md.GetStatus())
	var tag *color.Color
	switch {
	case code >= http.StatusInternalServerError:
		tag = color.New(color.FgRed, color.Bold)
	case code >= http.StatusBadRequest:
		tag = color.New(color.FgYellow)
	default:
		tag = color.New(color.FgGreen)
	}
	tag.Fprintf(c.out, "[%d] ", code)
	fmt.Fprintln(c.out, md.GetMessage())
}

func (c *client) printPerson(p *pb.Person) {
	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)

	cyan.Fprintf(c.out, "#%d ", p.GetId())
	fmt.Fprint(c.out, p.GetName())
	if p.GetEmail() != "" {
		gray.Fprintf(c.out, " <%s>", p.GetEmail())
	}
	fmt.Fprintln(c.out)
	for _, ph := range p.GetPhoneNumbers() {
		gray.Fprintf(c.out, "    %-6s ", strings.ToLower(ph.GetType().String()))
		fmt.Fprintln(c.out, ph.GetNumber())
	}
}

func (c *client) runPing(ctx context.Context) error {
	resp, err := c.ping.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	fmt.Fprintln(c.out, resp.GetMessage())
	return nil
}

func (c *client) runCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	var phones phoneList
	fs.Var(&phones, "phone", "phone as NUMBER[:TYPE], repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("-name is required")
	}

	resp, err := c.people.CreatePerson(ctx, &pb.CreatePersonRequest{Person: &pb.Person{
		Name:         *name,
		Email:        *email,
		PhoneNumbers: phones,
	}})
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	c.printMeta(resp.GetMetadata())
	return nil
}

func (c *client) runGet(ctx context.Context, args []string) error {
	id, err := parseID(args, 0, "ID")
	if err != nil {
		return err
	}

	resp, err := c.people.GetPerson(ctx, &pb.GetPersonRequest{Id: id})
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	c.printMeta(resp.GetMetadata())
	if p := resp.GetRetrievedPerson(); p != nil {
		c.printPerson(p)
	}
	return nil
}

func (c *client) runList(ctx context.Context, args []string) error {
	start, end := int32(0), int32(-1)
	var err error
	if len(args) > 0 {
		if start, err = parseID(args, 0, "START"); err != nil {
			return err
		}
	}
	if len(args) > 1 {
		if end, err = parseID(args, 1, "END"); err != nil {
			return err
		}
	}

	resp, err := c.people.GetPeople(ctx, &pb.GetPeopleRequest{StartingId: start, EndingId: end})
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	c.printMeta(resp.GetMetadata())
	for _, p := range resp.GetRetrievedPeople() {
		c.printPerson(p)
	}
	return nil
}

func (c *client) runUpdate(ctx context.Context, args []string) error {
	id, err := parseID(args, 0, "ID")
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "new full name")
	email := fs.String("email", "", "new email address")
	var phones phoneList
	fs.Var(&phones, "phone", "replacement phone as NUMBER[:TYPE], repeatable")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	req := &pb.UpdatePersonRequest{Id: id, Phones: phones}
	// Only flags given on the command line are sent, so -email "" clears the email.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = proto.String(*name)
		case "email":
			req.Email = proto.String(*email)
		}
	})

	resp, err := c.people.UpdatePerson(ctx, req)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	c.printMeta(resp.GetMetadata())
	if p := resp.GetUpdatedPerson(); p != nil {
		c.printPerson(p)
	}
	return nil
}

func (c *client) runDelete(ctx context.Context, args []string) error {
	id, err := parseID(args, 0, "ID")
	if err != nil {
		return err
	}

	resp, err := c.people.DeletePerson(ctx, &pb.DeletePersonRequest{Id: id})
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	c.printMeta(resp.GetMetadata())
	return nil
}

func (c *client) runPurge(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("at least one ID is required")
	}
	ids := make([]int32, 0, len(args))
	for i := range args {
		id, err := parseID(args, i, "ID")
		if err != nil {
			return err
		}
		if id < 0 {
			return fmt.Errorf("ID must not be negative: %d", id)
		}
		ids = append(ids, id)
	}

	summary, err := c.purge(ctx, ids)
	if err != nil {
		return err
	}
	c.printMeta(summary.GetMetadata())
	return nil
}

// purge deletes ids over one DeletePeople stream, printing each ack, and
// returns the summary sent after the -1 sentinel.
func (c *client) purge(ctx context.Context, ids []int32) (*pb.DeletePeopleResponse, error) {
	stream, err := c.people.DeletePeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening delete stream: %w", err)
	}

	gray := color.New(color.FgHiBlack)
	for _, id := range ids {
		if err := stream.Send(&pb.DeletePersonRequest{Id: id}); err != nil {
			return nil, fmt.Errorf("sending id %d: %w", id, err)
		}
		ack, err := stream.Recv()
		if err != nil {
			return nil, fmt.Errorf("receiving ack for id %d: %w", id, err)
		}
		c.printMeta(ack.GetMetadata())
		gray.Fprintf(c.out, "    deleted=%d remaining=%d\n", ack.GetDeletedCount(), ack.GetRemaining())
	}

	if err := stream.Send(&pb.DeletePersonRequest{Id: -1}); err != nil {
		return nil, fmt.Errorf("sending end of stream: %w", err)
	}
	summary, err := stream.Recv()
	if err != nil {
		return nil, fmt.Errorf("receiving summary: %w", err)
	}
	if err := stream.CloseSend(); err != nil {
		return nil, fmt.Errorf("closing delete stream: %w", err)
	}
	if _, err := stream.Recv(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("finishing delete stream: %w", err)
	}
	return summary, nil
}

// runDemo exercises every call against freshly generated people.
func (c *client) runDemo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	n := fs.Int("n", 5, "number of people to create")
	randSeed := fs.Uint64("seed", 0, "random seed (0 picks one)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 2 {
		return errors.New("-n must be at least 2")
	}

	bold := color.New(color.Bold)
	step := func(title string) {
		fmt.Fprintln(c.out)
		bold.Fprintln(c.out, "== "+title)
	}

	step("Ping")
	if err := c.runPing(ctx); err != nil {
		return err
	}

	step("CreatePerson")
	faker := gofakeit.New(*randSeed)
	created := make([]int32, 0, *n)
	for range *n {
		rec := seed.Person(faker)
		p := &pb.Person{Name: rec.Name, Email: rec.Email}
		for _, ph := range rec.Phones {
			p.PhoneNumbers = append(p.PhoneNumbers, &pb.PhoneNumber{Number: ph.Number, Type: pb.PhoneType(ph.Type)})
		}
		resp, err := c.people.CreatePerson(ctx, &pb.CreatePersonRequest{Person: p})
		if err != nil {
			return fmt.Errorf("create: %w", err)
		}
		c.printMeta(resp.GetMetadata())
		if resp.CreatedId != nil {
			created = append(created, resp.GetCreatedId())
		}
	}
	if len(created) < 2 {
		return fmt.Errorf("demo needs two created people, got %d", len(created))
	}

	step("GetPerson")
	if err := c.runGet(ctx, []string{strconv.Itoa(int(created[0]))}); err != nil {
		return err
	}

	step("GetPeople")
	if err := c.runList(ctx, nil); err != nil {
		return err
	}

	step("UpdatePerson")
	if err := c.runUpdate(ctx, []string{strconv.Itoa(int(created[0])), "-name", faker.Name()}); err != nil {
		return err
	}

	step("DeletePerson")
	if err := c.runDelete(ctx, []string{strconv.Itoa(int(created[0]))}); err != nil {
		return err
	}

	step("DeletePeople")
	summary, err := c.purge(ctx, created[1:])
	if err != nil {
		return err
	}
	c.printMeta(summary.GetMetadata())
	return nil
}
