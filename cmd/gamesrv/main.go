package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/decred/slog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
	"github.com/cardczar/gameservice/pkg/server"
)

func requiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("unable to load environment variable `%s`", key)
	}
	return value, nil
}

func run() error {
	var (
		host       string
		port       int
		debugLevel string
	)
	flag.StringVar(&host, "host", "0.0.0.0", "Host to listen on")
	flag.IntVar(&port, "port", 50052, "Port to listen on")
	flag.StringVar(&debugLevel, "debuglevel", "info", "Logging level: trace, debug, info, warn, error")
	flag.Parse()

	backend := slog.NewBackend(os.Stdout)
	log := backend.Logger("SRVR")
	amqpLog := backend.Logger("AMQP")
	if level, ok := slog.LevelFromString(debugLevel); ok {
		log.SetLevel(level)
		amqpLog.SetLevel(level)
	}

	apiURI, err := requiredEnv("API_URI")
	if err != nil {
		return err
	}
	amqpURI, err := requiredEnv("AMQP_URI")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(apiURI, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial api service: %w", err)
	}
	defer conn.Close()
	fetcher := server.NewGrpcResourceFetcher(
		gamerpc.NewUserServiceClient(conn),
		gamerpc.NewCardpackServiceClient(conn),
	)

	notifier, err := server.NewAmqpNotifier(amqpURI, amqpLog)
	if err != nil {
		return fmt.Errorf("connect message queue: %w", err)
	}
	defer notifier.Close()

	gameSrv := server.NewServer(server.Config{
		Log:      log,
		Users:    fetcher,
		Cards:    fetcher,
		Notifier: notifier,
	})

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	grpcSrv := grpc.NewServer()
	gamerpc.RegisterGameServiceServer(grpcSrv, gameSrv)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting server on %s", lis.Addr())
		return grpcSrv.Serve(lis)
	})
	g.Go(func() error {
		return gameSrv.RunSweeper(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		grpcSrv.GracefulStop()
		return nil
	})
	return g.Wait()
}

func main() {
	if err := run(); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "gamesrv: %v\n", err)
		os.Exit(1)
	}
}
