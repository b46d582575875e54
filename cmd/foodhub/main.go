package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/foodhubapp/foodhub-client/internal/cart"
	"github.com/foodhubapp/foodhub-client/internal/config"
	"github.com/foodhubapp/foodhub-client/internal/logging"
	"github.com/foodhubapp/foodhub-client/internal/orders"
	"github.com/foodhubapp/foodhub-client/internal/storage"
	"github.com/foodhubapp/foodhub-client/pkg/apiclient"
	"github.com/foodhubapp/foodhub-client/pkg/events"
	"github.com/foodhubapp/foodhub-client/pkg/session"
)

func main() {
	email := flag.String("email", os.Getenv("FOODHUB_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("FOODHUB_PASSWORD"), "account password")
	role := flag.String("role", "user", "login role: user or admin")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)
	ctx := logging.IntoContext(context.Background(), logger)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, err := storage.OpenSQLite(cfg.StoragePath)
	if err != nil {
		log.Fatalf("storage error: %v", err)
	}
	defer kv.Close()

	api := apiclient.New(cfg.APIBaseURL)

	var sink cart.EventSink
	if cfg.KafkaAddress != "" {
		prod := events.NewProducer(cfg.KafkaAddress, cfg.KafkaTopic)
		defer func() {
			if err := prod.Close(); err != nil {
				logger.Warn("kafka close error", "error", err)
			}
		}()
		sink = prod
	}
	carts := cart.NewStore(kv, sink)

	sessions := session.NewManager(kv, api)
	user, err := sessions.Current()
	if err != nil {
		if *email == "" || *password == "" {
			log.Fatal("no stored session; pass -email and -password to log in")
		}
		user, err = sessions.Login(ctx, *email, *password, *role)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
		logger.Info("logged in", "user", user.ID, "role", user.Role)
	}

	switch user.Role {
	case "admin":
		flow := orders.NewAdminFlow(api, user.ID, cfg.AdminPollInterval)
		stopFlow := flow.Start(ctx)
		defer stopFlow()
		<-ctx.Done()
		for _, group := range flow.GroupByDate() {
			label := group.Date
			if group.Today {
				label = "today"
			}
			fmt.Printf("%s: %d orders\n", label, len(group.Orders))
		}
	default:
		if c, err := carts.Load(user.ID); err == nil && !c.Empty() {
			fmt.Printf("cart: %d restaurants, total %.2f\n", len(c), c.Total())
		}
		poller := orders.NewPoller(api, user.ID, cfg.PollInterval)
		stopPoller := poller.Start(ctx)
		defer stopPoller()
		<-ctx.Done()
		live, past, errMsg := poller.Snapshot()
		if errMsg != "" {
			fmt.Println(errMsg)
		}
		fmt.Printf("live orders: %d, past orders: %d\n", len(live), len(past))
	}

	logger.Info("shutdown complete")
}
