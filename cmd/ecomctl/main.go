package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-ecom-client/api"
	"github.com/jrsteele09/go-ecom-client/internal/config"
	"github.com/jrsteele09/go-ecom-client/session"
	"github.com/jrsteele09/go-ecom-client/session/filerepo"
	"github.com/jrsteele09/go-ecom-client/session/refresh"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running client: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Client stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	repo, err := filerepo.New(c.GetDataFolder())
	if err != nil {
		return fmt.Errorf("filerepo.New: %w", err)
	}

	device, err := session.EnsureDevice(repo, session.DeviceDesktop)
	if err != nil {
		return fmt.Errorf("session.EnsureDevice: %w", err)
	}

	client := api.New(c.GetBackendURL())
	store, err := session.NewStore(repo, client)
	if err != nil {
		return fmt.Errorf("session.NewStore: %w", err)
	}
	store.SetDevice(device.ID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := refresh.NewRunner(store, refresh.WithInterval(c.GetRefreshInterval()))
	runner.Start(ctx)
	log.Printf("Session keepalive running against %s\n", c.GetBackendURL())

	waitForStopSignal()
	runner.Stop()
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
