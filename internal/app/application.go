package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/azure"
	"github.com/allsafeASM/lookup/internal/config"
	"github.com/allsafeASM/lookup/internal/handlers"
	"github.com/allsafeASM/lookup/internal/logging"
	"github.com/allsafeASM/lookup/internal/messaging"
	"github.com/allsafeASM/lookup/internal/notification"
)

// Application is the queue worker that runs lookups from Service Bus
type Application struct {
	config           *config.Config
	components       *Components
	serviceBusClient *azure.ServiceBusClient
	blobClient       *azure.BlobStorageClient
	taskHandler      *handlers.TaskHandler
	ctx              context.Context
	cancel           context.CancelFunc
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *config.Config) (*Application, error) {
	app := &Application{config: cfg}

	if err := app.initialize(); err != nil {
		return nil, err
	}

	return app, nil
}

// initialize sets up all application components
func (app *Application) initialize() error {
	if err := app.config.ValidateWorker(); err != nil {
		return err
	}

	logging.SetupLogging(app.config.App.LogLevel)

	app.ctx, app.cancel = context.WithCancel(context.Background())

	components, err := NewComponents(app.ctx, app.config)
	if err != nil {
		return err
	}
	app.components = components

	if err := app.initializeAzureClients(); err != nil {
		return err
	}

	app.initializeTaskHandler()
	return nil
}

// initializeAzureClients creates Azure Service Bus and Blob Storage clients
func (app *Application) initializeAzureClients() error {
	var err error

	app.serviceBusClient, err = azure.NewServiceBusClient(
		app.config.Azure.ServiceBusConnectionString,
		app.config.Azure.QueueName,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize Service Bus client: %w", err)
	}

	app.blobClient, err = azure.NewBlobStorageClient(
		app.config.Azure.BlobStorageConnectionString,
		app.config.Azure.BlobContainerName,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize Blob Storage client: %w", err)
	}

	return nil
}

// initializeTaskHandler creates the task handler with all dependencies
func (app *Application) initializeTaskHandler() {
	var notifier handlers.Notifier
	if app.config.App.EnableNotifications && app.config.App.EnableDiscordNotifications {
		discord := notification.NewDiscordNotifier(
			app.config.App.DiscordWebhookURL,
			time.Duration(app.config.App.DiscordWebhookTimeout)*time.Second,
		)
		if discord.IsEnabled() {
			notifier = discord
		} else {
			gologger.Info().Msg("DISCORD_WEBHOOK_URL is not set, Discord notifications disabled")
		}
	}

	app.taskHandler = handlers.NewTaskHandler(
		app.components.Engine,
		app.blobClient,
		notifier,
		app.components.Metrics,
	)
}

// Start begins the application's main processing loop
func (app *Application) Start() error {
	gologger.Info().Msg("Starting AllSafe lookup worker with configuration:")
	gologger.Info().Msgf("  Service Bus Namespace: %s", app.config.Azure.ServiceBusNamespace)
	gologger.Info().Msgf("  Queue Name: %s", app.config.Azure.QueueName)
	gologger.Info().Msgf("  Blob Container: %s", app.config.Azure.BlobContainerName)
	gologger.Info().Msgf("  Poll Interval: %d seconds", app.config.App.PollInterval)
	gologger.Info().Msgf("  Provider Mode: %s", app.config.Lookup.ProviderMode)

	processingErr := make(chan error, 1)
	go app.startMessageProcessing(processingErr)

	return app.waitForShutdown(processingErr)
}

// startMessageProcessing begins processing messages from the queue
func (app *Application) startMessageProcessing(processingErr chan<- error) {
	pollInterval := time.Duration(app.config.App.PollInterval) * time.Second

	err := app.serviceBusClient.ProcessMessages(
		app.ctx,
		app.taskHandler.HandleTask,
		pollInterval,
		processorOptions(app.config.App),
	)

	processingErr <- err
}

// processorOptions converts the worker timing settings
func processorOptions(cfg config.AppConfig) messaging.Options {
	opts := messaging.DefaultOptions()
	opts.LockRenewalInterval = time.Duration(cfg.LockRenewalInterval) * time.Second
	opts.MaxLockRenewalTime = time.Duration(cfg.MaxLockRenewalTime) * time.Second
	opts.TaskTimeout = time.Duration(cfg.TaskTimeout) * time.Second
	return opts
}

// waitForShutdown waits for shutdown signals and handles graceful shutdown
func (app *Application) waitForShutdown(processingErr <-chan error) error {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChannel)

	select {
	case <-signalChannel:
		gologger.Info().Msg("Shutting down gracefully...")
		app.Shutdown()
		<-processingErr
		gologger.Info().Msg("Shutdown complete")
		return nil
	case err := <-processingErr:
		app.Shutdown()
		return err
	}
}

// Shutdown stops message processing and releases all clients
func (app *Application) Shutdown() {
	app.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.serviceBusClient != nil {
		if err := app.serviceBusClient.Close(ctx); err != nil {
			gologger.Warning().Msgf("Failed to close Service Bus client: %v", err)
		}
	}

	if app.components != nil {
		app.components.Close()
	}
}
