package cmd

import (
	"fmt"
	"net/http"

	"github.com/bnema/people-cli/internal/adapters/api/rest"
	peoplerender "github.com/bnema/people-cli/internal/adapters/render/people"
	"github.com/bnema/people-cli/internal/application"
	"github.com/bnema/people-cli/internal/config"
	"github.com/bnema/people-cli/internal/domain"
	"github.com/bnema/people-cli/internal/logging"
	"github.com/bnema/people-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// The API address is fixed at build time:
//
//	go build -ldflags "-X github.com/bnema/people-cli/cmd.apiServiceName=api.example -X github.com/bnema/people-cli/cmd.apiServicePort=8080"
var (
	apiServiceName = "localhost"
	apiServicePort = "3000"
)

type app struct {
	settings       config.Settings
	configDir      string
	logger         *zap.Logger
	api            ports.PeopleAPI
	peopleRenderer func([]domain.Person, peoplerender.RenderOptions) string
}

func wireApp() (*app, error) {
	configDir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	settings, err := config.Load(viper.New(), configDir)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger, err := logging.New(settings.Log)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	return &app{
		settings:  settings,
		configDir: configDir,
		logger:    logger,
		api: rest.Client{
			BaseURL:    rest.BaseURL(apiServiceName, apiServicePort),
			HTTPClient: http.DefaultClient,
		},
		peopleRenderer: peoplerender.View,
	}, nil
}

// apiAddress names the API the binary was built against, e.g. localhost:3000.
func apiAddress() string {
	return apiServiceName + ":" + apiServicePort
}

func (a *app) newController(logger *zap.Logger) *application.Controller {
	return application.NewController(a.api, logger, ports.SystemClock{})
}
