package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	peoplerender "github.com/bnema/people-cli/internal/adapters/render/people"
	"github.com/bnema/people-cli/internal/application"
	"github.com/bnema/people-cli/internal/config"
	"github.com/bnema/people-cli/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

type personOutput struct {
	Name string  `json:"name" toml:"name"`
	Age  float64 `json:"age" toml:"age"`
}

// TOML has no top-level arrays, so people are emitted as [[people]] tables.
type peopleTOMLOutput struct {
	People []personOutput `toml:"people"`
}

func (a *app) outputFormat(flagValue string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flagValue))
	if format == "" {
		format = a.settings.Output.Format
	}

	if err := config.ValidateOutputFormat(format); err != nil {
		return "", err
	}

	return format, nil
}

func writePeopleOutput(cmd *cobra.Command, app *app, controller *application.Controller, format string) error {
	people := toPeopleOutput(controller.People())

	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(people)
	case config.OutputTOML:
		enc := toml.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(peopleTOMLOutput{People: people})
	}

	rendered := app.peopleRenderer(controller.People(), peoplerender.RenderOptions{
		Title:       "People @ " + apiAddress(),
		RefreshedAt: controller.RefreshedAt(),
	})

	_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func toPeopleOutput(people []domain.Person) []personOutput {
	output := make([]personOutput, 0, len(people))
	for _, person := range people {
		output = append(output, personOutput{Name: person.Name, Age: person.Age})
	}

	return output
}
