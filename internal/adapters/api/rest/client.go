package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/people-cli/internal/domain"
	"github.com/bnema/people-cli/internal/ports"
)

const (
	usersPath         = "/users"
	maxErrorBodyBytes = 1 << 20
	userAgent         = "people-cli"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// StatusError reports a non-2xx response from the people API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

var _ ports.PeopleAPI = Client{}

type personPayload struct {
	Name string  `json:"name"`
	Age  wireAge `json:"age"`
}

// wireAge decodes whatever the API stores as an age: a number, a numeric
// string or null. Anything else reads as 0 so one record never fails a list.
type wireAge float64

func (a *wireAge) UnmarshalJSON(data []byte) error {
	*a = 0

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*a = wireAge(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}
	*a = wireAge(parsed)

	return nil
}

// BaseURL builds the API root from a host and port, e.g. http://localhost:3000/api.
func BaseURL(host, port string) string {
	return "http://" + host + ":" + port + "/api"
}

func (c Client) List(ctx context.Context) ([]domain.Person, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(), nil)
	if err != nil {
		return nil, fmt.Errorf("create list request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent)

	response, err := c.do(request)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	// No pagination: the whole list arrives in one body of any size.
	var payload []personPayload
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode people: %w", err)
	}

	people := make([]domain.Person, 0, len(payload))
	for _, entry := range payload {
		people = append(people, domain.Person{Name: entry.Name, Age: float64(entry.Age)})
	}

	return people, nil
}

func (c Client) Create(ctx context.Context, person domain.Person) error {
	encoded, err := json.Marshal(personPayload{Name: person.Name, Age: wireAge(person.Age)})
	if err != nil {
		return fmt.Errorf("encode person: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create person request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", userAgent)

	response, err := c.do(request)
	if err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	_ = response.Body.Close()

	return nil
}

// do sends request and returns the 2xx response with its body unread; the
// caller closes it. Other statuses become a *StatusError with a capped body.
func (c Client) do(request *http.Request) (*http.Response, error) {
	response, err := c.httpClient().Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	if response.StatusCode >= http.StatusOK && response.StatusCode < http.StatusMultipleChoices {
		return response, nil
	}
	defer func() { _ = response.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return nil, &StatusError{StatusCode: response.StatusCode, Body: strings.TrimSpace(string(body))}
}

func (c Client) endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + usersPath
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
