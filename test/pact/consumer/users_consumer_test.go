//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/Apurer/action-repo-api/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type userPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
}

type apiError struct {
	status  int
	message string
}

func (e apiError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.message, e.status)
}

func TestDashboardUsersContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	existing := pacttest.ExampleUserPayload()
	userMatcher := matchers.Map{
		"id":    matchers.Like(existing["id"]),
		"name":  matchers.Like(existing["name"]),
		"email": matchers.Like(existing["email"]),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")
	failure := func(message string) matchers.Map {
		return matchers.Map{
			"success": matchers.Like(false),
			"message": matchers.S(message),
		}
	}

	pact.AddInteraction().
		Given(pacttest.StateUsersBaseline).
		UponReceiving("a request to list users").
		WithRequest("GET", "/api/users").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"success": matchers.Like(true),
				"data":    matchers.ArrayMinLike(userMatcher, 3),
				"count":   matchers.Like(3),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateUserExists).
		UponReceiving("a request to fetch an existing user").
		WithRequest("GET", fmt.Sprintf("/api/users/%d", pacttest.ExistingUserID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"success": matchers.Like(true),
				"data":    userMatcher,
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateUserMissing).
		UponReceiving("a request for a missing user").
		WithRequest("GET", fmt.Sprintf("/api/users/%d", pacttest.MissingUserID)).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(failure("User not found"))
		})

	created := pacttest.ExampleCreateUserPayload()
	pact.AddInteraction().
		Given(pacttest.StateUsersBaseline).
		UponReceiving("a request to create a user").
		WithRequest("POST", "/api/users", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(created)
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"success": matchers.Like(true),
				"data": matchers.Map{
					"id":    matchers.Like(pacttest.CreatedUserID),
					"name":  matchers.S(created["name"].(string)),
					"email": matchers.S(created["email"].(string)),
				},
				"message": matchers.S("User created successfully"),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateUsersBaseline).
		UponReceiving("a request to create a user without an email").
		WithRequest("POST", "/api/users", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(map[string]any{"name": "Alice"})
		}).
		WillRespondWith(http.StatusBadRequest, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(failure("Name and email are required"))
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newUserClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		users, err := client.ListUsers(ctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if len(users) < 3 {
			return fmt.Errorf("expected at least 3 users, got %d", len(users))
		}

		user, err := client.GetUser(ctx, pacttest.ExistingUserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if user.ID != pacttest.ExistingUserID {
			return fmt.Errorf("expected user id %d, got %d", pacttest.ExistingUserID, user.ID)
		}

		if err := expectStatus(client.GetUser(ctx, pacttest.MissingUserID)); err != nil {
			return err
		}

		alice, err := client.CreateUser(ctx, created)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if alice.ID == 0 {
			return errors.New("expected created user id to be set")
		}

		if _, err := client.CreateUser(ctx, map[string]any{"name": "Alice"}); err == nil {
			return errors.New("expected 400 for a user without email")
		}
		return nil
	})
	require.NoError(t, err)
}

func expectStatus(_ *userPayload, err error) error {
	var apiErr apiError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("expected api error, got %v", err)
	}
	if apiErr.status != http.StatusNotFound {
		return fmt.Errorf("expected 404, got %d", apiErr.status)
	}
	return nil
}

type userClient struct {
	baseURL    string
	httpClient *http.Client
}

func newUserClient(config pactconsumer.MockServerConfig) *userClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	return &userClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: &http.Client{Transport: transport, Timeout: 10 * time.Second},
	}
}

func (c *userClient) ListUsers(ctx context.Context) ([]userPayload, error) {
	var users []userPayload
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *userClient) GetUser(ctx context.Context, id int64) (*userPayload, error) {
	var user userPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *userClient) CreateUser(ctx context.Context, body map[string]any) (*userPayload, error) {
	var user userPayload
	if err := c.do(ctx, http.MethodPost, "/api/users", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *userClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest || !env.Success {
		return apiError{status: res.StatusCode, message: env.Message}
	}
	return json.Unmarshal(env.Data, out)
}
