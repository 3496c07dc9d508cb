package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mealplanner/config"
	"mealplanner/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.AggregateEvent {
	return &service.AggregateEvent{
		EventID:     "evt-1",
		RequestID:   "req-1",
		Type:        service.EventShoppingDetailsChanged,
		AggregateID: "11111111-1111-1111-1111-111111111111",
		OwnerID:     "22222222-2222-2222-2222-222222222222",
		OccurredAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	require.NoError(t, publisher.Publish(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.EventShoppingDetailsChanged, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AggregateEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, testEvent().AggregateID, decoded.AggregateID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	err := publisher.Publish(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestGooglePubSubPublisher_PublishesOrderedByAggregate(t *testing.T) {
	ctx := context.Background()
	srv := pstest.NewServer()
	defer srv.Close()

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	admin, err := pubsub.NewClient(ctx, "proj", option.WithGRPCConn(conn))
	require.NoError(t, err)
	_, err = admin.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: "projects/proj/topics/aggregates"})
	require.NoError(t, err)

	publisher, err := NewGooglePubSubPublisher(ctx, "proj", "aggregates", newDiscardLogger(), option.WithGRPCConn(conn))
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(ctx, testEvent()))
	require.NoError(t, publisher.Close())

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, testEvent().AggregateID, msgs[0].OrderingKey)
	assert.Equal(t, "req-1", msgs[0].Attributes["request_id"])
}

func TestGooglePubSubPublisher_MissingTopic(t *testing.T) {
	ctx := context.Background()
	srv := pstest.NewServer()
	defer srv.Close()

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	_, err = NewGooglePubSubPublisher(ctx, "proj", "missing", newDiscardLogger(), option.WithGRPCConn(conn))
	assert.Error(t, err)
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "unset uses noop", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:1/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
