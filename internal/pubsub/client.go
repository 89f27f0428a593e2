package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// New connects to Pub/Sub in projectID. Without a project the returned client
// only logs what it would have published; callers check Enabled to decide
// whether to deliver events themselves.
func New(ctx context.Context, projectID string) (PubSubClient, error) {
	if projectID == "" {
		log.Warn("GCP_PROJECT not set, pub/sub publishing disabled")
		return &client{}, nil
	}
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	return &client{
		client: pubSubC,
		teardown: func() {
			pubSubC.Close()
		},
	}, nil
}

// Enabled reports whether c publishes to a real project.
func Enabled(c PubSubClient) bool {
	cl, ok := c.(*client)
	return !ok || cl.client != nil
}

func (c *client) SendMessage(topic EventType, data any) error {
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	if c.client == nil {
		log.Info("[Disabled] Would publish message", "topic", topic, "bytes", len(msgpackData))
		return nil
	}
	ctx := context.Background()
	result := c.client.Topic(string(topic)).Publish(ctx, &pubsub.Message{
		Data: msgpackData,
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", topic)
		return err
	}
	log.Info("SendMessage", "topic", topic, "serverID", serverID)
	return nil
}

func (c *client) ProcessMessage(data []byte, returnValue any) error {
	// Unmarshal the MessagePack data into the provided pointer struct
	err := msgpack.Unmarshal(data, returnValue)
	if err != nil {
		log.Error("MessagePack unmarshal error", "error", err)
		return err
	}
	return nil
}

func (c *client) Close() error {
	if c.teardown != nil {
		c.teardown()
	}
	return nil
}
