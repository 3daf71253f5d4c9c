package notify

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { ch := make(chan struct{}); close(ch); return ch }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	mqtt.Client
	sent []published
	err  error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.sent = append(c.sent, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return &fakeToken{err: c.err}
}

func TestPublisherTopic(t *testing.T) {
	p := NewMQTTPublisher(&fakeClient{}, "/site/")
	assert.Equal(t, "site/HomeReading/content", p.Topic(model.PageHomeReading))
}

func TestContentChangedPublishesEvent(t *testing.T) {
	client := &fakeClient{}
	p := NewMQTTPublisher(client, "site")

	p.ContentChanged(ContentUpdated, model.Content{
		ID:       5,
		Page:     model.PageOutdoor,
		Heading:  "Mud kitchen",
		ImageURL: "https://cdn.example.com/mud.png",
	})

	require.Len(t, client.sent, 1)
	assert.Equal(t, "site/Outdoor/content", client.sent[0].topic)
	assert.Equal(t, byte(1), client.sent[0].qos)

	var ev Event
	require.NoError(t, json.Unmarshal(client.sent[0].payload, &ev))
	assert.Equal(t, ContentUpdated, ev.Type)
	assert.Equal(t, 5, ev.ContentID)
	assert.Equal(t, "Outdoor", ev.Page)
	assert.NotZero(t, ev.Timestamp)
}

func TestContentChangedSwallowsBrokerErrors(t *testing.T) {
	client := &fakeClient{err: errors.New("not connected")}
	p := NewMQTTPublisher(client, "site")

	assert.NotPanics(t, func() {
		p.ContentChanged(ContentCreated, model.Content{ID: 1, Page: model.PageProAct})
	})
	assert.Len(t, client.sent, 1)
}
