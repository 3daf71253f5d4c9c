// Package notify announces content changes so the public site can refresh
// the affected page.
package notify

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

const (
	ContentCreated = "content_created"
	ContentUpdated = "content_updated"

	publishTimeout = 2 * time.Second
)

// Notifier is told about every content write after it is persisted.
type Notifier interface {
	ContentChanged(kind string, c model.Content)
}

// Event is the JSON payload published for a content change.
type Event struct {
	Type      string `json:"type"`
	ContentID int    `json:"content_id"`
	Page      string `json:"page"`
	Heading   string `json:"heading"`
	ImageURL  string `json:"image_url"`
	Timestamp int64  `json:"timestamp"`
}

type Noop struct{}

func (Noop) ContentChanged(string, model.Content) {}

// MQTTPublisher publishes events to "<prefix>/<page>/content" at QoS 1.
type MQTTPublisher struct {
	client mqtt.Client
	prefix string
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// Connect dials brokerURL and returns a publisher on it.
func Connect(brokerURL, clientID, prefix string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(5 * time.Second)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return NewMQTTPublisher(client, prefix), nil
}

func NewMQTTPublisher(client mqtt.Client, prefix string) *MQTTPublisher {
	return &MQTTPublisher{client: client, prefix: strings.Trim(prefix, "/")}
}

// Topic returns the topic events for page are published on.
func (p *MQTTPublisher) Topic(page model.Page) string {
	return fmt.Sprintf("%s/%s/content", p.prefix, page)
}

// ContentChanged publishes the event and waits briefly for the broker.
// Failures are logged; the write that triggered them has already succeeded.
func (p *MQTTPublisher) ContentChanged(kind string, c model.Content) {
	payload, err := json.Marshal(Event{
		Type:      kind,
		ContentID: c.ID,
		Page:      c.Page.String(),
		Heading:   c.Heading,
		ImageURL:  c.ImageURL,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		log.Error().Err(err).Msg("[notify] marshal event")
		return
	}

	topic := p.Topic(c.Page)
	token := p.client.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		log.Warn().Str("topic", topic).Msg("[notify] publish timed out")
		return
	}
	if err := token.Error(); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("[notify] publish failed")
		return
	}
	log.Debug().Str("topic", topic).Int("content_id", c.ID).Msg("[notify] content event published")
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
	log.Info().Msg("MQTT client disconnected")
}
