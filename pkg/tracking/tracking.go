package tracking

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hylla/browse/pkg/messaging"
	"github.com/hylla/browse/pkg/types"
)

// Tracking publishes browse activity. Implementations must never block
// the request path; publishing is fire and forget.
type Tracking interface {
	TrackSession(sessionId string, r *http.Request)
	TrackBrowse(sessionId string, filters *types.Filters, page int, resultCount int)
	Close() error
}

const browseTopic messaging.Topic = "browse"

// RabbitTracking sends browse events over AMQP.
type RabbitTracking struct {
	connection *amqp.Connection
	country    string
}

func NewRabbitTracking(url, country string) (*RabbitTracking, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if err := messaging.DefineTopic(ch, "global", browseTopic); err != nil {
		conn.Close()
		return nil, err
	}
	return &RabbitTracking{connection: conn, country: country}, nil
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return messaging.Publish(t.connection, "global", browseTopic, data)
}

// NewSessionId returns a correlation id for a new browsing session.
func NewSessionId() string {
	return uuid.NewString()
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Country   string `json:"country,omitempty"`
	Event     uint16 `json:"event"`
}

type SessionEvent struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	err := t.send(SessionEvent{
		BaseEvent: &BaseEvent{Event: 0, SessionId: sessionId, Country: t.country},
		UserAgent: r.UserAgent(),
		Ip:        ip,
		Language:  r.Header.Get("Accept-Language"),
	})
	if err != nil {
		log.Println("Error sending session event: ", err)
	}
}

type BrowseEvent struct {
	*BaseEvent
	Keyword     string   `json:"keyword,omitempty"`
	Seasons     []string `json:"seasons,omitempty"`
	Styles      []string `json:"styles,omitempty"`
	PriceFrom   int      `json:"price_from,omitempty"`
	PriceTo     int      `json:"price_to,omitempty"`
	Page        int      `json:"page"`
	ResultCount int      `json:"noi"`
}

func (t *RabbitTracking) TrackBrowse(sessionId string, filters *types.Filters, page int, resultCount int) {
	err := t.send(BrowseEvent{
		BaseEvent:   &BaseEvent{Event: 1, SessionId: sessionId, Country: t.country},
		Keyword:     filters.Keyword,
		Seasons:     filters.Seasons.Values(),
		Styles:      filters.Styles.Values(),
		PriceFrom:   filters.Price.From,
		PriceTo:     filters.Price.To,
		Page:        page,
		ResultCount: resultCount,
	})
	if err != nil {
		log.Println("Error sending browse event: ", err)
	}
}
