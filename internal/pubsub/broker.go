package pubsub

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

const subscriberBuffer = 128

// Broker is a small in-memory pub/sub with a bounded per-topic replay cache.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[string][]chan []byte // topic -> subscriber channels
	cache       map[string][][]byte      // topic -> recent messages
	cacheLimit  int
}

// Envelope is the wire format of every message pushed to spectators.
type Envelope struct {
	Stream string          `json:"stream"`
	Data   json.RawMessage `json:"data"`
}

func NewBroker(cacheLimit int) *Broker {
	return &Broker{
		subscribers: make(map[string][]chan []byte),
		cache:       make(map[string][][]byte),
		cacheLimit:  cacheLimit,
	}
}

// Subscribe returns a channel that first replays the cached messages of the
// topic and then receives live ones, plus a function to unsubscribe.
func (b *Broker) Subscribe(topic string) (<-chan []byte, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	history := b.cache[topic]
	ch := make(chan []byte, max(subscriberBuffer, len(history)))
	for _, msg := range history {
		ch <- msg
	}
	b.subscribers[topic] = append(b.subscribers[topic], ch)

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			b.remove(topic, ch)
			zap.S().Debugf("unsubscribed from topic %s", topic)
		})
	}

	zap.S().Debugf("new subscription to topic %s, replayed %d cached messages", topic, len(history))
	return ch, unsubscribe
}

func (b *Broker) remove(topic string, ch chan []byte) {
	subscribers := b.subscribers[topic]
	for i, sub := range subscribers {
		if sub == ch {
			b.subscribers[topic] = append(subscribers[:i], subscribers[i+1:]...)
			close(ch)
			return
		}
	}
}

// Publish caches msg and hands it to every live subscriber without blocking.
// A subscriber whose buffer is full misses the message.
func (b *Broker) Publish(topic string, msg []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cached := append(b.cache[topic], msg)
	if b.cacheLimit > 0 && len(cached) > b.cacheLimit {
		cached = cached[len(cached)-b.cacheLimit:]
	}
	b.cache[topic] = cached

	for _, ch := range b.subscribers[topic] {
		select {
		case ch <- msg:
		default:
			zap.S().Warnf("subscriber on topic %s is full, dropping message", topic)
		}
	}
}

// CloseTopic closes all subscriber channels of a topic and drops its cache.
func (b *Broker) CloseTopic(topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subscribers[topic] {
		close(ch)
	}
	delete(b.subscribers, topic)
	delete(b.cache, topic)
	zap.S().Infof("closed pubsub topic %s", topic)
}

// FormatMessage wraps payload in an Envelope.
func FormatMessage(stream string, payload any) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		return []byte(`{"stream":"error","data":"json format error"}`)
	}
	msg, err := json.Marshal(Envelope{Stream: stream, Data: data})
	if err != nil {
		return []byte(`{"stream":"error","data":"json format error"}`)
	}
	return msg
}
