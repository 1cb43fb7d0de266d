package network

import (
	"boardgame-server/pkg/api"
	"sync"

	"github.com/zyedidia/generic/mapset"
)

// Broadcaster занимается только рассылкой сообщений подписчикам.
// Подписчик - это одно WebSocket-соединение. Несколько вкладок могут
// смотреть на одну партию, поэтому подписчики сгруппированы по сессиям.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: SubscriberID -> Личный канал
	subscribers map[string]chan api.ServerResponse
	// Мапа: SessionID -> подписчики партии
	topics map[string]mapset.Set[string]
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
		topics:      make(map[string]mapset.Set[string]),
	}
}

// Subscribe создает личный канал подписчика и привязывает его к партии
func (b *Broadcaster) Subscribe(sessionID, subscriberID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[subscriberID]; ok {
		close(old)
		b.detach(subscriberID)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[subscriberID] = ch

	topic, ok := b.topics[sessionID]
	if !ok {
		topic = mapset.New[string]()
		b.topics[sessionID] = topic
	}
	topic.Put(subscriberID)
	return ch
}

// Unsubscribe удаляет подписчика и возвращает, сколько подписчиков у партии осталось
func (b *Broadcaster) Unsubscribe(sessionID, subscriberID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[subscriberID]; ok {
		close(ch)
		delete(b.subscribers, subscriberID)
	}

	topic, ok := b.topics[sessionID]
	if !ok {
		return 0
	}
	topic.Remove(subscriberID)
	if topic.Size() == 0 {
		delete(b.topics, sessionID)
		return 0
	}
	return topic.Size()
}

// detach убирает подписчика из всех партий. Вызывать под b.mu.
func (b *Broadcaster) detach(subscriberID string) {
	for sessionID, topic := range b.topics {
		topic.Remove(subscriberID)
		if topic.Size() == 0 {
			delete(b.topics, sessionID)
		}
	}
}

// SendTo отправляет сообщение конкретному подписчику (Unicast)
func (b *Broadcaster) SendTo(subscriberID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[subscriberID]; ok {
		select {
		case ch <- msg:
		default:
			// Канал переполнен: медленный клиент пропустит снимок, следующий все равно полный
		}
	}
}

// Publish отправляет сообщение всем подписчикам партии
func (b *Broadcaster) Publish(sessionID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	topic, ok := b.topics[sessionID]
	if !ok {
		return
	}
	topic.Each(func(subscriberID string) {
		select {
		case b.subscribers[subscriberID] <- msg:
		default:
		}
	})
}

// HasSubscribers проверяет, смотрит ли кто-нибудь на партию
func (b *Broadcaster) HasSubscribers(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.topics[sessionID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
