package events

import (
	"sync"

	"timeline-service/internal/model"
)

// ChangeType - вид мутации хранилища
type ChangeType string

const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
	ChangeDeleted ChangeType = "deleted"
)

// Change - уведомление об успешной мутации хранилища.
// Сервис публикует ровно одно уведомление на каждую успешную операцию;
// отказы валидации уведомлений не порождают.
type Change struct {
	Type  ChangeType
	Event model.Event
}

// Notifier управляет подписчиками на изменения каталога
type Notifier struct {
	subscribers map[chan Change]bool
	mu          sync.RWMutex
}

// NewNotifier создает новый экземпляр Notifier
func NewNotifier() *Notifier {
	return &Notifier{
		subscribers: make(map[chan Change]bool),
	}
}

// Subscribe добавляет нового подписчика и возвращает канал для получения событий
func (n *Notifier) Subscribe() chan Change {
	ch := make(chan Change, 10) // Буферизованный канал для защиты от backpressure
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers[ch] = true
	return ch
}

// Unsubscribe удаляет подписчика и закрывает его канал
func (n *Notifier) Unsubscribe(ch chan Change) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.subscribers[ch]; ok {
		close(ch)
		delete(n.subscribers, ch)
	}
}

// Publish отправляет событие всем подписчикам.
// Если канал подписчика переполнен, событие пропускается.
func (n *Notifier) Publish(change Change) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for ch := range n.subscribers {
		select {
		case ch <- change:
			// Событие успешно отправлено
		default:
			// Канал переполнен, пропускаем
		}
	}
}
