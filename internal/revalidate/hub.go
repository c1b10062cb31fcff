// Package revalidate реализует внутренний сигнал инвалидации дашборда:
// после успешной мутации подписчики владельца получают уведомление и
// перечитывают список ссылок при следующем рендере.
package revalidate

import "sync"

// Hub раздает сигналы по идентификатору владельца. Отправка неблокирующая:
// если подписчик не успел вычитать прошлый сигнал, новый схлопывается с ним.
type Hub struct {
	mu   sync.RWMutex
	subs map[string][]chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string][]chan struct{}),
	}
}

// Subscribe возвращает канал, в который придет сигнал при изменении
// списка ссылок пользователя.
func (h *Hub) Subscribe(userID string) <-chan struct{} {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[userID] = append(h.subs[userID], ch)
	return ch
}

// Unsubscribe убирает подписку. Канал не закрывается, чтобы читатель не
// принял закрытие за сигнал.
func (h *Hub) Unsubscribe(userID string, ch <-chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	channels := h.subs[userID]
	for i, c := range channels {
		if c == ch {
			h.subs[userID] = append(channels[:i], channels[i+1:]...)
			break
		}
	}
	if len(h.subs[userID]) == 0 {
		delete(h.subs, userID)
	}
}

// Invalidate уведомляет подписчиков пользователя об изменении его ссылок.
func (h *Hub) Invalidate(userID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs[userID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
