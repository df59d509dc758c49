package ws

import (
	"encoding/json"
	"strings"
	"time"
)

// DashboardUpdatedEvent tells connected dashboards that the metrics behind a
// scope changed and a refetch is worthwhile. Scope is "department" or "company";
// Key is the department code or company name.
type DashboardUpdatedEvent struct {
	Type      string `json:"type"`
	Scope     string `json:"scope"`
	Key       string `json:"key"`
	Timestamp string `json:"timestamp"`
}

// Notifier broadcasts dashboard refresh events through the hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyDashboardUpdated(scope, key string) {
	if n == nil || n.hub == nil {
		return
	}

	scope = strings.TrimSpace(scope)
	key = strings.TrimSpace(key)
	if scope == "" || key == "" {
		return
	}

	evt := DashboardUpdatedEvent{
		Type:      "dashboard_updated",
		Scope:     scope,
		Key:       key,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
