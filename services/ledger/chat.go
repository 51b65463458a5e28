package ledger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"eletrigo/models"
)

// SendMessage appends a chat entry to the service conversation, in arrival
// order, and notifies the counterparty naming the sender. Messages are never
// edited or removed.
func (s *DefaultService) SendMessage(serviceID string, sender models.SenderRole, text string) (models.ServiceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if text == "" {
		return models.ServiceRecord{}, &ValidationError{Field: "message", Message: "required"}
	}
	if sender != models.SenderClient && sender != models.SenderElectrician {
		return models.ServiceRecord{}, &ValidationError{Field: "sender", Message: "must be client or electrician"}
	}

	rec, err := s.Services.Get(serviceID)
	if err != nil {
		return models.ServiceRecord{}, &NotFoundError{Kind: "service", ID: serviceID}
	}

	rec.Chat = append(rec.Chat, models.ChatMessage{
		Sender:    sender,
		Message:   text,
		Timestamp: s.now(),
	})
	if err := s.Services.Replace(rec); err != nil {
		return models.ServiceRecord{}, fmt.Errorf("replace service: %w", err)
	}

	// A record still waiting for acceptance has no counterparty to notify.
	switch sender {
	case models.SenderClient:
		if rec.ElectricianID != "" {
			s.Notifier.Push(rec.ElectricianID, fmt.Sprintf("Nova mensagem de %s", firstName(rec.ClientName)))
		}
	case models.SenderElectrician:
		s.Notifier.Push(rec.ClientID, fmt.Sprintf("Nova mensagem de %s", rec.ElectricianName))
	}

	s.logger().Debug("chat message appended",
		zap.String("serviceId", rec.ID),
		zap.String("sender", string(sender)),
	)
	return rec, nil
}

func firstName(full string) string {
	if name, _, found := strings.Cut(full, " "); found {
		return name
	}
	if full == "" {
		return "Cliente"
	}
	return full
}
