package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/saranraj027/alliance-matrimony-backend/config"
	"github.com/saranraj027/alliance-matrimony-backend/utils"
)

// StartKafkaConsumer drains the notification topic in the background and
// persists one row per recognized event.
func StartKafkaConsumer(cfg *config.Config, svc Service) {
	reader := utils.NewKafkaReader(cfg, "notification-writer")

	go func() {
		defer reader.Close()
		for {
			msg, err := reader.ReadMessage(context.Background())
			if err != nil {
				log.Printf("⚠️ Kafka consumer stopped: %v", err)
				return
			}

			var ev Event
			if err := json.Unmarshal(msg.Value, &ev); err != nil {
				log.Printf("⚠️ Skipping malformed notification event: %v", err)
				continue
			}
			if err := svc.RecordEvent(context.Background(), ev); err != nil {
				log.Printf("⚠️ Failed to persist notification for %s: %v", ev.Action, err)
			}
		}
	}()
}
