package publisher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campus_connect/internal/domain"
)

func TestRoutingKey(t *testing.T) {
	r := &RabbitMQ{prefix: "opportunity"}

	tests := []struct {
		event domain.OpportunityEvent
		want  string
	}{
		{domain.OpportunityEvent{Kind: domain.KindWork, Action: domain.EventCreate}, "opportunity.work.create"},
		{domain.OpportunityEvent{Kind: domain.KindEvent, Action: domain.EventUpdate}, "opportunity.event.update"},
		{domain.OpportunityEvent{Kind: domain.KindEvent, Action: domain.EventDelete}, "opportunity.event.delete"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, r.RoutingKey(tt.event))
		})
	}
}
