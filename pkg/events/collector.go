package events

// EventCollector accumulates domain events raised during an aggregate's
// state transitions until a use case drains them for publishing.
type EventCollector struct {
	events []DomainEvent
}

// Record appends events to the collector in order.
func (c *EventCollector) Record(evts ...DomainEvent) {
	c.events = append(c.events, evts...)
}

// Events returns the collected events without draining them.
func (c *EventCollector) Events() []DomainEvent {
	return c.events
}

// ClearEvents drains the collector, returning everything recorded so far.
func (c *EventCollector) ClearEvents() []DomainEvent {
	collected := c.events
	c.events = nil
	return collected
}
