package core

type EventContext struct {
	Data struct {
		I64 [2]int64
		U64 [2]uint64
		F64 [2]float64

		C [2]string
	}
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Stops the run loop after the current tick.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// A scene snapshot was applied.
	/* Context usage:
	 * string mode = data.C[0];
	 * u64 strand_instances = data.U64[0];
	 * u64 zoetrope_frames = data.U64[1];
	 */
	EVENT_CODE_SCENE_APPLIED SystemEventCode = 0x02

	// The app mode changed.
	/* Context usage:
	 * string from = data.C[0];
	 * string to = data.C[1];
	 */
	EVENT_CODE_MODE_CHANGED SystemEventCode = 0x03

	// Strand buffers were reallocated.
	/* Context usage:
	 * u64 strand_count = data.U64[0];
	 * u64 segments_per_strand = data.U64[1];
	 */
	EVENT_CODE_STRANDS_RESET SystemEventCode = 0x04

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 1024

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

// Should return true if handled.
type FnOnEvent func(code SystemEventCode, sender interface{}, listenerInst interface{}, data EventContext) bool

// EventBus dispatches events synchronously on the caller's goroutine. Each
// engine owns one.
type EventBus struct {
	// Lookup table for event codes.
	registered [MAX_MESSAGE_CODES][]registeredEvent
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

func validCode(code SystemEventCode) bool {
	return code >= 0 && int(code) < MAX_MESSAGE_CODES
}

/**
 * Register to listen for when events are sent with the provided code. Events with duplicate
 * listeners will not be registered again and will cause this to return false.
 * @param code The event code to listen for.
 * @param listener A listener instance. Can be nil.
 * @param onEvent The callback to be invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func (b *EventBus) Register(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if !validCode(code) || onEvent == nil {
		return false
	}
	for _, e := range b.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	b.registered[code] = append(b.registered[code], registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code. If no matching
 * registration is found, this function returns false.
 * @param code The event code to stop listening for.
 * @param listener The listener instance passed to Register.
 * @returns true if the event is successfully unregistered; otherwise false.
 */
func (b *EventBus) Unregister(code SystemEventCode, listener interface{}) bool {
	if !validCode(code) {
		return false
	}
	events := b.registered[code]
	for i, e := range events {
		if e.listener == listener {
			b.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	// Not found.
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * @param code The event code to fire.
 * @param sender The sender. Can be nil.
 * @param data The event data.
 * @returns true if handled, otherwise false.
 */
func (b *EventBus) Fire(code SystemEventCode, sender interface{}, data EventContext) bool {
	if !validCode(code) {
		return false
	}
	for _, e := range b.registered[code] {
		if e.callback(code, sender, e.listener, data) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}

// Clear drops every registration.
func (b *EventBus) Clear() {
	for i := range b.registered {
		b.registered[i] = nil
	}
}
