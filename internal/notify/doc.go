// Package notify provides the sinks a dancer and a battle report to.
//
// EventSink and BattleEventSink publish game events on an rpg-toolkit
// event bus, LogSink and BattleLogSink write structured log lines, and
// Multi and BattleMulti fan a single notification out to several sinks.
//
// Event payloads travel in the event context under the Key* constants:
//
//	bus.SubscribeFunc(notify.EventLevelUp, 0, func(ctx context.Context, e events.Event) error {
//		level, _ := e.Context().Get(notify.KeyLevel)
//		fmt.Printf("%s reached level %v\n", e.Source().GetID(), level)
//		return nil
//	})
package notify
