package ports

import "time"

// Clock supplies the current time to handlers that default timestamps.
// github.com/jonboulle/clockwork clocks satisfy it.
type Clock interface {
	Now() time.Time
}
